package util

import "testing"

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int32
	}{
		{0, 32, 0},
		{31, 32, 0},
		{32, 32, 1},
		{-1, 32, -1},
		{-32, 32, -1},
		{-33, 32, -2},
		{-64, 32, -2},
		{7, 1, 7},
		{-7, 1, -7},
		{-5, 3, -2},
	}
	for _, tt := range tests {
		if got := FloorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEuclideanMod(t *testing.T) {
	tests := []struct {
		a, b, want int32
	}{
		{0, 32, 0},
		{31, 32, 31},
		{32, 32, 0},
		{-1, 32, 31},
		{-32, 32, 0},
		{-33, 32, 31},
		{-5, 3, 1},
		{5, 1, 0},
	}
	for _, tt := range tests {
		if got := EuclideanMod(tt.a, tt.b); got != tt.want {
			t.Errorf("EuclideanMod(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFloorDivModIdentity(t *testing.T) {
	for _, b := range []int32{1, 2, 7, 16, 32} {
		for a := int32(-100); a <= 100; a++ {
			q, m := FloorDiv(a, b), EuclideanMod(a, b)
			if q*b+m != a {
				t.Fatalf("%d != %d*%d + %d", a, q, b, m)
			}
			if m < 0 || m >= b {
				t.Fatalf("EuclideanMod(%d, %d) = %d out of range", a, b, m)
			}
		}
	}
}

func TestHash3Deterministic(t *testing.T) {
	if Hash3(1, 2, 3, 4) != Hash3(1, 2, 3, 4) {
		t.Fatal("hash is not stable")
	}
	if Hash3(1, 2, 3, 4) == Hash3(2, 2, 3, 4) {
		t.Error("seed does not influence the hash")
	}
	if Hash3(1, -1, 0, 0) == Hash3(1, 1, 0, 0) {
		t.Error("sign does not influence the hash")
	}
}

func TestClampInt32(t *testing.T) {
	if got := ClampInt32(-3, 0, 10); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
	if got := ClampInt32(13, 0, 10); got != 10 {
		t.Errorf("got %d, want 10", got)
	}
	if got := ClampInt32(4, 0, 10); got != 4 {
		t.Errorf("got %d, want 4", got)
	}
}
