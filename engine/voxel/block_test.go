package voxel

import (
	"reflect"
	"testing"
)

func TestBlockFactory(t *testing.T) {
	bf := NewBlockFactory(map[string]byte{"stone": 0, "dirt": 4})
	tests := []struct {
		name string
		want uint8
	}{
		{"air", EMPTY},
		{"stone", 1},
		{"dirt", 5},
		{"obsidian", 1},
		{"beacon", 1},
		{"obsidian", 1},
	}
	for _, tt := range tests {
		if got := bf.GetBlockByName(tt.name); got != tt.want {
			t.Errorf("GetBlockByName(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
	if got := bf.UnknownNames(); !reflect.DeepEqual(got, []string{"beacon", "obsidian"}) {
		t.Errorf("UnknownNames() = %v", got)
	}
}

func TestBlockFactoryLastIndexIsNotAir(t *testing.T) {
	bf := NewBlockFactory(map[string]byte{"glass": 254, "beacon": 255})
	if got := bf.GetBlockByName("glass"); got != 255 {
		t.Errorf("glass = %d, want 255", got)
	}
	if got := bf.GetBlockByName("beacon"); got == EMPTY || got != bf.FallbackID {
		t.Errorf("beacon = %d, want fallback %d", got, bf.FallbackID)
	}
	if got := bf.UnknownNames(); !reflect.DeepEqual(got, []string{"beacon"}) {
		t.Errorf("UnknownNames() = %v", got)
	}
}
