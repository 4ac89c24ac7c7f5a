package voxel

import "testing"

func TestChunkCoordOf(t *testing.T) {
	tests := []struct {
		pos       Int3
		cellSize  int32
		wantChunk Int3
		wantLocal Int3
	}{
		{Int3{0, 0, 0}, 16, Int3{0, 0, 0}, Int3{0, 0, 0}},
		{Int3{15, 15, 15}, 16, Int3{0, 0, 0}, Int3{15, 15, 15}},
		{Int3{16, 0, 31}, 16, Int3{1, 0, 1}, Int3{0, 0, 15}},
		{Int3{-1, 0, 0}, 16, Int3{-1, 0, 0}, Int3{15, 0, 0}},
		{Int3{-16, -17, -32}, 16, Int3{-1, -2, -2}, Int3{0, 15, 0}},
		{Int3{5, -5, 7}, 1, Int3{5, -5, 7}, Int3{0, 0, 0}},
	}
	for _, tt := range tests {
		if got := ChunkCoordOf(tt.pos, tt.cellSize); got != tt.wantChunk {
			t.Errorf("ChunkCoordOf(%v, %d) = %v, want %v", tt.pos, tt.cellSize, got, tt.wantChunk)
		}
		if got := LocalPosOf(tt.pos, tt.cellSize); got != tt.wantLocal {
			t.Errorf("LocalPosOf(%v, %d) = %v, want %v", tt.pos, tt.cellSize, got, tt.wantLocal)
		}
		back := ChunkOrigin(tt.wantChunk, tt.cellSize).Add(tt.wantLocal)
		if back != tt.pos {
			t.Errorf("origin + local = %v, want %v", back, tt.pos)
		}
	}
}

func TestPackLocalIsBijective(t *testing.T) {
	const cellSize = int32(5)
	seen := make(map[int32]bool)
	for y := int32(0); y < cellSize; y++ {
		for z := int32(0); z < cellSize; z++ {
			for x := int32(0); x < cellSize; x++ {
				local := Int3{x, y, z}
				offset := PackLocal(local, cellSize)
				if offset < 0 || offset >= cellSize*cellSize*cellSize {
					t.Fatalf("offset %d of %v out of range", offset, local)
				}
				if seen[offset] {
					t.Fatalf("offset %d produced twice", offset)
				}
				seen[offset] = true
				if back := OffsetToLocal(offset, cellSize); back != local {
					t.Errorf("OffsetToLocal(%d) = %v, want %v", offset, back, local)
				}
			}
		}
	}
	if PackLocal(Int3{1, 2, 3}, cellSize) != 2*25+3*5+1 {
		t.Errorf("packing is not y-major")
	}
}

func TestInt3String(t *testing.T) {
	if got := (Int3{-1, 2, 30}).ToString(); got != "-1,2,30" {
		t.Errorf("ToString() = %q", got)
	}
}
