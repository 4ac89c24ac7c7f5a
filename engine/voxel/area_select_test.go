package voxel

import (
	"math"
	"testing"
)

func TestBox(t *testing.T) {
	box := NewBox(Int3{3, -1, 2}, Int3{1, 1, 2})
	if box.Min != (Int3{1, -1, 2}) || box.Max != (Int3{3, 1, 2}) {
		t.Fatalf("NewBox ordered to %v..%v", box.Min, box.Max)
	}
	if box.Size() != (Int3{3, 3, 1}) || box.Volume() != 9 {
		t.Errorf("size %v volume %d", box.Size(), box.Volume())
	}
	if !box.Contains(Int3{2, 0, 2}) || box.Contains(Int3{2, 0, 3}) || box.Contains(Int3{0, 0, 2}) {
		t.Error("Contains disagrees with the corners")
	}
	var visited []Int3
	box.ForEach(func(pos Int3) { visited = append(visited, pos) })
	if len(visited) != 9 || visited[0] != box.Min || visited[8] != box.Max {
		t.Errorf("ForEach visited %v", visited)
	}
	if visited[1] != (Int3{2, -1, 2}) {
		t.Errorf("ForEach does not step x first: %v", visited[:2])
	}
}

func TestBoxForEachAtInt32Limits(t *testing.T) {
	box := NewBox(Int3{math.MaxInt32 - 1, math.MaxInt32, math.MinInt32}, Int3{math.MaxInt32, math.MaxInt32, math.MinInt32 + 1})
	var visited []Int3
	box.ForEach(func(pos Int3) { visited = append(visited, pos) })
	if len(visited) != 4 || visited[3] != box.Max {
		t.Errorf("ForEach visited %v", visited)
	}

	voxelMap := NewMap(Int3{8, 8, 8}, 2)
	if got := voxelMap.FillBox(box, 1); got != 4 {
		t.Errorf("FillBox at the int32 limits changed %d voxels, want 4", got)
	}

	count := 0
	Box{Min: Int3{1, 0, 0}, Max: Int3{0, 0, 0}}.ForEach(func(Int3) { count++ })
	if count != 0 {
		t.Errorf("inverted box visited %d positions", count)
	}
}

func TestFillBox(t *testing.T) {
	voxelMap := NewMap(Int3{8, 8, 8}, 2)
	box := NewBox(Int3{-1, 0, 0}, Int3{2, 1, 1})
	if got := voxelMap.FillBox(box, 4); got != 16 {
		t.Errorf("first fill changed %d voxels, want 16", got)
	}
	if voxelMap.ChunkCount() != 3 {
		t.Errorf("fill spans %d chunks, want 3", voxelMap.ChunkCount())
	}
	if got := voxelMap.FillBox(box, 4); got != 0 {
		t.Errorf("repeated fill changed %d voxels", got)
	}
	if got := voxelMap.FillBox(NewBox(Int3{0, 0, 0}, Int3{0, 5, 0}), EMPTY); got != 2 {
		t.Errorf("clearing changed %d voxels, want 2", got)
	}
	if voxelMap.ChunkCount() != 3 {
		t.Errorf("clearing created chunks: %d", voxelMap.ChunkCount())
	}
	_, triangles := CountGeometry(voxelMap.GenerateAllMeshes(FixedMaterial(DefaultMaterial)))
	if triangles == 0 {
		t.Error("filled box has no faces")
	}
}
