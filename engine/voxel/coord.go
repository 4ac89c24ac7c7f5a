package voxel

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxeleditor/engine/util"
)

// Int3 is an integer position. It is used for global voxel positions, chunk-local
// positions and chunk coordinates alike, and is comparable so it can key a map.
type Int3 struct {
	X, Y, Z int32
}

func (i Int3) Add(other Int3) Int3 {
	return Int3{i.X + other.X, i.Y + other.Y, i.Z + other.Z}
}

func (i Int3) Sub(other Int3) Int3 {
	return Int3{i.X - other.X, i.Y - other.Y, i.Z - other.Z}
}

func (i Int3) Mul(factor int32) Int3 {
	i.X *= factor
	i.Y *= factor
	i.Z *= factor
	return i
}

func (i Int3) ToVec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(i.X), float32(i.Y), float32(i.Z)}
}

func (i Int3) ToString() string {
	return fmt.Sprintf("%d,%d,%d", i.X, i.Y, i.Z)
}

// ChunkCoordOf returns the coordinate of the chunk owning the global voxel position.
// Division rounds towards negative infinity, so x=-1 belongs to chunk -1.
func ChunkCoordOf(voxelPos Int3, cellSize int32) Int3 {
	return Int3{
		util.FloorDiv(voxelPos.X, cellSize),
		util.FloorDiv(voxelPos.Y, cellSize),
		util.FloorDiv(voxelPos.Z, cellSize),
	}
}

// LocalPosOf returns the position of a global voxel inside its chunk, each axis in [0, cellSize).
func LocalPosOf(voxelPos Int3, cellSize int32) Int3 {
	return Int3{
		util.EuclideanMod(voxelPos.X, cellSize),
		util.EuclideanMod(voxelPos.Y, cellSize),
		util.EuclideanMod(voxelPos.Z, cellSize),
	}
}

// LocalOffsetOf returns the flat index of a global voxel inside its chunk's storage.
func LocalOffsetOf(voxelPos Int3, cellSize int32) int32 {
	return PackLocal(LocalPosOf(voxelPos, cellSize), cellSize)
}

// PackLocal packs a chunk-local position y-major: y*cs*cs + z*cs + x.
func PackLocal(local Int3, cellSize int32) int32 {
	return local.Y*cellSize*cellSize + local.Z*cellSize + local.X
}

// OffsetToLocal is the inverse of PackLocal.
func OffsetToLocal(offset int32, cellSize int32) Int3 {
	return Int3{
		X: offset % cellSize,
		Y: offset / (cellSize * cellSize),
		Z: (offset / cellSize) % cellSize,
	}
}

// ChunkOrigin returns the global position of local voxel (0,0,0) of the chunk.
func ChunkOrigin(chunkPos Int3, cellSize int32) Int3 {
	return chunkPos.Mul(cellSize)
}
