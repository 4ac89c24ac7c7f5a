package voxel

import (
	"github.com/memmaker/voxeleditor/engine/util"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// VoxelLookup returns the voxel id at a global position. Positions outside any
// existing chunk must read as EMPTY.
type VoxelLookup func(global Int3) uint8

// Chunk is a cube of cellSize³ voxels stored y-major in a flat slice.
type Chunk struct {
	data       []uint8
	position   Int3
	cellSize   int32
	isDirty    bool
	meshBuffer *MeshBuffer
}

// NewChunk allocates a cleared chunk. cellSize must lie in [1, MaxCellSize].
func NewChunk(position Int3, cellSize int32) *Chunk {
	if cellSize < 1 || cellSize > MaxCellSize {
		panic(errors.Errorf("chunk cell size %d outside [1, %d]", cellSize, MaxCellSize))
	}
	return &Chunk{
		data:     make([]uint8, cellSize*cellSize*cellSize),
		position: position,
		cellSize: cellSize,
		isDirty:  true,
	}
}

// SetLocal writes voxelID at the flat offset and drops the cached mesh.
// Offsets outside [0, cellSize³) panic.
func (c *Chunk) SetLocal(offset int32, voxelID uint8) {
	c.data[offset] = voxelID
	c.isDirty = true
}

// GetLocal reads the voxel at the flat offset. Offsets outside [0, cellSize³) panic.
func (c *Chunk) GetLocal(offset int32) uint8 {
	return c.data[offset]
}

func (c *Chunk) SetDirty() {
	c.isDirty = true
}

func (c *Chunk) IsDirty() bool {
	return c.isDirty
}

func (c *Chunk) Position() Int3 {
	return c.position
}

func (c *Chunk) CellSize() int32 {
	return c.cellSize
}

// WorldOffset is the translation placing the chunk-local mesh into world space.
func (c *Chunk) WorldOffset() Int3 {
	return ChunkOrigin(c.position, c.cellSize)
}

func (c *Chunk) IsEmpty() bool {
	for _, voxelID := range c.data {
		if voxelID != EMPTY {
			return false
		}
	}
	return true
}

func (c *Chunk) SolidCount() int {
	solid := 0
	for _, voxelID := range c.data {
		if voxelID != EMPTY {
			solid++
		}
	}
	return solid
}

// GenerateMesh emits one quad for every face of a solid voxel whose neighbour is empty.
// Neighbours inside the chunk are read directly, all others through lookup.
// The result is cached until the chunk is marked dirty or a different material is requested.
func (c *Chunk) GenerateMesh(lookup VoxelLookup, material Material) *MeshBuffer {
	if !c.isDirty && c.meshBuffer != nil && c.meshBuffer.Material == material {
		return c.meshBuffer
	}

	mesh := NewMeshBuffer(material)
	origin := c.WorldOffset()
	offset := int32(0)
	for y := int32(0); y < c.cellSize; y++ {
		for z := int32(0); z < c.cellSize; z++ {
			for x := int32(0); x < c.cellSize; x++ {
				voxelID := c.data[offset]
				offset++
				if voxelID == EMPTY {
					continue
				}
				local := Int3{x, y, z}
				for side, face := range Faces {
					if c.isNeighborSolid(local.Add(face.Direction), origin, lookup) {
						continue
					}
					mesh.AppendQuad(local, FaceType(side), voxelID)
				}
			}
		}
	}

	c.meshBuffer = mesh
	c.isDirty = false
	util.LogVoxelDebug("chunk meshed",
		zap.String("chunk", c.position.ToString()),
		zap.Int("triangles", mesh.TriangleCount()))
	return mesh
}

func (c *Chunk) isNeighborSolid(neighbor Int3, origin Int3, lookup VoxelLookup) bool {
	if c.contains(neighbor) {
		return c.data[PackLocal(neighbor, c.cellSize)] != EMPTY
	}
	return lookup(origin.Add(neighbor)) != EMPTY
}
