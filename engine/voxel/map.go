package voxel

import (
	"sort"
	"sync"

	"github.com/memmaker/voxeleditor/engine/util"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Map is a sparse world of chunks. Chunks are created on the first write into
// them and never removed. A Map is not safe for concurrent writes.
type Map struct {
	chunks   map[Int3]*Chunk
	size     Int3
	cellSize int32
}

// NewMap creates an empty world. cellSize is clamped to [1, MaxCellSize] and every
// axis of size to at least one chunk edge. size is advisory: writes outside it are accepted.
func NewMap(size Int3, cellSize int32) *Map {
	cellSize = util.ClampInt32(cellSize, 1, MaxCellSize)
	return &Map{
		chunks: make(map[Int3]*Chunk),
		size: Int3{
			X: max(cellSize, size.X),
			Y: max(cellSize, size.Y),
			Z: max(cellSize, size.Z),
		},
		cellSize: cellSize,
	}
}

func (m *Map) Size() Int3 {
	return m.size
}

func (m *Map) CellSize() int32 {
	return m.cellSize
}

// ChunkExtent is the number of chunks needed to cover Size on each axis.
func (m *Map) ChunkExtent() Int3 {
	return Int3{
		X: (m.size.X + m.cellSize - 1) / m.cellSize,
		Y: (m.size.Y + m.cellSize - 1) / m.cellSize,
		Z: (m.size.Z + m.cellSize - 1) / m.cellSize,
	}
}

// Contains reports whether pos lies inside the advisory extent [0, Size).
func (m *Map) Contains(pos Int3) bool {
	return pos.X >= 0 && pos.X < m.size.X &&
		pos.Y >= 0 && pos.Y < m.size.Y &&
		pos.Z >= 0 && pos.Z < m.size.Z
}

func (m *Map) ChunkCount() int {
	return len(m.chunks)
}

func (m *Map) GetChunk(chunkPos Int3) *Chunk {
	return m.chunks[chunkPos]
}

func (m *Map) GetChunkForVoxel(voxelPos Int3) *Chunk {
	return m.chunks[ChunkCoordOf(voxelPos, m.cellSize)]
}

// ChunkCoords returns the coordinates of all chunks, ordered by x, then y, then z.
func (m *Map) ChunkCoords() []Int3 {
	coords := make([]Int3, 0, len(m.chunks))
	for coord := range m.chunks {
		coords = append(coords, coord)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].X != coords[j].X {
			return coords[i].X < coords[j].X
		}
		if coords[i].Y != coords[j].Y {
			return coords[i].Y < coords[j].Y
		}
		return coords[i].Z < coords[j].Z
	})
	return coords
}

func (m *Map) addChunk(chunkPos Int3) *Chunk {
	if _, exists := m.chunks[chunkPos]; exists {
		panic(errors.Errorf("chunk %s exists, we can't add it again", chunkPos.ToString()))
	}
	chunk := NewChunk(chunkPos, m.cellSize)
	m.chunks[chunkPos] = chunk
	util.LogVoxelDebug("chunk created", zap.String("chunk", chunkPos.ToString()))
	return chunk
}

// SetVoxel writes voxelID at the global position. If the owning chunk does not exist
// it is created, unless createIfAbsent is false, in which case the write is dropped.
func (m *Map) SetVoxel(voxelPos Int3, voxelID uint8, createIfAbsent bool) {
	chunkPos := ChunkCoordOf(voxelPos, m.cellSize)
	chunk := m.chunks[chunkPos]
	if chunk == nil {
		if !createIfAbsent {
			return
		}
		chunk = m.addChunk(chunkPos)
	}
	local := LocalPosOf(voxelPos, m.cellSize)
	offset := PackLocal(local, m.cellSize)
	if chunk.GetLocal(offset) == voxelID {
		return
	}
	chunk.SetLocal(offset, voxelID)
	m.invalidateNeighbors(chunkPos, local)
}

// invalidateNeighbors marks the chunks sharing a face with the written voxel dirty,
// since their face culling at the seam depends on it.
func (m *Map) invalidateNeighbors(chunkPos Int3, local Int3) {
	for _, side := range boundaryFaces(local, m.cellSize) {
		if neighbor := m.chunks[chunkPos.Add(Faces[side].Direction)]; neighbor != nil {
			neighbor.SetDirty()
		}
	}
}

// GetVoxel returns the voxel id at the global position; missing chunks read as EMPTY.
func (m *Map) GetVoxel(voxelPos Int3) uint8 {
	chunk := m.chunks[ChunkCoordOf(voxelPos, m.cellSize)]
	if chunk == nil {
		return EMPTY
	}
	return chunk.GetLocal(LocalOffsetOf(voxelPos, m.cellSize))
}

func (m *Map) IsSolidVoxelAt(voxelPos Int3) bool {
	return m.GetVoxel(voxelPos) != EMPTY
}

// TopVoxel returns the highest solid y in the column (x, z) between minY and maxY inclusive.
func (m *Map) TopVoxel(x, z, minY, maxY int32) (int32, bool) {
	for y := maxY; y >= minY; y-- {
		if m.IsSolidVoxelAt(Int3{x, y, z}) {
			return y, true
		}
	}
	return 0, false
}

// GenerateAllMeshes meshes every chunk in ChunkCoords order. Chunks without any
// visible face are left out of the result.
func (m *Map) GenerateAllMeshes(selector MaterialSelector) []PlacedMesh {
	meshes := make([]PlacedMesh, 0, len(m.chunks))
	for _, chunkPos := range m.ChunkCoords() {
		chunk := m.chunks[chunkPos]
		mesh := chunk.GenerateMesh(m.GetVoxel, selector.SelectMaterial(chunkPos))
		if mesh.IsEmpty() {
			continue
		}
		meshes = append(meshes, m.place(chunk, mesh))
	}
	m.logMeshTotals(meshes)
	return meshes
}

// GenerateAllMeshesParallel produces the same result as GenerateAllMeshes using
// up to workers goroutines. The map must not be written to while it runs.
// Each chunk is meshed by exactly one worker; neighbour voxels are only read.
func (m *Map) GenerateAllMeshesParallel(selector MaterialSelector, workers int) []PlacedMesh {
	if workers <= 1 {
		return m.GenerateAllMeshes(selector)
	}
	coords := m.ChunkCoords()
	results := make([]*MeshBuffer, len(coords))
	materials := make([]Material, len(coords))
	for i, chunkPos := range coords {
		materials[i] = selector.SelectMaterial(chunkPos)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = m.chunks[coords[i]].GenerateMesh(m.GetVoxel, materials[i])
			}
		}()
	}
	for i := range coords {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	meshes := make([]PlacedMesh, 0, len(coords))
	for i, mesh := range results {
		if mesh.IsEmpty() {
			continue
		}
		meshes = append(meshes, m.place(m.chunks[coords[i]], mesh))
	}
	m.logMeshTotals(meshes)
	return meshes
}

func (m *Map) place(chunk *Chunk, mesh *MeshBuffer) PlacedMesh {
	return PlacedMesh{
		Chunk:  chunk.Position(),
		Offset: chunk.WorldOffset().ToVec3(),
		Mesh:   mesh,
	}
}

func (m *Map) logMeshTotals(meshes []PlacedMesh) {
	vertices, triangles := CountGeometry(meshes)
	util.LogVoxelInfo("meshes generated",
		zap.Int("chunks", len(m.chunks)),
		zap.Int("meshes", len(meshes)),
		zap.Int("vertices", vertices),
		zap.Int("triangles", triangles))
}

// NewMapFromConstruction builds a map holding every block of the construction,
// shifted so that the construction's minimum corner lands on the origin.
func NewMapFromConstruction(bf *BlockFactory, construction *Construction, cellSize int32) *Map {
	minCorner, maxCorner := construction.Bounds()
	extent := maxCorner.Sub(minCorner)
	voxelMap := NewMap(extent, cellSize)
	blockCounter := voxelMap.ImportConstruction(bf, construction, minCorner.Mul(-1))
	util.LogIOInfo("construction loaded",
		zap.String("bounds_min", minCorner.ToString()),
		zap.String("bounds_max", maxCorner.ToString()),
		zap.Int("blocks", blockCounter),
		zap.Int("chunks", voxelMap.ChunkCount()))
	for _, name := range bf.UnknownNames() {
		util.LogIOError("unknown block in construction", zap.String("name", name))
	}
	return voxelMap
}

// ImportConstruction writes all non-air blocks of the construction, translated by
// offset, and returns how many were written.
func (m *Map) ImportConstruction(bf *BlockFactory, construction *Construction, offset Int3) int {
	blockCounter := 0
	for _, section := range construction.Sections {
		section.ForEachBlock(func(pos Int3, block *BlockDefinition) {
			if block == nil {
				return
			}
			voxelID := bf.GetBlockByName(block.Name)
			if voxelID == EMPTY {
				return
			}
			m.SetVoxel(pos.Add(offset), voxelID, true)
			blockCounter++
		})
	}
	return blockCounter
}
