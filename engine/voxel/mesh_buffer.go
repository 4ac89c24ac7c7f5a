package voxel

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxeleditor/engine/util"
)

// MeshBuffer is the geometry of one chunk in chunk-local space.
// Every vertex has a position, a flat normal and the id of the voxel it belongs to;
// UVs are only filled when the material is textured.
type MeshBuffer struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
	VoxelIDs  []uint8
	Material  Material
}

func NewMeshBuffer(material Material) *MeshBuffer {
	return &MeshBuffer{Material: material}
}

// AppendQuad adds the given face of the voxel at local as 4 vertices and 2 triangles.
func (m *MeshBuffer) AppendQuad(local Int3, side FaceType, voxelID uint8) {
	face := Faces[side]
	n := uint32(len(m.Positions))
	normal := face.Direction.ToVec3()
	for i, corner := range face.Corners {
		m.Positions = append(m.Positions, local.Add(corner).ToVec3())
		m.Normals = append(m.Normals, normal)
		m.VoxelIDs = append(m.VoxelIDs, voxelID)
		if m.Material.Textured {
			m.UVs = append(m.UVs, face.UVs[i])
		}
	}
	m.Indices = append(m.Indices, n, n+1, n+2, n+2, n+1, n+3)
}

func (m *MeshBuffer) Reset() {
	m.Positions = m.Positions[:0]
	m.Normals = m.Normals[:0]
	m.UVs = m.UVs[:0]
	m.Indices = m.Indices[:0]
	m.VoxelIDs = m.VoxelIDs[:0]
}

func (m *MeshBuffer) VertexCount() int {
	return len(m.Positions)
}

func (m *MeshBuffer) TriangleCount() int {
	return len(m.Indices) / 3
}

func (m *MeshBuffer) IsEmpty() bool {
	return len(m.Indices) == 0
}

// PositionData returns the positions as a flat x,y,z float slice ready for upload.
func (m *MeshBuffer) PositionData() []float32 {
	return flattenVec3(m.Positions)
}

func (m *MeshBuffer) NormalData() []float32 {
	return flattenVec3(m.Normals)
}

func (m *MeshBuffer) UVData() []float32 {
	data := make([]float32, 0, len(m.UVs)*2)
	for _, uv := range m.UVs {
		data = append(data, uv[0], uv[1])
	}
	return data
}

func flattenVec3(vectors []mgl32.Vec3) []float32 {
	data := make([]float32, 0, len(vectors)*3)
	for _, v := range vectors {
		data = append(data, v[0], v[1], v[2])
	}
	return data
}

// PlacedMesh is a chunk mesh together with the translation that puts it into world space.
type PlacedMesh struct {
	Chunk  Int3
	Offset mgl32.Vec3
	Mesh   *MeshBuffer
}

func (p PlacedMesh) Name() string {
	return fmt.Sprintf("chunk_%d_%d_%d", p.Chunk.X, p.Chunk.Y, p.Chunk.Z)
}

// ToExportMesh copies the mesh into the renderer-neutral export format.
func (p PlacedMesh) ToExportMesh() util.ExportMesh {
	export := util.ExportMesh{
		Name:        p.Name(),
		Positions:   make([][3]float32, len(p.Mesh.Positions)),
		Normals:     make([][3]float32, len(p.Mesh.Normals)),
		Indices:     p.Mesh.Indices,
		Translation: p.Offset,
		Material:    p.Mesh.Material.Name,
		Color:       p.Mesh.Material.Color,
	}
	for i, position := range p.Mesh.Positions {
		export.Positions[i] = position
	}
	for i, normal := range p.Mesh.Normals {
		export.Normals[i] = normal
	}
	if len(p.Mesh.UVs) > 0 {
		export.UVs = make([][2]float32, len(p.Mesh.UVs))
		for i, uv := range p.Mesh.UVs {
			export.UVs[i] = uv
		}
	}
	return export
}

// CountGeometry sums vertices and triangles over all meshes.
func CountGeometry(meshes []PlacedMesh) (vertices, triangles int) {
	for _, placed := range meshes {
		vertices += placed.Mesh.VertexCount()
		triangles += placed.Mesh.TriangleCount()
	}
	return vertices, triangles
}
