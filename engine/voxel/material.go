package voxel

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxeleditor/engine/util"
)

// Material is what the renderer draws a chunk mesh with. Textured materials get UVs.
type Material struct {
	Name     string
	Textured bool
	Color    mgl32.Vec4
}

var DefaultMaterial = Material{Name: "default", Color: mgl32.Vec4{0.8, 0.8, 0.8, 1}}

// MaterialSelector picks the material for a chunk mesh.
type MaterialSelector interface {
	SelectMaterial(chunk Int3) Material
}

type MaterialSelectorFunc func(chunk Int3) Material

func (f MaterialSelectorFunc) SelectMaterial(chunk Int3) Material {
	return f(chunk)
}

// FixedMaterial uses the same material for every chunk.
func FixedMaterial(material Material) MaterialSelector {
	return MaterialSelectorFunc(func(Int3) Material {
		return material
	})
}

// HashedMaterial picks one of materials per chunk from a hash of the chunk coordinate,
// so the choice is stable across runs and mesh rebuilds.
func HashedMaterial(seed int64, materials ...Material) MaterialSelector {
	if len(materials) == 0 {
		return FixedMaterial(DefaultMaterial)
	}
	return MaterialSelectorFunc(func(chunk Int3) Material {
		h := util.Hash3(seed, chunk.X, chunk.Y, chunk.Z)
		return materials[h%uint64(len(materials))]
	})
}
