package game

import (
	"github.com/memmaker/voxeleditor/config"
	"github.com/memmaker/voxeleditor/engine/voxel"
)

// Materials converts the configured materials. With textured set every material gets UVs.
func Materials(cfg config.MeshingConfig) []voxel.Material {
	materials := make([]voxel.Material, 0, len(cfg.Materials))
	for _, m := range cfg.Materials {
		materials = append(materials, voxel.Material{
			Name:     m.Name,
			Textured: m.Textured || cfg.Textured,
			Color:    m.Color,
		})
	}
	return materials
}

// NewMaterialSelector picks per chunk from the configured materials. A single material is
// used everywhere, none falls back to voxel.DefaultMaterial.
func NewMaterialSelector(cfg config.MeshingConfig) voxel.MaterialSelector {
	materials := Materials(cfg)
	switch len(materials) {
	case 0:
		fallback := voxel.DefaultMaterial
		fallback.Textured = cfg.Textured
		return voxel.FixedMaterial(fallback)
	case 1:
		return voxel.FixedMaterial(materials[0])
	}
	return voxel.HashedMaterial(cfg.MaterialSeed, materials...)
}
