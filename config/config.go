// Package config handles loading of the editor settings.
package config

import (
	"github.com/pkg/errors"
)

const (
	TerrainSine         = "sine"
	TerrainNoise        = "noise"
	TerrainFlat         = "flat"
	TerrainConstruction = "construction"
	TerrainNone         = "none"
)

// Config holds all editor settings.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Terrain TerrainConfig `yaml:"terrain"`
	Meshing MeshingConfig `yaml:"meshing"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// WorldConfig holds the advisory world extent in voxels and the chunk edge length.
type WorldConfig struct {
	SizeX    int32 `yaml:"size_x"`
	SizeY    int32 `yaml:"size_y"`
	SizeZ    int32 `yaml:"size_z"`
	CellSize int32 `yaml:"cell_size"`
}

// TerrainConfig selects how the world is populated.
type TerrainConfig struct {
	Kind             string  `yaml:"kind"`
	Seed             int64   `yaml:"seed"`
	MaxVoxelID       int     `yaml:"max_voxel_id"` // ids are drawn from [0, max)
	Scale            float64 `yaml:"scale"`        // noise: world units per noise period
	FloorHeight      int32   `yaml:"floor_height"` // flat
	ConstructionPath string  `yaml:"construction_path"`
}

type MaterialConfig struct {
	Name     string     `yaml:"name"`
	Textured bool       `yaml:"textured"`
	Color    [4]float32 `yaml:"color"`
}

// MeshingConfig holds mesh generation settings.
type MeshingConfig struct {
	Workers      int              `yaml:"workers"` // 0 or 1 meshes sequentially
	Textured     bool             `yaml:"textured"`
	MaterialSeed int64            `yaml:"material_seed"`
	Materials    []MaterialConfig `yaml:"materials"`
}

// ExportConfig holds output paths; empty paths disable the output.
type ExportConfig struct {
	GLTFPath     string `yaml:"gltf_path"`
	PreviewPath  string `yaml:"preview_path"`
	PreviewScale int    `yaml:"preview_scale"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string   `yaml:"level"`
	LogFile    string   `yaml:"log_file"`
	Categories []string `yaml:"categories"` // empty enables all
}

// Default returns the settings of the demo world: 16³ voxels in one chunk,
// filled with sine terrain of random voxel ids.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			SizeX:    16,
			SizeY:    16,
			SizeZ:    16,
			CellSize: 16,
		},
		Terrain: TerrainConfig{
			Kind:        TerrainSine,
			Seed:        1,
			MaxVoxelID:  75,
			Scale:       32,
			FloorHeight: 1,
		},
		Meshing: MeshingConfig{
			Workers:      1,
			MaterialSeed: 1,
			Materials: []MaterialConfig{
				{Name: "textured", Textured: true, Color: [4]float32{1, 1, 1, 1}},
				{Name: "clay", Color: [4]float32{0.8, 0.55, 0.4, 1}},
			},
		},
		Export: ExportConfig{
			GLTFPath:     "world.glb",
			PreviewPath:  "",
			PreviewScale: 8,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate rejects settings no component can work with. World size and cell size
// are not checked here, the world clamps them (cell size to [1, voxel.MaxCellSize]).
func (c *Config) Validate() error {
	switch c.Terrain.Kind {
	case TerrainSine, TerrainNoise, TerrainFlat, TerrainNone:
	case TerrainConstruction:
		if c.Terrain.ConstructionPath == "" {
			return errors.New("terrain kind construction needs terrain.construction_path")
		}
	default:
		return errors.Errorf("unknown terrain kind %q", c.Terrain.Kind)
	}
	if c.Terrain.MaxVoxelID < 0 || c.Terrain.MaxVoxelID > 256 {
		return errors.Errorf("terrain.max_voxel_id %d outside [0, 256]", c.Terrain.MaxVoxelID)
	}
	if c.Terrain.Kind == TerrainNoise && c.Terrain.Scale <= 0 {
		return errors.Errorf("terrain.scale must be positive, got %v", c.Terrain.Scale)
	}
	if c.Meshing.Workers < 0 {
		return errors.Errorf("meshing.workers must not be negative, got %d", c.Meshing.Workers)
	}
	if c.Export.PreviewScale < 1 {
		return errors.Errorf("export.preview_scale must be at least 1, got %d", c.Export.PreviewScale)
	}
	if !logLevels[c.Logging.Level] {
		return errors.Errorf("unknown log level %q", c.Logging.Level)
	}
	for _, name := range c.Meshing.Materials {
		if name.Name == "" {
			return errors.New("meshing.materials entries need a name")
		}
	}
	return nil
}
