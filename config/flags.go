package config

import "flag"

var (
	flagConfig       = flag.String("config", "", "Path to config file")
	flagDebug        = flag.Bool("debug", false, "Enable debug logging")
	flagCellSize     = flag.Int("cell-size", 0, "Chunk edge length in voxels")
	flagSize         = flag.Int("size", 0, "World size in voxels on every axis")
	flagTerrain      = flag.String("terrain", "", "Terrain kind: sine, noise, flat, construction or none")
	flagSeed         = flag.Int64("seed", 0, "Terrain seed")
	flagConstruction = flag.String("construction", "", "Amulet construction file to import")
	flagGLTF         = flag.String("gltf", "", "Output path of the glTF export (.gltf or .glb)")
	flagPreview      = flag.String("preview", "", "Output path of the heightmap preview PNG")
	flagWorkers      = flag.Int("workers", -1, "Meshing goroutines, 0 or 1 for sequential")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagCellSize > 0 {
		cfg.World.CellSize = int32(*flagCellSize)
	}
	if *flagSize > 0 {
		cfg.World.SizeX = int32(*flagSize)
		cfg.World.SizeY = int32(*flagSize)
		cfg.World.SizeZ = int32(*flagSize)
	}
	if *flagTerrain != "" {
		cfg.Terrain.Kind = *flagTerrain
	}
	if *flagSeed != 0 {
		cfg.Terrain.Seed = *flagSeed
	}
	if *flagConstruction != "" {
		cfg.Terrain.Kind = TerrainConstruction
		cfg.Terrain.ConstructionPath = *flagConstruction
	}
	if *flagGLTF != "" {
		cfg.Export.GLTFPath = *flagGLTF
	}
	if *flagPreview != "" {
		cfg.Export.PreviewPath = *flagPreview
	}
	if *flagWorkers >= 0 {
		cfg.Meshing.Workers = *flagWorkers
	}
}
