// Command voxeleditor builds a chunked voxel world, meshes it and exports the meshes as glTF.
package main

import (
	"fmt"
	"os"

	"github.com/memmaker/voxeleditor/config"
	"github.com/memmaker/voxeleditor/engine/util"
	"github.com/memmaker/voxeleditor/game"
	"go.uber.org/zap"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := util.InitLogging(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer util.SyncLogging()
	util.SetLogCategories(logCategories(cfg.Logging.Categories))

	if err := runEditor(cfg); err != nil {
		util.LogSystemError("editor failed", zap.Error(err))
		util.SyncLogging()
		os.Exit(1)
	}
}

func runEditor(cfg *config.Config) error {
	util.LogSystemInfo("starting editor",
		zap.String("terrain", cfg.Terrain.Kind),
		zap.Int32("cell_size", cfg.World.CellSize))
	stats, err := game.NewEditor(cfg).Run()
	if err != nil {
		return err
	}
	util.LogSystemInfo("done",
		zap.Int("voxels", stats.Voxels),
		zap.Int("chunks", stats.Chunks),
		zap.Int("meshes", stats.Meshes),
		zap.Int("vertices", stats.Vertices),
		zap.Int("triangles", stats.Triangles),
		zap.String("gltf", cfg.Export.GLTFPath))
	return nil
}

// logCategories turns the configured names into a mask; no names enables everything.
func logCategories(names []string) util.LogCategory {
	if len(names) == 0 {
		return util.LogAllCategories
	}
	var mask util.LogCategory
	for _, name := range names {
		category, ok := util.ParseLogCategory(name)
		if !ok {
			util.LogSystemInfo("ignoring unknown log category", zap.String("category", name))
			continue
		}
		mask |= category
	}
	return mask
}
