package voxel

import (
	"sort"

	"github.com/memmaker/voxeleditor/engine/util"
	"go.uber.org/zap"
)

// BlockFactory maps block names to voxel ids. Air is always EMPTY; known names get
// their palette index + 1; unknown names fall back to FallbackID and are remembered.
// Index 255 has no voxel id, names using it are treated as unknown.
type BlockFactory struct {
	KnownBlocks   map[string]uint8
	UnknownBlocks map[string]bool
	FallbackID    uint8
}

func NewBlockFactory(indices map[string]byte) *BlockFactory {
	known := map[string]uint8{
		"air": EMPTY,
	}
	for name, textureIndex := range indices {
		if textureIndex == 255 {
			util.LogVoxelError("block index out of voxel id range", zap.String("name", name))
			continue
		}
		known[name] = textureIndex + 1
	}
	return &BlockFactory{
		KnownBlocks:   known,
		UnknownBlocks: map[string]bool{},
		FallbackID:    1,
	}
}

func (f *BlockFactory) GetBlockByName(name string) uint8 {
	if voxelID, exists := f.KnownBlocks[name]; exists {
		return voxelID
	}
	f.UnknownBlocks[name] = true
	return f.FallbackID
}

// UnknownNames lists the names that fell back, sorted.
func (f *BlockFactory) UnknownNames() []string {
	names := make([]string, 0, len(f.UnknownBlocks))
	for name := range f.UnknownBlocks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
