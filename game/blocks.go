package game

import (
	"github.com/memmaker/voxeleditor/engine/util"
	"github.com/memmaker/voxeleditor/engine/voxel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultBlockNames is the palette used when nothing else is configured.
// Block ids are the position in this list + 1, id 0 is air.
var DefaultBlockNames = []string{
	"stone",
	"dirt",
	"grass_block",
	"sand",
	"gravel",
	"cobblestone",
	"oak_planks",
	"oak_log",
	"bricks",
	"glass",
}

type BlockLibrary struct {
	names    []string
	nameToID map[string]uint8
}

func NewBlockLibrary(blockNames []string) *BlockLibrary {
	if len(blockNames) > 255 {
		panic(errors.Errorf("too many blocks: %d", len(blockNames)))
	}
	b := &BlockLibrary{
		names:    []string{"air"},
		nameToID: map[string]uint8{"air": voxel.EMPTY},
	}
	for _, name := range blockNames {
		b.addBlock(name)
	}
	return b
}

func (b *BlockLibrary) addBlock(name string) {
	if _, exists := b.nameToID[name]; exists {
		panic(errors.Errorf("block %s already exists", name))
	}
	b.nameToID[name] = uint8(len(b.names))
	b.names = append(b.names, name)
}

func (b *BlockLibrary) LastBlockID() uint8 {
	return uint8(len(b.names) - 1)
}

// IDOf returns the voxel id of the block; unknown names are air.
func (b *BlockLibrary) IDOf(name string) uint8 {
	if blockID, exists := b.nameToID[name]; exists {
		return blockID
	}
	util.LogGameWarning("unknown block name", zap.String("name", name))
	return voxel.EMPTY
}

func (b *BlockLibrary) NameOf(blockID uint8) string {
	if int(blockID) >= len(b.names) {
		return ""
	}
	return b.names[blockID]
}

// NewBlockFactory returns a factory resolving construction block names to this library's ids.
func (b *BlockLibrary) NewBlockFactory() *voxel.BlockFactory {
	indices := make(map[string]byte, len(b.names)-1)
	for blockID, name := range b.names[1:] {
		indices[name] = byte(blockID)
	}
	return voxel.NewBlockFactory(indices)
}
