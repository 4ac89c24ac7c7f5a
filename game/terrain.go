package game

import (
	"math"
	"math/rand"

	"github.com/memmaker/voxeleditor/config"
	"github.com/memmaker/voxeleditor/engine/util"
	"github.com/memmaker/voxeleditor/engine/voxel"
	"github.com/ojrac/opensimplex-go"
	"github.com/pkg/errors"
)

// Terrain fills a world with voxels. Populate returns the number of solid voxels written.
type Terrain interface {
	Populate(world *voxel.Map) int
	GetName() string
}

// NewTerrain returns the terrain for cfg.Kind, or nil for "none" and "construction",
// which are not generated.
func NewTerrain(cfg config.TerrainConfig, blocks *BlockLibrary) (Terrain, error) {
	switch cfg.Kind {
	case config.TerrainSine:
		return NewSineTerrain(cfg.Seed, cfg.MaxVoxelID), nil
	case config.TerrainNoise:
		return NewNoiseTerrain(cfg.Seed, cfg.Scale, blocks), nil
	case config.TerrainFlat:
		return FlatTerrain{Height: cfg.FloorHeight, VoxelID: blocks.IDOf("stone")}, nil
	case config.TerrainNone, config.TerrainConstruction:
		return nil, nil
	}
	return nil, errors.Errorf("unknown terrain kind %q", cfg.Kind)
}

// SineTerrain is the rolling demo landscape: two sine waves over x and z, one chunk edge
// per period, filled with random voxel ids from [0, maxVoxelID). Id 0 leaves a hole.
type SineTerrain struct {
	random     *rand.Rand
	maxVoxelID int
}

func NewSineTerrain(seed int64, maxVoxelID int) *SineTerrain {
	return &SineTerrain{
		random:     rand.New(rand.NewSource(seed)),
		maxVoxelID: maxVoxelID,
	}
}

func (s *SineTerrain) GetName() string {
	return config.TerrainSine
}

// Height is the column height at (x, z) for the given chunk edge length.
func (s *SineTerrain) Height(x, z int32, cellSize int32) float64 {
	cs := float64(cellSize)
	return (math.Sin(float64(x)/cs*math.Pi*2)+math.Sin(float64(z)/cs*math.Pi*3))*(cs/6) + cs/2
}

func (s *SineTerrain) Populate(world *voxel.Map) int {
	size := world.Size()
	written := 0
	for y := int32(0); y < size.Y; y++ {
		for z := int32(0); z < size.Z; z++ {
			for x := int32(0); x < size.X; x++ {
				if float64(y) >= s.Height(x, z, world.CellSize()) {
					continue
				}
				voxelID := s.nextVoxelID()
				world.SetVoxel(voxel.Int3{X: x, Y: y, Z: z}, voxelID, true)
				if voxelID != voxel.EMPTY {
					written++
				}
			}
		}
	}
	return written
}

func (s *SineTerrain) nextVoxelID() uint8 {
	if s.maxVoxelID <= 1 {
		return 1
	}
	return uint8(s.random.Intn(s.maxVoxelID))
}

// NoiseTerrain is an opensimplex height field with a grass top, a few layers of dirt and
// stone below.
type NoiseTerrain struct {
	noise     opensimplex.Noise
	scale     float64
	topID     uint8
	fillerID  uint8
	baseID    uint8
	dirtDepth int32
}

func NewNoiseTerrain(seed int64, scale float64, blocks *BlockLibrary) *NoiseTerrain {
	return &NoiseTerrain{
		noise:     opensimplex.New(seed),
		scale:     math.Max(scale, 1),
		topID:     blocks.IDOf("grass_block"),
		fillerID:  blocks.IDOf("dirt"),
		baseID:    blocks.IDOf("stone"),
		dirtDepth: 3,
	}
}

func (n *NoiseTerrain) GetName() string {
	return config.TerrainNoise
}

// Height maps the noise at (x, z) to a column height in [1, maxY].
func (n *NoiseTerrain) Height(x, z int32, maxY int32) int32 {
	value := n.noise.Eval2(float64(x)/n.scale, float64(z)/n.scale)
	normalized := util.Clamp((value+1)/2, 0, 1)
	return util.ClampInt32(int32(normalized*float64(maxY)), 1, maxY)
}

func (n *NoiseTerrain) Populate(world *voxel.Map) int {
	size := world.Size()
	written := 0
	for x := int32(0); x < size.X; x++ {
		for z := int32(0); z < size.Z; z++ {
			blockHeight := n.Height(x, z, size.Y)
			for y := int32(0); y < blockHeight; y++ {
				voxelID := n.baseID
				switch {
				case y == blockHeight-1:
					voxelID = n.topID
				case y >= blockHeight-1-n.dirtDepth:
					voxelID = n.fillerID
				}
				if voxelID == voxel.EMPTY {
					continue
				}
				world.SetVoxel(voxel.Int3{X: x, Y: y, Z: z}, voxelID, true)
				written++
			}
		}
	}
	return written
}

// FlatTerrain fills the bottom Height layers of the world with one voxel id.
type FlatTerrain struct {
	Height  int32
	VoxelID uint8
}

func (f FlatTerrain) GetName() string {
	return config.TerrainFlat
}

func (f FlatTerrain) Populate(world *voxel.Map) int {
	size := world.Size()
	height := min(f.Height, size.Y)
	if f.VoxelID == voxel.EMPTY || height <= 0 {
		return 0
	}
	floor := voxel.NewBox(voxel.Int3{}, voxel.Int3{X: size.X - 1, Y: height - 1, Z: size.Z - 1})
	return world.FillBox(floor, f.VoxelID)
}
