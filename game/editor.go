package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxeleditor/config"
	"github.com/memmaker/voxeleditor/engine/util"
	"github.com/memmaker/voxeleditor/engine/voxel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Stats summarises one editor run.
type Stats struct {
	Voxels    int
	Chunks    int
	Meshes    int
	Vertices  int
	Triangles int
}

// Editor builds a world from the config, meshes it and writes the configured outputs.
type Editor struct {
	cfg      *config.Config
	blocks   *BlockLibrary
	world    *voxel.Map
	selector voxel.MaterialSelector
	meshes   []voxel.PlacedMesh
	stats    Stats
	timer    *util.Timer
}

func NewEditor(cfg *config.Config) *Editor {
	return &Editor{
		cfg:      cfg,
		blocks:   NewBlockLibrary(DefaultBlockNames),
		selector: NewMaterialSelector(cfg.Meshing),
		timer:    util.NewTimer(),
	}
}

func (e *Editor) World() *voxel.Map {
	return e.world
}

func (e *Editor) Meshes() []voxel.PlacedMesh {
	return e.meshes
}

func (e *Editor) Stats() Stats {
	return e.stats
}

func (e *Editor) Timer() *util.Timer {
	return e.timer
}

// BuildWorld creates the map and fills it, either from a construction file or a terrain.
func (e *Editor) BuildWorld() error {
	defer e.timer.Start("build")()
	world := e.cfg.World
	if e.cfg.Terrain.Kind == config.TerrainConstruction {
		construction, err := voxel.LoadConstruction(e.cfg.Terrain.ConstructionPath)
		if err != nil {
			return err
		}
		e.world = voxel.NewMapFromConstruction(e.blocks.NewBlockFactory(), construction, world.CellSize)
		for _, chunkPos := range e.world.ChunkCoords() {
			e.stats.Voxels += e.world.GetChunk(chunkPos).SolidCount()
		}
		e.stats.Chunks = e.world.ChunkCount()
		return nil
	}

	e.world = voxel.NewMap(voxel.Int3{X: world.SizeX, Y: world.SizeY, Z: world.SizeZ}, world.CellSize)
	terrain, err := NewTerrain(e.cfg.Terrain, e.blocks)
	if err != nil {
		return err
	}
	if terrain != nil {
		e.stats.Voxels = terrain.Populate(e.world)
		util.LogGameInfo("terrain populated",
			zap.String("terrain", terrain.GetName()),
			zap.String("size", e.world.Size().ToString()),
			zap.Int32("cell_size", e.world.CellSize()),
			zap.Int("voxels", e.stats.Voxels))
	}
	e.stats.Chunks = e.world.ChunkCount()
	return nil
}

// GenerateMeshes meshes every chunk, in parallel when more than one worker is configured.
func (e *Editor) GenerateMeshes() []voxel.PlacedMesh {
	stop := e.timer.Start("mesh")
	e.meshes = e.world.GenerateAllMeshesParallel(e.selector, e.cfg.Meshing.Workers)
	e.stats.Chunks = e.world.ChunkCount()
	e.stats.Meshes = len(e.meshes)
	e.stats.Vertices, e.stats.Triangles = voxel.CountGeometry(e.meshes)
	util.LogGameInfo("world meshed",
		zap.Int("chunks", e.stats.Chunks),
		zap.Int("meshes", e.stats.Meshes),
		zap.Int("triangles", e.stats.Triangles),
		zap.Int("workers", e.cfg.Meshing.Workers),
		zap.Duration("took", stop()))
	return e.meshes
}

// HeightField samples the highest solid voxel of every column inside the world extent.
func (e *Editor) HeightField() *util.HeightField {
	size := e.world.Size()
	field := util.NewHeightField(int(size.X), int(size.Z))
	for z := int32(0); z < size.Z; z++ {
		for x := int32(0); x < size.X; x++ {
			if y, ok := e.world.TopVoxel(x, z, 0, size.Y-1); ok {
				field.Set(int(x), int(z), y)
			}
		}
	}
	return field
}

// Export writes the glTF scene and the preview image, skipping outputs without a path.
func (e *Editor) Export() error {
	defer e.timer.Start("export")()
	export := e.cfg.Export
	if export.GLTFPath != "" {
		exportMeshes := make([]util.ExportMesh, 0, len(e.meshes))
		for _, placed := range e.meshes {
			exportMeshes = append(exportMeshes, placed.ToExportMesh())
		}
		if err := util.SaveGLTF(export.GLTFPath, exportMeshes); err != nil {
			return err
		}
	}
	if export.PreviewPath != "" {
		if err := util.WritePreview(export.PreviewPath, e.HeightField(), export.PreviewScale); err != nil {
			return err
		}
	}
	return nil
}

// Run builds, meshes and exports the world.
func (e *Editor) Run() (Stats, error) {
	if err := e.BuildWorld(); err != nil {
		return e.stats, errors.Wrap(err, "building world")
	}
	e.GenerateMeshes()
	if err := e.Export(); err != nil {
		return e.stats, errors.Wrap(err, "exporting world")
	}
	util.LogGameInfo("phase timings", e.timer.Fields()...)
	return e.stats, nil
}

// Pick returns the first solid voxel along the segment.
func (e *Editor) Pick(from, to mgl32.Vec3) voxel.RayHit {
	return e.world.Raycast(from, to)
}

// PlaceVoxel puts voxelID against the face of the first solid voxel along the segment.
// It reports whether a voxel was placed.
func (e *Editor) PlaceVoxel(from, to mgl32.Vec3, voxelID uint8) bool {
	hit := e.Pick(from, to)
	if !hit.Hit || hit.Previous == hit.Voxel || voxelID == voxel.EMPTY {
		return false
	}
	e.world.SetVoxel(hit.Previous, voxelID, true)
	util.LogGameInfo("voxel placed", zap.String("pos", hit.Previous.ToString()), zap.Uint8("id", voxelID))
	return true
}

// RemoveVoxel clears the first solid voxel along the segment.
func (e *Editor) RemoveVoxel(from, to mgl32.Vec3) bool {
	hit := e.Pick(from, to)
	if !hit.Hit {
		return false
	}
	e.world.SetVoxel(hit.Voxel, voxel.EMPTY, false)
	util.LogGameInfo("voxel removed", zap.String("pos", hit.Voxel.ToString()))
	return true
}

// FillBox writes voxelID into the box spanned by two corners; EMPTY clears it.
func (e *Editor) FillBox(a, b voxel.Int3, voxelID uint8) int {
	changed := e.world.FillBox(voxel.NewBox(a, b), voxelID)
	util.LogGameInfo("box filled",
		zap.String("from", a.ToString()),
		zap.String("to", b.ToString()),
		zap.Uint8("id", voxelID),
		zap.Int("changed", changed))
	return changed
}
