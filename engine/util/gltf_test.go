package util

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

func quadMesh(name, material string, translation [3]float32, withUVs bool) ExportMesh {
	m := ExportMesh{
		Name:        name,
		Positions:   [][3]float32{{0, 1, 0}, {0, 0, 0}, {0, 1, 1}, {0, 0, 1}},
		Normals:     [][3]float32{{-1, 0, 0}, {-1, 0, 0}, {-1, 0, 0}, {-1, 0, 0}},
		Indices:     []uint32{0, 1, 2, 2, 1, 3},
		Translation: translation,
		Material:    material,
		Color:       [4]float32{1, 0, 0, 1},
	}
	if withUVs {
		m.UVs = [][2]float32{{0, 1}, {0, 0}, {1, 1}, {1, 0}}
	}
	return m
}

func TestBuildGLTFDocument(t *testing.T) {
	doc := BuildGLTFDocument([]ExportMesh{
		quadMesh("chunk_0_0_0", "stone", [3]float32{0, 0, 0}, false),
		{Name: "empty", Material: "stone"},
		quadMesh("chunk_1_0_0", "stone", [3]float32{16, 0, 0}, true),
		quadMesh("chunk_2_0_0", "grass", [3]float32{32, 0, 0}, false),
	})

	if len(doc.Meshes) != 3 {
		t.Fatalf("expected 3 meshes (empty one skipped), got %d", len(doc.Meshes))
	}
	if len(doc.Nodes) != 3 || len(doc.Scenes[0].Nodes) != 3 {
		t.Fatalf("expected 3 nodes in the scene, got %d/%d", len(doc.Nodes), len(doc.Scenes[0].Nodes))
	}
	if len(doc.Materials) != 2 {
		t.Errorf("expected 2 shared materials, got %d", len(doc.Materials))
	}
	if doc.Nodes[1].Translation != [3]float32{16, 0, 0} {
		t.Errorf("unexpected translation %v", doc.Nodes[1].Translation)
	}
	if _, ok := doc.Meshes[0].Primitives[0].Attributes["TEXCOORD_0"]; ok {
		t.Error("untextured mesh should not carry UVs")
	}
	if _, ok := doc.Meshes[1].Primitives[0].Attributes["TEXCOORD_0"]; !ok {
		t.Error("textured mesh should carry UVs")
	}
}

func TestSaveGLTFRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.glb")
	if err := SaveGLTF(path, []ExportMesh{quadMesh("chunk_0_0_0", "stone", [3]float32{}, true)}); err != nil {
		t.Fatalf("SaveGLTF: %v", err)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatalf("gltf.Open: %v", err)
	}
	if len(doc.Meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(doc.Meshes))
	}
	primitive := doc.Meshes[0].Primitives[0]
	positions, err := modeler.ReadPosition(doc, doc.Accessors[primitive.Attributes["POSITION"]], nil)
	if err != nil {
		t.Fatalf("ReadPosition: %v", err)
	}
	if len(positions) != 4 {
		t.Errorf("expected 4 positions, got %d", len(positions))
	}
	indices, err := modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], nil)
	if err != nil {
		t.Fatalf("ReadIndices: %v", err)
	}
	want := []uint32{0, 1, 2, 2, 1, 3}
	if len(indices) != len(want) {
		t.Fatalf("expected %d indices, got %d", len(want), len(indices))
	}
	for i := range want {
		if indices[i] != want[i] {
			t.Errorf("index %d: got %d, want %d", i, indices[i], want[i])
		}
	}
}

func TestSaveGLTFBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "world.glb")
	if err := SaveGLTF(path, nil); err == nil {
		t.Error("expected error for unwritable path")
	}
}
