package voxel

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/gzip"
)

func sectionRow(minBlock Int3, shape [3]uint8, offset, size uint32) []byte {
	row := make([]byte, sectionIndexSize)
	binary.LittleEndian.PutUint32(row[0:4], uint32(minBlock.X))
	binary.LittleEndian.PutUint32(row[4:8], uint32(minBlock.Y))
	binary.LittleEndian.PutUint32(row[8:12], uint32(minBlock.Z))
	copy(row[12:15], shape[:])
	binary.LittleEndian.PutUint32(row[15:19], offset)
	binary.LittleEndian.PutUint32(row[19:23], size)
	return row
}

func TestDecodeSectionTable(t *testing.T) {
	table := append(sectionRow(Int3{-16, 0, 32}, [3]uint8{16, 2, 1}, 8, 100), sectionRow(Int3{0, -64, 0}, [3]uint8{1, 1, 1}, 108, 20)...)
	table = append(table, 1, 2, 3) // trailing partial row is ignored
	sections := decodeSectionTable(table)
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	want := SectionIndex{MinBlockX: -16, MinBlockY: 0, MinBlockZ: 32, ShapeX: 16, ShapeY: 2, ShapeZ: 1, Offset: 8, Size: 100}
	if sections[0] != want {
		t.Errorf("section 0 = %+v, want %+v", sections[0], want)
	}
	if sections[1].MinBlockY != -64 || sections[1].Offset != 108 {
		t.Errorf("section 1 = %+v", sections[1])
	}
}

func TestDecodeBlocks(t *testing.T) {
	palette := []*BlockDefinition{{Name: "air"}, {Name: "stone"}}
	blocks, err := decodeBlocks([]int32{1, 0, 1}, palette)
	if err != nil {
		t.Fatal(err)
	}
	if blocks[0].Name != "stone" || blocks[1].Name != "air" {
		t.Errorf("decoded %v", blocks)
	}
	if _, err := decodeBlocks([]byte{2}, palette); err == nil {
		t.Error("palette overflow accepted")
	}
	if _, err := decodeBlocks([]int32{-1}, palette); err == nil {
		t.Error("negative palette index accepted")
	}
}

func testSection() *ConstructionSection {
	stone := &BlockDefinition{Name: "stone"}
	air := &BlockDefinition{Name: "air"}
	return &ConstructionSection{
		Blocks:    []*BlockDefinition{stone, air, stone, nil},
		ShapeX:    2,
		ShapeY:    1,
		ShapeZ:    2,
		MinBlockX: -2,
		MinBlockY: 10,
		MinBlockZ: 3,
		BlockEntities: []BlockEntity{
			{Name: "chest", X: 5, Y: 11, Z: 3},
		},
	}
}

func TestConstructionSectionForEachBlock(t *testing.T) {
	var visited []Int3
	var names []string
	testSection().ForEachBlock(func(pos Int3, block *BlockDefinition) {
		visited = append(visited, pos)
		if block == nil {
			names = append(names, "")
		} else {
			names = append(names, block.Name)
		}
	})
	wantPos := []Int3{{-2, 10, 3}, {-2, 10, 4}, {-1, 10, 3}, {-1, 10, 4}, {5, 11, 3}}
	wantNames := []string{"stone", "air", "stone", "", "chest"}
	for i := range wantPos {
		if visited[i] != wantPos[i] || names[i] != wantNames[i] {
			t.Errorf("visit %d = %v %q, want %v %q", i, visited[i], names[i], wantPos[i], wantNames[i])
		}
	}
}

func TestConstructionImport(t *testing.T) {
	construction := &Construction{Sections: []*ConstructionSection{testSection()}}
	minCorner, maxCorner := construction.Bounds()
	if minCorner != (Int3{-2, 10, 3}) || maxCorner != (Int3{0, 11, 5}) {
		t.Errorf("Bounds() = %v, %v", minCorner, maxCorner)
	}

	bf := NewBlockFactory(map[string]byte{"stone": 2})
	voxelMap := NewMapFromConstruction(bf, construction, 4)
	if got := voxelMap.GetVoxel(Int3{0, 0, 0}); got != 3 {
		t.Errorf("stone at origin reads %d, want 3", got)
	}
	if got := voxelMap.GetVoxel(Int3{0, 0, 1}); got != EMPTY {
		t.Errorf("air reads %d", got)
	}
	if got := voxelMap.GetVoxel(Int3{7, 1, 0}); got != bf.FallbackID {
		t.Errorf("chest reads %d, want fallback", got)
	}
	if voxelMap.Size() != (Int3{4, 4, 4}) {
		t.Errorf("map size %v", voxelMap.Size())
	}
}

type testMetadata struct {
	SectionIndexTable []byte `nbt:"section_index_table"`
	BlockPalette      []struct {
		Name      string `nbt:"blockname"`
		NameSpace string `nbt:"namespace"`
	} `nbt:"block_palette"`
}

type testByteSection struct {
	BlocksArrayType byte          `nbt:"blocks_array_type"`
	BlockEntities   []BlockEntity `nbt:"block_entities"`
	Blocks          []byte        `nbt:"blocks"`
}

func gzippedNBT(t *testing.T, value any) []byte {
	t.Helper()
	data, err := nbt.Marshal(value)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	writer := gzip.NewWriter(&buf)
	if _, err := writer.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLoadConstruction(t *testing.T) {
	var file bytes.Buffer
	file.WriteString(constructionMagic)
	sectionOffset := uint32(file.Len())
	section := gzippedNBT(t, testByteSection{
		BlocksArrayType: blocksArrayByte,
		BlockEntities:   []BlockEntity{},
		Blocks:          []byte{1, 0, 0, 1},
	})
	file.Write(section)

	metadata := testMetadata{
		SectionIndexTable: sectionRow(Int3{1, 2, 3}, [3]uint8{1, 2, 2}, sectionOffset, uint32(len(section))),
	}
	metadata.BlockPalette = append(metadata.BlockPalette,
		struct {
			Name      string `nbt:"blockname"`
			NameSpace string `nbt:"namespace"`
		}{"air", "minecraft"},
		struct {
			Name      string `nbt:"blockname"`
			NameSpace string `nbt:"namespace"`
		}{"stone", "minecraft"})
	metadataOffset := int32(file.Len())
	file.Write(gzippedNBT(t, metadata))
	if err := binary.Write(&file, binary.BigEndian, metadataOffset); err != nil {
		t.Fatal(err)
	}
	file.WriteString(constructionMagic)

	filename := filepath.Join(t.TempDir(), "test.construction")
	if err := os.WriteFile(filename, file.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	construction, err := LoadConstruction(filename)
	if err != nil {
		t.Fatal(err)
	}
	if len(construction.Sections) != 1 {
		t.Fatalf("got %d sections", len(construction.Sections))
	}
	loaded := construction.Sections[0]
	if loaded.Min() != (Int3{1, 2, 3}) || loaded.Shape() != (Int3{1, 2, 2}) {
		t.Errorf("section at %v shape %v", loaded.Min(), loaded.Shape())
	}
	var names []string
	for _, block := range loaded.Blocks {
		names = append(names, block.Name)
	}
	if len(names) != 4 || names[0] != "stone" || names[1] != "air" || names[3] != "stone" {
		t.Errorf("blocks = %v", names)
	}
}

func TestLoadConstructionRejectsBadMagic(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "bad.construction")
	if err := os.WriteFile(filename, []byte("notaconstructionfile"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConstruction(filename); err == nil {
		t.Error("bad magic number accepted")
	}
	if _, err := LoadConstruction(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("missing file accepted")
	}
}
