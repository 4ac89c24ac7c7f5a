package voxel

import (
	"encoding/binary"
	"io"
	"math"
	"os"

	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

/*
	Amulet construction files ("constrct") start and end with the magic number.
	The 4 bytes before the trailing magic number hold the big endian offset of the
	gzipped NBT metadata. Each section is a separate gzipped NBT compound:

	TAG_Compound({
	    "block_entities": TAG_List([...]),
	    "blocks_array_type": TAG_Byte(),
	    "blocks": TAG_Byte_Array() or TAG_Int_Array()
	})
*/

const constructionMagic = "constrct"

const (
	blocksArrayByte = 7
	blocksArrayInt  = 11
)

type SectionBlockInfo struct {
	BlocksArrayType byte `nbt:"blocks_array_type"`
}
type ByteSection struct {
	BlockEntities []BlockEntity `nbt:"block_entities"`
	Blocks        []byte        `nbt:"blocks"`
}
type IntSection struct {
	BlockEntities []BlockEntity `nbt:"block_entities"`
	Blocks        []int32       `nbt:"blocks"`
}

type BlockEntity struct {
	Namespace string `nbt:"namespace"`
	Name      string `nbt:"base_name"`
	X         int32  `nbt:"x"`
	Y         int32  `nbt:"y"`
	Z         int32  `nbt:"z"`
}

type AmuletMetadata struct {
	SelectionBoxes    []int32 `nbt:"selection_boxes"`
	SectionIndexTable []byte  `nbt:"section_index_table"`
	SectionVersion    byte    `nbt:"section_version"`
	ExportVersion     struct {
		Edition string  `nbt:"edition"`
		Version []int32 `nbt:"version"`
	} `nbt:"export_version"`
	BlockPalette []*BlockDefinition `nbt:"block_palette"`
	CreatedWith  string             `nbt:"created_with"`
}
type BlockDefinition struct {
	Name       string         `nbt:"blockname"`
	NameSpace  string         `nbt:"namespace"`
	Properties map[string]any `nbt:"properties"`
}
type Construction struct {
	Sections []*ConstructionSection
}

// Bounds returns the minimum corner and the exclusive maximum corner over all sections.
func (c *Construction) Bounds() (Int3, Int3) {
	if len(c.Sections) == 0 {
		return Int3{}, Int3{}
	}
	minCorner := Int3{math.MaxInt32, math.MaxInt32, math.MaxInt32}
	maxCorner := Int3{math.MinInt32, math.MinInt32, math.MinInt32}
	for _, section := range c.Sections {
		sMin := section.Min()
		sMax := sMin.Add(section.Shape())
		minCorner = Int3{min(minCorner.X, sMin.X), min(minCorner.Y, sMin.Y), min(minCorner.Z, sMin.Z)}
		maxCorner = Int3{max(maxCorner.X, sMax.X), max(maxCorner.Y, sMax.Y), max(maxCorner.Z, sMax.Z)}
	}
	return minCorner, maxCorner
}

type ConstructionSection struct {
	Blocks        []*BlockDefinition
	ShapeX        uint8
	ShapeY        uint8
	ShapeZ        uint8
	MinBlockX     int32
	MinBlockY     int32
	MinBlockZ     int32
	BlockEntities []BlockEntity
}

func (s *ConstructionSection) Min() Int3 {
	return Int3{s.MinBlockX, s.MinBlockY, s.MinBlockZ}
}

func (s *ConstructionSection) Shape() Int3 {
	return Int3{int32(s.ShapeX), int32(s.ShapeY), int32(s.ShapeZ)}
}

// ForEachBlock visits the section's blocks (x outermost, z innermost) followed by
// its block entities, passing absolute positions. Air may be passed as nil.
func (s *ConstructionSection) ForEachBlock(visit func(pos Int3, block *BlockDefinition)) {
	blockIndex := 0
	for x := s.MinBlockX; x < s.MinBlockX+int32(s.ShapeX); x++ {
		for y := s.MinBlockY; y < s.MinBlockY+int32(s.ShapeY); y++ {
			for z := s.MinBlockZ; z < s.MinBlockZ+int32(s.ShapeZ); z++ {
				var block *BlockDefinition
				if blockIndex < len(s.Blocks) {
					block = s.Blocks[blockIndex]
				}
				visit(Int3{x, y, z}, block)
				blockIndex++
			}
		}
	}
	for _, entity := range s.BlockEntities {
		visit(Int3{entity.X, entity.Y, entity.Z}, &BlockDefinition{Name: entity.Name, NameSpace: entity.Namespace})
	}
}

func LoadConstruction(filename string) (*Construction, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "opening construction")
	}
	defer file.Close()
	construction, err := ReadConstruction(file)
	if err != nil {
		return nil, errors.Wrapf(err, "reading construction %s", filename)
	}
	return construction, nil
}

func ReadConstruction(reader io.ReadSeeker) (*Construction, error) {
	if err := expectMagic(reader, 0, io.SeekStart); err != nil {
		return nil, err
	}
	if err := expectMagic(reader, -int64(len(constructionMagic)), io.SeekEnd); err != nil {
		return nil, err
	}

	if _, err := reader.Seek(-int64(len(constructionMagic))-4, io.SeekEnd); err != nil {
		return nil, errors.Wrap(err, "seeking metadata offset")
	}
	var metaDataOffset int32
	if err := binary.Read(reader, binary.BigEndian, &metaDataOffset); err != nil {
		return nil, errors.Wrap(err, "reading metadata offset")
	}

	var metadata AmuletMetadata
	if err := decodeGzippedNBT(reader, int64(metaDataOffset), &metadata); err != nil {
		return nil, errors.Wrap(err, "decoding metadata")
	}

	sectionTable := decodeSectionTable(metadata.SectionIndexTable)
	sections := make([]*ConstructionSection, len(sectionTable))
	for sIndex, section := range sectionTable {
		var blockInfo SectionBlockInfo
		if err := decodeGzippedNBT(reader, int64(section.Offset), &blockInfo); err != nil {
			return nil, errors.Wrapf(err, "decoding section %d", sIndex)
		}
		cSection := &ConstructionSection{
			ShapeX:    section.ShapeX,
			ShapeY:    section.ShapeY,
			ShapeZ:    section.ShapeZ,
			MinBlockX: section.MinBlockX,
			MinBlockY: section.MinBlockY,
			MinBlockZ: section.MinBlockZ,
		}
		var err error
		switch blockInfo.BlocksArrayType {
		case blocksArrayByte:
			var decodedSection ByteSection
			if err = decodeGzippedNBT(reader, int64(section.Offset), &decodedSection); err != nil {
				return nil, errors.Wrapf(err, "decoding section %d", sIndex)
			}
			cSection.BlockEntities = decodedSection.BlockEntities
			cSection.Blocks, err = decodeBlocks(decodedSection.Blocks, metadata.BlockPalette)
		case blocksArrayInt:
			var decodedSection IntSection
			if err = decodeGzippedNBT(reader, int64(section.Offset), &decodedSection); err != nil {
				return nil, errors.Wrapf(err, "decoding section %d", sIndex)
			}
			cSection.BlockEntities = decodedSection.BlockEntities
			cSection.Blocks, err = decodeBlocks(decodedSection.Blocks, metadata.BlockPalette)
		default:
			err = errors.Errorf("unsupported blocks array type %d", blockInfo.BlocksArrayType)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "section %d", sIndex)
		}
		sections[sIndex] = cSection
	}

	return &Construction{Sections: sections}, nil
}

func expectMagic(reader io.ReadSeeker, offset int64, whence int) error {
	if _, err := reader.Seek(offset, whence); err != nil {
		return errors.Wrap(err, "seeking magic number")
	}
	var magicNumber [len(constructionMagic)]byte
	if err := binary.Read(reader, binary.BigEndian, &magicNumber); err != nil {
		return errors.Wrap(err, "reading magic number")
	}
	if string(magicNumber[:]) != constructionMagic {
		return errors.Errorf("invalid magic number %q", string(magicNumber[:]))
	}
	return nil
}

func decodeGzippedNBT(reader io.ReadSeeker, offset int64, value any) error {
	if _, err := reader.Seek(offset, io.SeekStart); err != nil {
		return err
	}
	gzipReader, err := gzip.NewReader(reader)
	if err != nil {
		return err
	}
	defer gzipReader.Close()
	_, err = nbt.NewDecoder(gzipReader).Decode(value)
	return err
}

func decodeBlocks[T int32 | byte](blocks []T, palette []*BlockDefinition) ([]*BlockDefinition, error) {
	result := make([]*BlockDefinition, len(blocks))
	for i, block := range blocks {
		if int(block) < 0 || int(block) >= len(palette) {
			return nil, errors.Errorf("block %d references palette entry %d of %d", i, block, len(palette))
		}
		result[i] = palette[int(block)]
	}
	return result, nil
}

/*
The section_index_table is an Mx23 byte array, one IIIBBBII row per section
(I = little endian uint32, B = uint8):

III: minimum block X, Y, Z of the section
BBB: shape of the section in X, Y, Z
I:   start of the section data in the file
I:   byte length of the section data
*/

type SectionIndex struct {
	MinBlockX int32
	MinBlockY int32
	MinBlockZ int32
	ShapeX    uint8
	ShapeY    uint8
	ShapeZ    uint8
	Offset    uint32
	Size      uint32
}

const sectionIndexSize = 23

func decodeSectionTable(table []byte) []SectionIndex {
	sectionCount := len(table) / sectionIndexSize
	sections := make([]SectionIndex, sectionCount)
	for i := 0; i < sectionCount; i++ {
		row := table[i*sectionIndexSize : (i+1)*sectionIndexSize]
		sections[i].MinBlockX = int32(binary.LittleEndian.Uint32(row[0:4]))
		sections[i].MinBlockY = int32(binary.LittleEndian.Uint32(row[4:8]))
		sections[i].MinBlockZ = int32(binary.LittleEndian.Uint32(row[8:12]))
		sections[i].ShapeX = row[12]
		sections[i].ShapeY = row[13]
		sections[i].ShapeZ = row[14]
		sections[i].Offset = binary.LittleEndian.Uint32(row[15:19])
		sections[i].Size = binary.LittleEndian.Uint32(row[19:23])
	}
	return sections
}
