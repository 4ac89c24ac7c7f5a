package util

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"
)

// ExportMesh is one placed triangle mesh as handed to an external renderer.
type ExportMesh struct {
	Name        string
	Positions   [][3]float32
	Normals     [][3]float32
	UVs         [][2]float32 // optional
	Indices     []uint32
	Translation [3]float32
	Material    string
	Color       [4]float32
}

// BuildGLTFDocument puts every non-empty mesh into its own node of the default scene.
// Meshes sharing a material name share one glTF material.
func BuildGLTFDocument(meshes []ExportMesh) *gltf.Document {
	doc := gltf.NewDocument()
	materialIndices := make(map[string]uint32)
	for _, mesh := range meshes {
		if len(mesh.Indices) == 0 {
			continue
		}
		materialIndex, known := materialIndices[mesh.Material]
		if !known {
			color := mesh.Color
			doc.Materials = append(doc.Materials, &gltf.Material{
				Name:                 mesh.Material,
				PBRMetallicRoughness: &gltf.PBRMetallicRoughness{BaseColorFactor: &color},
			})
			materialIndex = uint32(len(doc.Materials) - 1)
			materialIndices[mesh.Material] = materialIndex
		}

		attributes := map[string]uint32{
			"POSITION": modeler.WritePosition(doc, mesh.Positions),
			"NORMAL":   modeler.WriteNormal(doc, mesh.Normals),
		}
		if len(mesh.UVs) > 0 {
			attributes["TEXCOORD_0"] = modeler.WriteTextureCoord(doc, mesh.UVs)
		}
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: mesh.Name,
			Primitives: []*gltf.Primitive{{
				Indices:    gltf.Index(modeler.WriteIndices(doc, mesh.Indices)),
				Attributes: attributes,
				Material:   gltf.Index(materialIndex),
				Mode:       gltf.PrimitiveTriangles,
			}},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name:        mesh.Name,
			Mesh:        gltf.Index(uint32(len(doc.Meshes) - 1)),
			Translation: mesh.Translation,
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	}
	return doc
}

// SaveGLTF writes the meshes as .glb when filename ends in .glb, as .gltf otherwise.
func SaveGLTF(filename string, meshes []ExportMesh) error {
	doc := BuildGLTFDocument(meshes)
	var err error
	if strings.EqualFold(filepath.Ext(filename), ".glb") {
		err = gltf.SaveBinary(doc, filename)
	} else {
		err = gltf.Save(doc, filename)
	}
	if err != nil {
		return errors.Wrapf(err, "saving glTF to %s", filename)
	}
	LogIOInfo("glTF written", zap.String("path", filename), zap.Int("meshes", len(doc.Meshes)))
	return nil
}
