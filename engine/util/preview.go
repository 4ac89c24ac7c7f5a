package util

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

// HeightField is a top-down grid of column heights; a negative height is an empty column.
type HeightField struct {
	Width, Depth int
	MinHeight    int32
	MaxHeight    int32
	Heights      []int32 // x + z*Width
}

func NewHeightField(width, depth int) *HeightField {
	heights := make([]int32, width*depth)
	for i := range heights {
		heights[i] = -1
	}
	return &HeightField{Width: width, Depth: depth, Heights: heights}
}

func (h *HeightField) Set(x, z int, height int32) {
	h.Heights[x+z*h.Width] = height
	if height > h.MaxHeight {
		h.MaxHeight = height
	}
	if height < h.MinHeight {
		h.MinHeight = height
	}
}

func (h *HeightField) At(x, z int) int32 {
	return h.Heights[x+z*h.Width]
}

// Image shades every column from dark (low) to bright (high); empty columns stay transparent.
func (h *HeightField) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, h.Width, h.Depth))
	span := float32(h.MaxHeight - h.MinHeight)
	if span <= 0 {
		span = 1
	}
	for z := 0; z < h.Depth; z++ {
		for x := 0; x < h.Width; x++ {
			height := h.At(x, z)
			if height < 0 {
				continue
			}
			shade := uint8(Mix(40, 255, float32(height-h.MinHeight)/span))
			img.SetNRGBA(x, z, color.NRGBA{R: shade / 2, G: shade, B: shade / 3, A: 255})
		}
	}
	return img
}

// WritePreview writes the height field as a PNG, scaled up by scale with nearest-neighbour sampling.
func WritePreview(filename string, field *HeightField, scale int) error {
	if scale < 1 {
		scale = 1
	}
	src := field.Image()
	dst := image.NewNRGBA(image.Rect(0, 0, field.Width*scale, field.Depth*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "creating preview file")
	}
	defer file.Close()
	if err = png.Encode(file, dst); err != nil {
		return errors.Wrapf(err, "encoding preview %s", filename)
	}
	LogIOInfo("preview written", zap.String("path", filename), zap.Int("width", dst.Bounds().Dx()), zap.Int("height", dst.Bounds().Dy()))
	return nil
}
