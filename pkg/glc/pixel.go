package glc

import (
	"math"

	"github.com/taigrr/glc/pkg/math3d"
)

// PixelMapper converts linear raster indices into world-scale planar
// coordinates centered on the raster.
type PixelMapper struct {
	Width, Height         int
	ClipWidth, ClipHeight float64
}

// World returns the planar coordinate of the pixel at index
// (row-major, index = row*Width + col).
func (m PixelMapper) World(index int) math3d.Vec2 {
	col := index % m.Width
	row := index / m.Width
	s := math.Trunc(float64(col) - 0.5*float64(m.Width))
	t := math.Trunc(float64(row) - 0.5*float64(m.Height))
	return math3d.Vec2{
		X: s * m.ClipWidth / float64(m.Width),
		Y: t * m.ClipHeight / float64(m.Height),
	}
}

// Len returns the number of pixels covered by the mapper.
func (m PixelMapper) Len() int {
	return m.Width * m.Height
}
