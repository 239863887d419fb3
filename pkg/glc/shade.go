package glc

import (
	"image/color"
	"math"

	"github.com/taigrr/glc/pkg/math3d"
)

// Colorize maps a normal to an opaque color, sending each component of the
// normalized vector from [-1,1] to [0,255].
func Colorize(n math3d.Vec3) color.RGBA {
	n = n.Normalize()
	return color.RGBA{
		R: channel(n.X),
		G: channel(n.Y),
		B: channel(n.Z),
		A: 255,
	}
}

func channel(c float64) uint8 {
	v := math.Round(255 * (c*0.5 + 0.5))
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
