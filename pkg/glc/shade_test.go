package glc

import (
	"image/color"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/taigrr/glc/pkg/math3d"
)

func TestColorize(t *testing.T) {
	tests := []struct {
		name string
		n    math3d.Vec3
		want color.RGBA
	}{
		{"+x", math3d.V3(1, 0, 0), color.RGBA{255, 128, 128, 255}},
		{"-x", math3d.V3(-1, 0, 0), color.RGBA{0, 128, 128, 255}},
		{"+z", math3d.V3(0, 0, 1), color.RGBA{128, 128, 255, 255}},
		{"-y", math3d.V3(0, -1, 0), color.RGBA{128, 0, 128, 255}},
		{"unnormalized", math3d.V3(0, 7, 0), color.RGBA{128, 255, 128, 255}},
		{"zero", math3d.Vec3{}, color.RGBA{128, 128, 128, 255}},
		{"nan", math3d.V3(math.NaN(), 0, 0), color.RGBA{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Colorize(tt.n); got != tt.want {
				t.Errorf("Colorize(%v) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestColorizeSignRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		n := math3d.V3(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()).Normalize()
		if n.IsZero() {
			continue
		}
		if Colorize(n) != Colorize(n.Negate().Negate()) {
			t.Fatalf("Colorize not stable under double negation for %v", n)
		}
		c := Colorize(n)
		if c.A != 255 {
			t.Fatalf("Expected opaque color, got %v", c)
		}
		// Opposite normals land on opposite sides of mid-gray.
		o := Colorize(n.Negate())
		for _, pair := range [][2]uint8{{c.R, o.R}, {c.G, o.G}, {c.B, o.B}} {
			if s := int(pair[0]) + int(pair[1]); s < 254 || s > 256 {
				t.Fatalf("Colorize(%v)=%v and its negation %v are not symmetric", n, c, o)
			}
		}
	}
}
