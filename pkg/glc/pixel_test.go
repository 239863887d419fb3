package glc

import (
	"testing"

	"github.com/taigrr/glc/pkg/math3d"
)

func TestPixelMapperWorld(t *testing.T) {
	pm := PixelMapper{Width: 256, Height: 256, ClipWidth: 5, ClipHeight: 5}
	step := 5.0 / 256

	tests := []struct {
		name  string
		index int
		want  math3d.Vec2
	}{
		{"first pixel", 0, math3d.V2(-2.5, -2.5)},
		{"center", 128*256 + 128, math3d.V2(0, 0)},
		{"end of first row", 255, math3d.V2(127*step, -2.5)},
		{"last pixel", 256*256 - 1, math3d.V2(127*step, 127*step)},
		{"row two", 256 + 3, math3d.V2(-125*step, -127*step)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pm.World(tt.index); got != tt.want {
				t.Errorf("World(%d) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}

func TestPixelMapperOddSize(t *testing.T) {
	pm := PixelMapper{Width: 3, Height: 5, ClipWidth: 3, ClipHeight: 5}
	// col 0 - 1.5 truncates toward zero to -1.
	if got := pm.World(0); got != math3d.V2(-1, -2) {
		t.Errorf("World(0) = %v, want (-1,-2)", got)
	}
	if got := pm.World(pm.Len() - 1); got != math3d.V2(0, 1) {
		t.Errorf("World(last) = %v, want (0,1)", got)
	}
}

func BenchmarkCastRay(b *testing.B) {
	tris := make([]Triangle, 0, 64)
	for i := range 64 {
		tris = append(tris, facing(-float64(i+1)))
	}
	r := down(0.1, 0.1)
	for b.Loop() {
		CastRay(r, tris)
	}
}
