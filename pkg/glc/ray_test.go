package glc

import (
	"testing"

	"github.com/taigrr/glc/pkg/math3d"
)

func TestGenerateRayReference(t *testing.T) {
	tests := []struct {
		name      string
		p         Projection
		pixel     math3d.Vec2
		origin    math3d.Vec3
		direction math3d.Vec3
	}{
		{"perspective center", Perspective, math3d.V2(0, 0), math3d.V3(0, 0, 1), math3d.V3(0, 0, -1)},
		{"perspective offset", Perspective, math3d.V2(1, 0.5), math3d.V3(0.5, 0.25, 1), math3d.V3(0.5, 0.25, -1)},
		{"orthogonal offset", Orthogonal, math3d.V2(1, 0.5), math3d.V3(1, 0.5, 1), math3d.V3(0, 0, -1)},
		{"pushbroom offset", Pushbroom, math3d.V2(1, 0.5), math3d.V3(1, 0, 1), math3d.V3(0, 0.5, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(tt.p)
			r := GenerateRay(m.Image, m.Front, tt.pixel)
			if !vecNear(r.Origin, tt.origin) {
				t.Errorf("Origin = %v, want %v", r.Origin, tt.origin)
			}
			if !vecNear(r.Direction, tt.direction) {
				t.Errorf("Direction = %v, want %v", r.Direction, tt.direction)
			}
		})
	}
}

func TestPerspectiveCenterRayIsExact(t *testing.T) {
	m := NewModel(Perspective)
	r := GenerateRay(m.Image, m.Front, math3d.V2(0, 0))
	want := Ray{Origin: math3d.V3(0, 0, 1), Direction: math3d.V3(0, 0, -1)}
	if r != want {
		t.Errorf("GenerateRay = %+v, want %+v", r, want)
	}
}

func TestRayGeneratorMatchesGenerateRay(t *testing.T) {
	pm := PixelMapper{Width: 32, Height: 24, ClipWidth: 5, ClipHeight: 5}
	for _, p := range Projections() {
		m := NewModel(p)
		g, err := NewRayGenerator(m)
		if err != nil {
			t.Fatalf("NewRayGenerator(%v): %v", p, err)
		}
		if g.Model() != m {
			t.Errorf("Model() = %+v, want %+v", g.Model(), m)
		}
		for i := range pm.Len() {
			pixel := pm.World(i)
			if got, want := g.Ray(pixel), GenerateRay(m.Image, m.Front, pixel); got != want {
				t.Fatalf("%v pixel %d: generator %+v, GenerateRay %+v", p, i, got, want)
			}
		}
	}
}

func TestRayAt(t *testing.T) {
	r := Ray{Origin: math3d.V3(1, 2, 3), Direction: math3d.V3(0, -1, 2)}
	if got := r.At(2); got != math3d.V3(1, 0, 7) {
		t.Errorf("At(2) = %v", got)
	}
}

func vecNear(a, b math3d.Vec3) bool {
	return a.Sub(b).Len() < 1e-12
}
