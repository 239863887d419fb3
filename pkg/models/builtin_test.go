package models

import (
	"testing"

	"github.com/taigrr/glc/pkg/math3d"
)

func TestParseObject(t *testing.T) {
	for _, o := range Objects() {
		got, err := ParseObject(o.String())
		if err != nil {
			t.Errorf("ParseObject(%q): %v", o, err)
		}
		if got != o {
			t.Errorf("ParseObject(%q) = %v", o, got)
		}
	}
	if got, err := ParseObject(" Teapot "); err != nil || got != Teapot {
		t.Errorf("ParseObject(\" Teapot \") = %v, %v", got, err)
	}
	if _, err := ParseObject("dragon"); err == nil {
		t.Error("Expected error for unknown object")
	}
}

func TestBuiltinCube(t *testing.T) {
	cube, err := Builtin(Cube)
	if err != nil {
		t.Fatalf("Builtin(Cube): %v", err)
	}
	if cube.TriangleCount() != 12 {
		t.Errorf("Expected 12 triangles, got %d", cube.TriangleCount())
	}
	if cube.BoundsMin != math3d.V3(-0.5, -0.5, -0.5) || cube.BoundsMax != math3d.V3(0.5, 0.5, 0.5) {
		t.Errorf("Expected unit cube bounds, got %v..%v", cube.BoundsMin, cube.BoundsMax)
	}
	assertOutward(t, cube)
}

func TestBuiltinTriangle(t *testing.T) {
	tri, err := Builtin(Triangle)
	if err != nil {
		t.Fatalf("Builtin(Triangle): %v", err)
	}
	if tri.TriangleCount() != 4 {
		t.Errorf("Expected 4 triangles, got %d", tri.TriangleCount())
	}
	assertOutward(t, tri)
}

func TestBuiltinTeapot(t *testing.T) {
	pot, err := Builtin(Teapot)
	if err != nil {
		t.Fatalf("Builtin(Teapot): %v", err)
	}
	if err := pot.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if pot.TriangleCount() < 100 {
		t.Errorf("Expected a tessellated teapot, got %d triangles", pot.TriangleCount())
	}
	size := pot.Size()
	largest := max(size.X, size.Y, size.Z)
	if largest < teapotExtent-1e-9 || largest > teapotExtent+1e-9 {
		t.Errorf("Expected largest dimension %v, got %v", teapotExtent, largest)
	}
	if pot.Size().X <= pot.Size().Z {
		t.Errorf("Expected spout and handle to widen X, size %v", size)
	}
}

func TestBuiltinReturnsCopies(t *testing.T) {
	a, _ := Builtin(Cube)
	b, _ := Builtin(Cube)
	a.Vertices[0] = math3d.V3(7, 7, 7)
	if b.Vertices[0] == a.Vertices[0] {
		t.Error("Builtin meshes share storage")
	}
}

func TestBuiltinUnknown(t *testing.T) {
	if _, err := Builtin(Object(42)); err == nil {
		t.Error("Expected error for unknown object")
	}
	if Object(42).String() != "Object(42)" {
		t.Errorf("Unexpected String: %s", Object(42))
	}
}

// assertOutward checks that every face of a convex mesh centered on the
// origin winds counter-clockwise when seen from outside.
func assertOutward(t *testing.T, m *Mesh) {
	t.Helper()
	center := m.Center()
	for i, f := range m.Faces {
		a, b, c := m.Vertices[f.V[0]], m.Vertices[f.V[1]], m.Vertices[f.V[2]]
		n := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Scale(1.0 / 3)
		if n.Dot(centroid.Sub(center)) <= 0 {
			t.Errorf("Face %d %v winds inward", i, f.V)
		}
	}
}
