package models

import (
	"bytes"
	"embed"
	"fmt"
	"math"
	"strings"

	"github.com/taigrr/glc/pkg/math3d"
)

//go:embed assets/*.obj
var assets embed.FS

// Object identifies one of the built-in scene objects.
type Object int

const (
	Cube Object = iota
	Triangle
	Teapot
)

// Objects returns every built-in object in menu order.
func Objects() []Object {
	return []Object{Cube, Triangle, Teapot}
}

func (o Object) String() string {
	switch o {
	case Cube:
		return "cube"
	case Triangle:
		return "triangle"
	case Teapot:
		return "teapot"
	default:
		return fmt.Sprintf("Object(%d)", int(o))
	}
}

// ParseObject converts a name such as "cube" into an Object.
func ParseObject(name string) (Object, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cube":
		return Cube, nil
	case "triangle", "3d-triangle", "pyramid":
		return Triangle, nil
	case "teapot":
		return Teapot, nil
	}
	return 0, fmt.Errorf("unknown object %q", name)
}

// teapotExtent is the largest dimension of the generated teapot.
const teapotExtent = 1.5

// Builtin returns a fresh copy of a built-in mesh.
func Builtin(o Object) (*Mesh, error) {
	switch o {
	case Cube:
		return loadAsset("cube.obj")
	case Triangle:
		return loadAsset("triangle.obj")
	case Teapot:
		return NewTeapot(16), nil
	}
	return nil, fmt.Errorf("%w: unknown object %d", ErrInvalidMesh, int(o))
}

func loadAsset(name string) (*Mesh, error) {
	data, err := assets.ReadFile("assets/" + name)
	if err != nil {
		return nil, fmt.Errorf("read asset: %w", err)
	}
	mesh, err := ParseOBJ(bytes.NewReader(data), strings.TrimSuffix(name, ".obj"))
	if err != nil {
		return nil, fmt.Errorf("parse asset %s: %w", name, err)
	}
	return mesh, nil
}

// NewTeapot builds a reduced teapot: a lathed body with a lid knob, a
// tapered spout and a half-torus handle. segments controls the tessellation
// around each axis and is clamped to at least 3.
func NewTeapot(segments int) *Mesh {
	segments = max(segments, 3)
	mesh := NewMesh("teapot")

	body := []math3d.Vec2{
		{X: 0, Y: -0.45},
		{X: 0.35, Y: -0.45},
		{X: 0.5, Y: -0.3},
		{X: 0.55, Y: -0.1},
		{X: 0.5, Y: 0.1},
		{X: 0.4, Y: 0.25},
		{X: 0.3, Y: 0.3},
		{X: 0, Y: 0.3},
	}
	addLathe(mesh, body, segments, math3d.Identity())

	knob := []math3d.Vec2{
		{X: 0, Y: 0.29},
		{X: 0.08, Y: 0.31},
		{X: 0.05, Y: 0.4},
		{X: 0.1, Y: 0.45},
		{X: 0, Y: 0.5},
	}
	addLathe(mesh, knob, segments, math3d.Identity())

	spout := []math3d.Vec2{
		{X: 0, Y: 0},
		{X: 0.12, Y: 0},
		{X: 0.06, Y: 0.45},
		{X: 0, Y: 0.45},
	}
	spoutXform := math3d.Translate(math3d.V3(0.42, -0.12, 0)).Mul(math3d.RotateZ(math3d.Radians(-50)))
	addLathe(mesh, spout, max(segments/2, 3), spoutXform)

	addHandle(mesh, math3d.V3(-0.48, 0, 0), 0.22, 0.05, segments, max(segments/2, 3))

	mesh.Normalize(teapotExtent)
	return mesh
}

// addLathe revolves profile (X = radius, Y = height, bottom to top) around
// the Y axis and appends the surface, transformed by xform, to mesh. Profile
// points with zero radius collapse to a single pole vertex.
func addLathe(mesh *Mesh, profile []math3d.Vec2, segments int, xform math3d.Mat4) {
	rings := make([][]int, len(profile))
	for i, p := range profile {
		rings[i] = make([]int, segments)
		if p.X == 0 {
			pole := mesh.AddVertex(xform.MulVec3(math3d.V3(0, p.Y, 0)))
			for j := range rings[i] {
				rings[i][j] = pole
			}
			continue
		}
		for j := range segments {
			theta := 2 * math.Pi * float64(j) / float64(segments)
			v := math3d.V3(p.X*math.Cos(theta), p.Y, -p.X*math.Sin(theta))
			rings[i][j] = mesh.AddVertex(xform.MulVec3(v))
		}
	}

	for i := 0; i+1 < len(rings); i++ {
		for j := range segments {
			next := (j + 1) % segments
			a, b := rings[i][j], rings[i][next]
			c, d := rings[i+1][next], rings[i+1][j]
			addNonDegenerate(mesh, a, b, c)
			addNonDegenerate(mesh, a, c, d)
		}
	}
}

// addHandle appends a half torus in the XY plane bulging towards -X from
// center, with the given sweep and tube radii.
func addHandle(mesh *Mesh, center math3d.Vec3, sweep, tube float64, steps, sides int) {
	grid := make([][]int, steps+1)
	for i := range grid {
		u := -math.Pi/2 + math.Pi*float64(i)/float64(steps)
		out := math3d.V3(-math.Cos(u), math.Sin(u), 0)
		spine := center.Add(out.Scale(sweep))
		grid[i] = make([]int, sides)
		for j := range sides {
			v := 2 * math.Pi * float64(j) / float64(sides)
			dir := out.Scale(math.Cos(v)).Add(math3d.V3(0, 0, math.Sin(v)))
			grid[i][j] = mesh.AddVertex(spine.Add(dir.Scale(tube)))
		}
	}

	for i := range steps {
		for j := range sides {
			next := (j + 1) % sides
			a, b := grid[i][j], grid[i][next]
			c, d := grid[i+1][next], grid[i+1][j]
			addNonDegenerate(mesh, a, b, c)
			addNonDegenerate(mesh, a, c, d)
		}
	}
}

func addNonDegenerate(mesh *Mesh, a, b, c int) {
	if a == b || b == c || a == c {
		return
	}
	mesh.AddFace(a, b, c)
}
