// Package models provides mesh loading and representation for glc.
package models

import (
	"errors"
	"fmt"
	"math"

	"github.com/taigrr/glc/pkg/math3d"
)

// ErrInvalidMesh is returned when mesh data cannot be used for rendering.
var ErrInvalidMesh = errors.New("invalid mesh")

// Mesh holds raw vertex positions and the triangles that index them.
// Normals are not stored: the renderer derives one flat normal per
// triangle after transforming the positions.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    []Face

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Face represents a triangle as three indices into Mesh.Vertices,
// counter-clockwise when viewed along its normal.
type Face struct {
	V [3]int
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]math3d.Vec3, 0),
		Faces:    make([]Face, 0),
	}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(v math3d.Vec3) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddFace appends a triangle.
func (m *Mesh) AddFace(a, b, c int) {
	m.Faces = append(m.Faces, Face{V: [3]int{a, b, c}})
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Indices returns the flat triangle index list (stride 3).
func (m *Mesh) Indices() []int {
	out := make([]int, 0, len(m.Faces)*3)
	for _, f := range m.Faces {
		out = append(out, f.V[0], f.V[1], f.V[2])
	}
	return out
}

// Validate checks that the mesh has triangles and that every face index
// refers to an existing, finite vertex.
func (m *Mesh) Validate() error {
	if m == nil {
		return fmt.Errorf("%w: nil mesh", ErrInvalidMesh)
	}
	if len(m.Faces) == 0 {
		return fmt.Errorf("%w: %q has no faces", ErrInvalidMesh, m.Name)
	}
	for i, v := range m.Vertices {
		if !v.IsFinite() {
			return fmt.Errorf("%w: %q vertex %d is not finite", ErrInvalidMesh, m.Name, i)
		}
	}
	for i, f := range m.Faces {
		for _, idx := range f.V {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("%w: %q face %d index %d out of range [0,%d)",
					ErrInvalidMesh, m.Name, i, idx, len(m.Vertices))
			}
		}
	}
	return nil
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i] = mat.MulVec3(m.Vertices[i])
	}
	m.CalculateBounds()
}

// Normalize centers the mesh on the origin and scales it uniformly so its
// largest dimension equals extent. Degenerate (flat in every axis) meshes
// are only centered.
func (m *Mesh) Normalize(extent float64) {
	m.CalculateBounds()
	center := m.Center()
	size := m.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))

	transform := math3d.Translate(center.Scale(-1))
	if maxDim > 0 {
		scale := extent / maxDim
		transform = math3d.Scale(math3d.V3(scale, scale, scale)).Mul(transform)
	}
	m.Transform(transform)
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]math3d.Vec3, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}
