package glc

import (
	"github.com/taigrr/glc/pkg/math3d"
	"github.com/taigrr/glc/pkg/models"
)

const (
	// TranslateStep is the distance moved by one translate input.
	TranslateStep = 0.2

	// RotateStep is the angle in degrees added by one rotate input.
	RotateStep = 30.0

	// DefaultZOffset pushes the scene away from the camera after rotation.
	DefaultZOffset = -5.0
)

// SceneState is the user-driven placement of the active mesh. Angles are in
// degrees.
type SceneState struct {
	Translation math3d.Vec3
	RotateX     float64
	RotateY     float64
}

// Translate moves the scene in the XY plane.
func (s *SceneState) Translate(dx, dy float64) {
	s.Translation.X += dx
	s.Translation.Y += dy
}

// StepRotateX adds one RotateStep around X.
func (s *SceneState) StepRotateX() {
	s.RotateX = stepAngle(s.RotateX)
}

// StepRotateY adds one RotateStep around Y.
func (s *SceneState) StepRotateY() {
	s.RotateY = stepAngle(s.RotateY)
}

// stepAngle advances a by RotateStep; once past 360 it restarts at
// RotateStep rather than 0.
func stepAngle(a float64) float64 {
	a += RotateStep
	if a > 360 {
		a = RotateStep
	}
	return a
}

// Matrix returns RotateX * RotateY * Translate: the mesh is translated, then
// rotated about Y, then about X.
func (s SceneState) Matrix() math3d.Mat4 {
	return math3d.RotateX(math3d.Radians(s.RotateX)).
		Mul(math3d.RotateY(math3d.Radians(s.RotateY))).
		Mul(math3d.Translate(s.Translation))
}

// TransformMesh places every face of mesh according to state, shifts it by
// zOffset along Z and appends the flat-shaded triangles to dst[:0]. Passing
// the previous frame's slice reuses its storage.
func TransformMesh(dst []Triangle, mesh *models.Mesh, state SceneState, zOffset float64) []Triangle {
	dst = dst[:0]
	xform := state.Matrix()
	place := func(v math3d.Vec3) math3d.Vec3 {
		p := xform.MulVec3(v)
		p.Z += zOffset
		return p
	}

	for _, f := range mesh.Faces {
		dst = append(dst, NewTriangle(
			place(mesh.Vertices[f.V[0]]),
			place(mesh.Vertices[f.V[1]]),
			place(mesh.Vertices[f.V[2]]),
		))
	}
	return dst
}
