package glc

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/taigrr/glc/pkg/math3d"
	"github.com/taigrr/glc/pkg/models"
)

func TestRotateWrap(t *testing.T) {
	var s SceneState
	want := []float64{30, 60, 90, 120, 150, 180, 210, 240, 270, 300, 330, 360, 30, 60}
	for i, w := range want {
		s.StepRotateX()
		if s.RotateX != w {
			t.Fatalf("Step %d: RotateX = %v, want %v", i+1, s.RotateX, w)
		}
	}
}

func TestRotateTwelveStepsReturn(t *testing.T) {
	s := SceneState{RotateX: RotateStep, RotateY: 150}
	for range 12 {
		s.StepRotateX()
		s.StepRotateY()
	}
	if s.RotateX != RotateStep {
		t.Errorf("RotateX = %v after 12 steps, want %v", s.RotateX, RotateStep)
	}
	if s.RotateY != 150 {
		t.Errorf("RotateY = %v after 12 steps, want 150", s.RotateY)
	}
}

func TestTranslate(t *testing.T) {
	var s SceneState
	s.Translate(TranslateStep, 0)
	s.Translate(TranslateStep, -TranslateStep)
	if s.Translation.X != 0.4 || s.Translation.Y != -0.2 || s.Translation.Z != 0 {
		t.Errorf("Translation = %v", s.Translation)
	}
}

func TestSceneMatrixAgainstMathGL(t *testing.T) {
	s := SceneState{Translation: math3d.V3(0.4, -0.6, 0), RotateX: 60, RotateY: 210}
	want := mgl64.HomogRotate3DX(mgl64.DegToRad(60)).
		Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(210))).
		Mul4(mgl64.Translate3D(0.4, -0.6, 0))
	if got := mgl64.Mat4(s.Matrix()); !got.ApproxEqualThreshold(want, 1e-12) {
		t.Errorf("Matrix = %v, want %v", got, want)
	}
}

func TestMatrixTranslatesBeforeRotating(t *testing.T) {
	s := SceneState{Translation: math3d.V3(1, 0, 0), RotateY: 90}
	got := s.Matrix().MulVec3(math3d.Vec3{})
	if !vecNear2(got, math3d.V3(0, 0, -1)) {
		t.Errorf("Origin maps to %v, want (0,0,-1)", got)
	}
}

func TestTransformMesh(t *testing.T) {
	mesh := models.NewMesh("tri")
	mesh.AddVertex(math3d.V3(-1, -1, 0))
	mesh.AddVertex(math3d.V3(1, -1, 0))
	mesh.AddVertex(math3d.V3(0, 1, 0))
	mesh.AddFace(0, 1, 2)
	mesh.AddFace(2, 1, 0)

	tris := TransformMesh(nil, mesh, SceneState{}, DefaultZOffset)
	if len(tris) != 2 {
		t.Fatalf("Expected 2 triangles, got %d", len(tris))
	}
	if tris[0].V[2] != math3d.V3(0, 1, -5) {
		t.Errorf("Expected vertex pushed to z=-5, got %v", tris[0].V[2])
	}
	if tris[0].Normal != math3d.V3(0, 0, 1) || tris[1].Normal != math3d.V3(0, 0, -1) {
		t.Errorf("Unexpected normals %v, %v", tris[0].Normal, tris[1].Normal)
	}

	rotated := TransformMesh(tris, mesh, SceneState{RotateY: 180}, DefaultZOffset)
	if &rotated[0] != &tris[0] {
		t.Error("Expected TransformMesh to reuse dst storage")
	}
	if !vecNear2(rotated[0].Normal, math3d.V3(0, 0, -1)) {
		t.Errorf("Expected flipped normal after 180 rotation, got %v", rotated[0].Normal)
	}
	if mesh.Vertices[0] != math3d.V3(-1, -1, 0) {
		t.Error("TransformMesh modified the source mesh")
	}
}

func vecNear2(a, b math3d.Vec3) bool {
	return a.Sub(b).Len() < 1e-9
}
