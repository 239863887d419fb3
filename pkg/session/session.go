// Package session holds the interactive state shared by the glc viewers:
// the active projection, object, scene transform and background.
package session

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"

	"github.com/taigrr/glc/pkg/glc"
	"github.com/taigrr/glc/pkg/models"
	"github.com/taigrr/glc/pkg/render"
)

// Session is the state driven by user input. It is not safe for
// concurrent use; front-ends apply events from their input loop.
type Session struct {
	Projection glc.Projection
	Object     models.Object
	State      glc.SceneState
	Background render.Color

	// CustomPath, when set, replaces the built-in object with a mesh file.
	CustomPath string

	lib *models.Library
	rng *rand.Rand
}

// New creates a session showing the perspective cube on the default
// background. seed drives background randomization.
func New(lib *models.Library, seed uint64) *Session {
	return &Session{
		Projection: glc.Perspective,
		Object:     models.Cube,
		Background: render.DefaultBackground,
		lib:        lib,
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Result tells the front-end what to do after an event.
type Result struct {
	Rerender bool
	Quit     bool
}

// Apply updates the session for e.
func (s *Session) Apply(e Event) Result {
	switch e := e.(type) {
	case TranslateEvent:
		s.State.Translate(e.DX, e.DY)
	case RotateEvent:
		switch e.Axis {
		case AxisX:
			s.State.StepRotateX()
		case AxisY:
			s.State.StepRotateY()
		default:
			return Result{}
		}
	case ProjectionEvent:
		s.Projection = e.Projection
	case ObjectEvent:
		s.Object = e.Object
		s.CustomPath = ""
	case MeshFileEvent:
		s.CustomPath = e.Path
	case BackgroundEvent:
		s.Background = render.RandomBackground(s.rng)
	case QuitEvent:
		return Result{Quit: true}
	default:
		return Result{}
	}
	return Result{Rerender: true}
}

// Frame resolves the active mesh and returns the frame to render.
func (s *Session) Frame() (render.Frame, error) {
	var (
		mesh *models.Mesh
		err  error
	)
	if s.CustomPath != "" {
		mesh, err = s.lib.Custom(s.CustomPath)
	} else {
		mesh, err = s.lib.Get(s.Object)
	}
	if err != nil {
		return render.Frame{}, fmt.Errorf("resolve %s: %w", s.ObjectName(), err)
	}

	return render.Frame{
		Projection: s.Projection,
		Mesh:       mesh,
		State:      s.State,
		Background: s.Background,
	}, nil
}

// ObjectName returns the display name of the active mesh.
func (s *Session) ObjectName() string {
	if s.CustomPath != "" {
		return filepath.Base(s.CustomPath)
	}
	return s.Object.String()
}
