package session

import (
	"github.com/taigrr/glc/pkg/glc"
	"github.com/taigrr/glc/pkg/models"
)

// Event is a discrete user input.
type Event interface {
	event()
}

// Axis names a rotation axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// TranslateEvent moves the scene in the XY plane.
type TranslateEvent struct {
	DX, DY float64
}

// RotateEvent adds one rotation step around Axis.
type RotateEvent struct {
	Axis Axis
}

// ProjectionEvent switches the camera projection.
type ProjectionEvent struct {
	Projection glc.Projection
}

// ObjectEvent switches to a built-in object.
type ObjectEvent struct {
	Object models.Object
}

// MeshFileEvent switches to a mesh loaded from Path.
type MeshFileEvent struct {
	Path string
}

// BackgroundEvent picks a new random background.
type BackgroundEvent struct{}

// QuitEvent asks the front-end to exit.
type QuitEvent struct{}

func (TranslateEvent) event()  {}
func (RotateEvent) event()     {}
func (ProjectionEvent) event() {}
func (ObjectEvent) event()     {}
func (MeshFileEvent) event()   {}
func (BackgroundEvent) event() {}
func (QuitEvent) event()       {}

// KeyEvent maps a key name, as reported by the terminal, to its event.
//
//	d/a      move +X/-X
//	w/s      move +Y/-Y
//	r        rotate around Y
//	t        rotate around X
//	1/2/3    perspective, orthogonal, pushbroom
//	4/5/6    cube, triangle, teapot
//	b        random background
//	esc      quit
func KeyEvent(key string) (Event, bool) {
	switch key {
	case "d":
		return TranslateEvent{DX: glc.TranslateStep}, true
	case "a":
		return TranslateEvent{DX: -glc.TranslateStep}, true
	case "w":
		return TranslateEvent{DY: glc.TranslateStep}, true
	case "s":
		return TranslateEvent{DY: -glc.TranslateStep}, true
	case "r":
		return RotateEvent{Axis: AxisY}, true
	case "t":
		return RotateEvent{Axis: AxisX}, true
	case "1":
		return ProjectionEvent{Projection: glc.Perspective}, true
	case "2":
		return ProjectionEvent{Projection: glc.Orthogonal}, true
	case "3":
		return ProjectionEvent{Projection: glc.Pushbroom}, true
	case "4":
		return ObjectEvent{Object: models.Cube}, true
	case "5":
		return ObjectEvent{Object: models.Triangle}, true
	case "6":
		return ObjectEvent{Object: models.Teapot}, true
	case "b":
		return BackgroundEvent{}, true
	case "esc", "escape", "ctrl+c":
		return QuitEvent{}, true
	}
	return nil, false
}
