// Package glc implements the Generalized Linear Camera ray caster: a
// two-plane camera model, per-pixel ray generation, ray/triangle
// intersection and normal-based coloring.
package glc

import (
	"fmt"
	"strings"
)

// Projection selects the front plane paired with the fixed image plane.
type Projection int

const (
	Perspective Projection = iota
	Orthogonal
	Pushbroom
)

// Projections returns every projection in menu order.
func Projections() []Projection {
	return []Projection{Perspective, Orthogonal, Pushbroom}
}

func (p Projection) String() string {
	switch p {
	case Perspective:
		return "perspective"
	case Orthogonal:
		return "orthogonal"
	case Pushbroom:
		return "pushbroom"
	default:
		return fmt.Sprintf("Projection(%d)", int(p))
	}
}

// ParseProjection converts a name such as "perspective" into a Projection.
func ParseProjection(name string) (Projection, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "perspective", "persp":
		return Perspective, nil
	case "orthogonal", "ortho", "orthographic":
		return Orthogonal, nil
	case "pushbroom":
		return Pushbroom, nil
	}
	return 0, fmt.Errorf("unknown projection %q", name)
}
