package glc

import (
	"fmt"
	"math"

	"github.com/taigrr/glc/pkg/math3d"
)

// PlaneTriple holds the three points that span a camera plane.
type PlaneTriple [3]math3d.Vec3

// ImagePlane is the fixed image-plane triple shared by every projection.
var ImagePlane = PlaneTriple{
	{X: -1, Y: -1, Z: 0},
	{X: 1, Y: -1, Z: 0},
	{X: 1, Y: 1, Z: 0},
}

// FrontPlane returns the front-plane triple for p. Unknown values fall back
// to the perspective plane.
//
// The pushbroom triple repeats its last point; only the image plane enters
// the parametrization denominators, so rays stay finite.
func FrontPlane(p Projection) PlaneTriple {
	switch p {
	case Orthogonal:
		return PlaneTriple{
			{X: -1, Y: -1, Z: 1},
			{X: 1, Y: -1, Z: 1},
			{X: 1, Y: 1, Z: 1},
		}
	case Pushbroom:
		return PlaneTriple{
			{X: -1, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
		}
	default:
		return PlaneTriple{
			{X: -0.5, Y: -0.5, Z: 1},
			{X: 0.5, Y: -0.5, Z: 1},
			{X: 0.5, Y: 0.5, Z: 1},
		}
	}
}

// Model pairs the image plane with a projection's front plane.
type Model struct {
	Projection Projection
	Image      PlaneTriple
	Front      PlaneTriple
}

// NewModel returns the camera model for p.
func NewModel(p Projection) Model {
	if p < Perspective || p > Pushbroom {
		p = Perspective
	}
	return Model{
		Projection: p,
		Image:      ImagePlane,
		Front:      FrontPlane(p),
	}
}

// degenerateEpsilon bounds how close to zero a parametrization denominator
// may get before the image plane is rejected.
const degenerateEpsilon = 1e-9

// Validate reports ErrDegeneratePlane when the model cannot produce finite
// rays.
func (m Model) Validate() error {
	for i, v := range append(m.Image[:], m.Front[:]...) {
		if !v.IsFinite() {
			return fmt.Errorf("%w: %s vertex %d is not finite", ErrDegeneratePlane, m.Projection, i)
		}
	}
	k := newKnots(m.Image)
	if math.Abs(k.demoAlpha) < degenerateEpsilon || math.Abs(k.demoBeta) < degenerateEpsilon {
		return fmt.Errorf("%w: %s image plane is collinear", ErrDegeneratePlane, m.Projection)
	}
	return nil
}
