package glc

import "github.com/taigrr/glc/pkg/math3d"

// Ray is a parametrized line. Direction is not normalized.
type Ray struct {
	Origin    math3d.Vec3
	Direction math3d.Vec3
}

// At returns the point Origin + t*Direction.
func (r Ray) At(t float64) math3d.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// knots holds the image-plane parametrization: the (s,t) knots taken from
// the triple's x,y and the two denominators derived from them.
type knots struct {
	s1, t1, s2, t2, s3, t3 float64
	demoAlpha, demoBeta    float64
}

func newKnots(image PlaneTriple) knots {
	k := knots{
		s1: image[0].X, t1: image[0].Y,
		s2: image[1].X, t2: image[1].Y,
		s3: image[2].X, t3: image[2].Y,
	}
	k.demoAlpha = k.s1*k.t2 + k.s2*k.t3 + k.s3*k.t1 - k.s3*k.t2 - k.s1*k.t3 - k.s2*k.t1
	k.demoBeta = k.s2*k.t1 + k.s1*k.t3 + k.s3*k.t2 - k.s3*k.t1 - k.s2*k.t3 - k.s1*k.t2
	return k
}

// ray interpolates the front plane at the pixel's weights and aims the ray
// from there back through the pixel.
func (k knots) ray(front PlaneTriple, pixel math3d.Vec2) Ray {
	si, ti := pixel.X, pixel.Y
	alpha := (si*k.t2 + k.s2*k.t3 + k.s3*ti - si*k.t3 - k.s3*k.t2 - k.s2*ti) / k.demoAlpha
	beta := (si*k.t1 + k.s3*ti + k.s1*k.t3 - si*k.t3 - k.s1*ti - k.s3*k.t1) / k.demoBeta
	gamma := 1 - alpha - beta

	uvi := front[0].XY().Scale(alpha).
		Add(front[1].XY().Scale(beta)).
		Add(front[2].XY().Scale(gamma))

	return Ray{
		Origin:    uvi.Vec3(1),
		Direction: pixel.Sub(uvi).Vec3(-1),
	}
}

// GenerateRay derives the ray for a pixel given in world-scale planar
// coordinates. A degenerate image triple yields non-finite components;
// use NewRayGenerator to reject such models up front.
func GenerateRay(image, front PlaneTriple, pixel math3d.Vec2) Ray {
	return newKnots(image).ray(front, pixel)
}

// RayGenerator produces rays for a validated model, with the image-plane
// denominators computed once.
type RayGenerator struct {
	model Model
	knots knots
}

// NewRayGenerator validates m and prepares it for ray generation.
func NewRayGenerator(m Model) (*RayGenerator, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &RayGenerator{model: m, knots: newKnots(m.Image)}, nil
}

// Model returns the camera model the generator was built from.
func (g *RayGenerator) Model() Model {
	return g.model
}

// Ray returns the ray through pixel. It matches GenerateRay bit for bit.
func (g *RayGenerator) Ray(pixel math3d.Vec2) Ray {
	return g.knots.ray(g.model.Front, pixel)
}
