package glc

import (
	"math"

	"github.com/taigrr/glc/pkg/math3d"
)

const (
	// ParallelEpsilon is the smallest |normal·direction| accepted as a hit.
	ParallelEpsilon = 1e-3

	// NoHitDepth is the depth reported for a ray that misses a triangle.
	NoHitDepth = -99999.0
)

// Triangle is a counter-clockwise triangle with one flat normal.
type Triangle struct {
	V      [3]math3d.Vec3
	Normal math3d.Vec3
}

// NewTriangle builds a triangle and its normal from three points.
func NewTriangle(a, b, c math3d.Vec3) Triangle {
	return Triangle{
		V:      [3]math3d.Vec3{a, b, c},
		Normal: b.Sub(a).Cross(c.Sub(a)).Normalize(),
	}
}

// Depth returns the z of the point where r hits the triangle, or NoHitDepth
// when the ray is near-parallel, the plane lies behind the origin, or the
// plane hit falls outside an edge. Points on an edge count as inside.
func (tri Triangle) Depth(r Ray) float64 {
	n := tri.Normal
	denom := n.Dot(r.Direction)
	if math.Abs(denom) < ParallelEpsilon {
		return NoHitDepth
	}

	t := tri.V[0].Sub(r.Origin).Dot(n) / denom
	if !(t >= 0) {
		return NoHitDepth
	}
	p := r.At(t)

	for i := range 3 {
		a, b := tri.V[i], tri.V[(i+1)%3]
		if !(b.Sub(a).Cross(p.Sub(a)).Dot(n) >= 0) {
			return NoHitDepth
		}
	}
	return p.Z
}

// NearestHit returns the index and depth of the triangle closest to the
// camera along r. The camera looks down -Z, so the largest depth wins; the
// first of equal depths is kept. index is -1 when nothing was hit.
func NearestHit(r Ray, tris []Triangle) (index int, depth float64) {
	index, depth = -1, NoHitDepth
	for i := range tris {
		if d := tris[i].Depth(r); d > depth {
			index, depth = i, d
		}
	}
	return index, depth
}

// CastRay returns the normal of the nearest triangle hit by r, or the zero
// vector when r hits nothing.
func CastRay(r Ray, tris []Triangle) math3d.Vec3 {
	i, _ := NearestHit(r, tris)
	if i < 0 {
		return math3d.Vec3{}
	}
	return tris[i].Normal
}
