package geometry

import (
	"math"
)

// A Ray starts at Origin and continues forever along Direction.
//
// Direction should be unit length so that intersection distances are
// Euclidean distances along the ray.
type Ray struct {
	Origin    XY
	Direction XY
}

// RayIntersection is where a Ray crosses a Segment.
type RayIntersection struct {
	Point XY
	// Distance is the ray parameter at Point, always >= 0.
	Distance float64
}

// NewRay normalizes direction.
func NewRay(origin, direction XY) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction.Normalize(),
	}
}

// Valid is true if the ray's direction is unit length.
func (r Ray) Valid() bool {
	return math.Abs(r.Direction.LengthSquared()-1.0) <= 2e-4
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) XY {
	return r.Origin.Add(r.Direction.Mul(t))
}

// det is the determinant of the 2x2 matrix with columns a and b.
func det(a, b XY) float64 {
	return a.Cross(b)
}

// Intersect solves origin + t*direction = a + u*(b-a) for t and u.
// There is an intersection only if u is in [0, 1] and t >= 0.
// Parallel lines, degenerate segments and rays without a direction never intersect.
func (r Ray) Intersect(s Segment) (RayIntersection, bool) {
	if s.Degenerate() || !finite(r.Origin) || !finite(r.Direction) || r.Direction == (XY{}) {
		return RayIntersection{}, false
	}

	ab := s.A.Sub(s.B)
	denominator := det(r.Direction.Mul(-1), ab)
	if denominator == 0.0 {
		return RayIntersection{}, false
	}

	t := det(r.Origin.Sub(s.A), ab) / denominator
	u := det(r.Direction, r.Origin.Sub(s.A)) / denominator

	// NaN fails both comparisons.
	if !(u >= 0.0 && u <= 1.0 && t >= 0.0) {
		return RayIntersection{}, false
	}

	return RayIntersection{
		Point:    r.At(t),
		Distance: t,
	}, true
}

// IntersectFirst returns the closest intersection with any of segments.
//
// Ties keep the earliest segment. A hit whose distance can't be compared loses
// to any other hit.
func (r Ray) IntersectFirst(segments []Segment) (RayIntersection, bool) {
	var best RayIntersection
	found := false

	for _, s := range segments {
		hit, ok := r.Intersect(s)
		if !ok {
			continue
		}
		if !found || closer(hit, best) {
			best = hit
			found = true
		}
	}

	return best, found
}

// closer orders intersections by distance, treating an undefined comparison as "greater".
func closer(a, b RayIntersection) bool {
	if math.IsNaN(a.Distance) {
		return false
	}
	if math.IsNaN(b.Distance) {
		return true
	}
	return a.Distance < b.Distance
}
