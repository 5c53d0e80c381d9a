package geometry

import (
	"github.com/gogpu/gg"
	"math"
)

// XY is a point or vector in the plane.
type XY = gg.Point

// A Segment is the straight line between A and B.
type Segment struct {
	A, B XY
}

// Direction is the unit vector pointing from A to B.
// A degenerate segment has no direction and returns the zero vector.
func (s Segment) Direction() XY {
	return s.B.Sub(s.A).Normalize()
}

func (s Segment) Length() float64 {
	return s.B.Sub(s.A).Length()
}

// Transform maps both endpoints through m.
func (s Segment) Transform(m gg.Matrix) Segment {
	return Segment{
		A: m.TransformPoint(s.A),
		B: m.TransformPoint(s.B),
	}
}

// Ray starts at A and points toward B.
func (s Segment) Ray() Ray {
	return Ray{
		Origin:    s.A,
		Direction: s.Direction(),
	}
}

// Degenerate is true if the segment's endpoints coincide or are not finite.
func (s Segment) Degenerate() bool {
	return s.A == s.B || !finite(s.A) || !finite(s.B)
}

// Contains reports whether p lies on the segment, within tolerance eps.
func (s Segment) Contains(p XY, eps float64) bool {
	ab := s.B.Sub(s.A)
	l := ab.Length()
	if l == 0 {
		return p.Distance(s.A) <= eps
	}

	// Distance from the infinite line, then the projection must land between the endpoints.
	ap := p.Sub(s.A)
	if math.Abs(ab.Cross(ap))/l > eps {
		return false
	}
	proj := ab.Dot(ap) / l
	return proj >= -eps && proj <= l+eps
}

// TransformAll maps every segment through m into a new slice.
func TransformAll(segments []Segment, m gg.Matrix) []Segment {
	result := make([]Segment, len(segments))
	for i, s := range segments {
		result[i] = s.Transform(m)
	}
	return result
}

func finite(p XY) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
