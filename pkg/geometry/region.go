package geometry

import (
	"fmt"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// A Region is the bounded area a fractal is meant to fill, either a disk or a
// rectangle centered on the origin.
type Region struct {
	Name string
	s    sdf.SDF2
}

func Disk(radius float64) (Region, error) {
	s, err := sdf.Circle2D(radius)
	if err != nil {
		return Region{}, fmt.Errorf("disk of radius %v: %w", radius, err)
	}
	return Region{Name: "disk", s: s}, nil
}

// Rectangle is width across and height tall.
func Rectangle(width, height float64) Region {
	return Region{
		Name: "rectangle",
		s:    sdf.Box2D(v2.Vec{X: width, Y: height}, 0),
	}
}

// Distance is the signed distance from p to the region's edge, negative inside.
func (r Region) Distance(p XY) float64 {
	return r.s.Evaluate(v2.Vec{X: p.X, Y: p.Y})
}

// Contains is true if p is inside the region or within eps of its edge.
func (r Region) Contains(p XY, eps float64) bool {
	return r.Distance(p) <= eps
}

// Outside counts the segment endpoints lying more than eps outside the region.
func (r Region) Outside(segments []Segment, eps float64) int {
	n := 0
	for _, s := range segments {
		if !r.Contains(s.A, eps) {
			n++
		}
		if !r.Contains(s.B, eps) {
			n++
		}
	}
	return n
}
