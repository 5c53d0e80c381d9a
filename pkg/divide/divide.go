// Package divide splits a region into rotated, shrunken copies of itself,
// guided by a tree, and returns the lines that separate the copies.
package divide

import (
	"github.com/gogpu/gg"
	"github.com/willbeason/radial-fractal/pkg/geometry"
	"github.com/willbeason/radial-fractal/pkg/transforms"
	"github.com/willbeason/radial-fractal/pkg/tree"
)

// Visit describes the work done at one junction.
type Visit struct {
	Depth int
	Node  *tree.Tree[float64]

	// Transform maps the unit region into the junction's region.
	Transform gg.Matrix

	// Bounds are the lines the junction's division lines were clipped against.
	Bounds []geometry.Segment

	// Segments are the division lines the junction drew, in child order.
	// A child whose line missed every bound has no entry.
	Segments []geometry.Segment
}

// Engine computes division lines. The zero Engine is ready to use.
type Engine struct {
	// Visit, if set, is called once per junction before its children are divided.
	// It must not modify the slices it is passed.
	Visit func(Visit)
}

// Divide returns the division lines of t and all of its descendants.
//
// m places the unit region, phase turns each junction by phase times its value,
// and bounds are the lines which enclose the region. Each division line runs from
// the center of its junction's region and stops at the first bound it reaches;
// lines which reach no bound are dropped.
//
// Lines are returned parents first, then each child's lines in child order.
func Divide(t *tree.Tree[float64], m gg.Matrix, phase float64, bounds []geometry.Segment) []geometry.Segment {
	return Engine{}.Divide(t, m, phase, bounds)
}

func (e Engine) Divide(t *tree.Tree[float64], m gg.Matrix, phase float64, bounds []geometry.Segment) []geometry.Segment {
	return e.divide(t, m, phase, bounds, 0)
}

func (e Engine) divide(t *tree.Tree[float64], m gg.Matrix, phase float64, bounds []geometry.Segment, depth int) []geometry.Segment {
	if t == nil {
		return nil
	}

	n := len(t.Children)
	offset := transforms.Offset(n)

	var segments []geometry.Segment
	childTransforms := make([]gg.Matrix, n)
	for i := range t.Children {
		turned := transforms.Turn(m, transforms.Angle(i, n, phase, t.Value))

		line := geometry.Segment{B: gg.Pt(offset, 0.0)}.Transform(turned)
		if hit, ok := line.Ray().IntersectFirst(bounds); ok {
			segments = append(segments, geometry.Segment{A: line.A, B: hit.Point})
		}

		childTransforms[i] = transforms.Child(turned, n)
	}
	// Cap the slice so appending children's lines never writes into memory a
	// Visit may still be holding.
	segments = segments[:len(segments):len(segments)]

	if e.Visit != nil {
		e.Visit(Visit{
			Depth:     depth,
			Node:      t,
			Transform: m,
			Bounds:    bounds,
			Segments:  segments,
		})
	}

	childBounds := make([]geometry.Segment, 0, len(segments)+len(bounds))
	childBounds = append(childBounds, segments...)
	childBounds = append(childBounds, bounds...)

	result := segments
	for i, child := range t.Children {
		result = append(result, e.divide(child, childTransforms[i], phase, childBounds, depth+1)...)
	}

	return result
}
