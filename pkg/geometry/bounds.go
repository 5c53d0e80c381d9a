package geometry

import (
	"github.com/gogpu/gg"
)

// DefaultBounds is the closed square of side 2 centered on the origin.
//
// Each corner is joined to the corner before it, so the first segment runs
// from (-1, -1) to (1, -1).
func DefaultBounds() []Segment {
	corners := []XY{
		{X: -1, Y: -1},
		{X: -1, Y: 1},
		{X: 1, Y: 1},
		{X: 1, Y: -1},
	}

	result := make([]Segment, len(corners))
	for i, c := range corners {
		prev := corners[(i+len(corners)-1)%len(corners)]
		result[i] = Segment{A: c, B: prev}
	}
	return result
}

// ViewportBounds stretches DefaultBounds to a width x height viewport centered
// on the origin, pulled in by margin on every side.
func ViewportBounds(width, height, margin float64) []Segment {
	m := gg.Scale(width/2-margin, height/2-margin)
	return TransformAll(DefaultBounds(), m)
}
