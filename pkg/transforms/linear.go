package transforms

import (
	"github.com/gogpu/gg"
)

// Linear rotates by Angle, then moves by Offset, in the rotated frame, then
// scales uniformly by Scale. The order is that of Matrix's composition, so Scale
// applies to points first.
type Linear struct {
	Angle  float64
	Offset gg.Point
	Scale  float64
}

func (l Linear) Matrix() gg.Matrix {
	return gg.Rotate(l.Angle).
		Multiply(gg.Translate(l.Offset.X, l.Offset.Y)).
		Multiply(gg.Scale(l.Scale, l.Scale))
}
