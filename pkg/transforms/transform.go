package transforms

import (
	"github.com/gogpu/gg"
	"math"
)

// SafetyFactor shrinks each child slightly so its edges never touch the
// boundary lines of its parent. Touching edges make ray casts unstable.
const SafetyFactor = 0.99

// Contraction is the scale at which n copies of a region, arranged radially
// about the parent's center, exactly tile an n-fold symmetric parent region.
//
// Only 2 through 5 children are defined. Any other count contracts to a point.
func Contraction(n int) float64 {
	switch n {
	case 2:
		return 1.0 / 2.0
	case 3:
		return 1.0 / (1.0 + 2.0/math.Sqrt(3.0))
	case 4:
		return 1.0 / (1.0 + math.Sqrt2)
	case 5:
		return 1.0 / (1.0 + math.Sqrt(2.0*(1.0+1.0/math.Sqrt(5.0))))
	default:
		return 0.0
	}
}

// Offset is the distance from the parent's center to each child's center,
// in the parent's units.
func Offset(n int) float64 {
	return 1.0 - Contraction(n)
}

// Angle is the direction of child i of n, measured in radians
// counter-clockwise from the parent's x-axis.
//
// value sets how many times the junction turns per cycle of phase.
func Angle(i, n int, phase, value float64) float64 {
	return float64(i)*(2.0*math.Pi/float64(n)) + phase*value
}

// Turn rotates the parent's frame so its x-axis points along a child's angle.
func Turn(parent gg.Matrix, angle float64) gg.Matrix {
	return parent.Multiply(gg.Rotate(angle))
}

// Child maps the unit region into child's place within turned, the parent's
// frame already turned toward the child.
//
// The child sits half a slice further around, so that the lines along each
// child's angle separate neighbouring children.
func Child(turned gg.Matrix, n int) gg.Matrix {
	l := Linear{
		Angle:  math.Pi / float64(n),
		Offset: gg.Pt(Offset(n), 0.0),
		Scale:  Contraction(n) * SafetyFactor,
	}
	return turned.Multiply(l.Matrix())
}
