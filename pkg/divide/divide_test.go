package divide

import (
	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willbeason/radial-fractal/pkg/geometry"
	"github.com/willbeason/radial-fractal/pkg/tree"
	"math"
	"math/rand"
	"testing"
)

const eps = 1e-9

func assertSegment(t *testing.T, want, got geometry.Segment) {
	t.Helper()
	assert.InDelta(t, want.A.X, got.A.X, eps, "A.X of %v", got)
	assert.InDelta(t, want.A.Y, got.A.Y, eps, "A.Y of %v", got)
	assert.InDelta(t, want.B.X, got.B.X, eps, "B.X of %v", got)
	assert.InDelta(t, want.B.Y, got.B.Y, eps, "B.Y of %v", got)
}

func seg(ax, ay, bx, by float64) geometry.Segment {
	return geometry.Segment{A: gg.Pt(ax, ay), B: gg.Pt(bx, by)}
}

func randomTree(seed int64) *tree.Tree[float64] {
	return tree.Random(rand.New(rand.NewSource(seed)), tree.RandomConfig{
		Depth:       5,
		MinChildren: 2,
		MaxChildren: 5,
	})
}

func TestDivide_Binary(t *testing.T) {
	fractal := tree.Layered([]int{2, 2}, 0.0)

	got := Divide(fractal, gg.Identity(), 0.0, geometry.DefaultBounds())

	want := []geometry.Segment{
		// The root halves the square horizontally.
		seg(0, 0, 1, 0),
		seg(0, 0, -1, 0),
		// The top half is split vertically, stopping at the root's line.
		seg(0, 0.5, 0, 1),
		seg(0, 0.5, 0, 0),
		// As is the bottom half.
		seg(0, -0.5, 0, -1),
		seg(0, -0.5, 0, 0),
	}
	require.Len(t, got, len(want))
	for i := range want {
		assertSegment(t, want[i], got[i])
	}
}

func TestDivide_Phase(t *testing.T) {
	fractal := tree.Symmetric(1, 2, 1.0)

	got := Divide(fractal, gg.Identity(), math.Pi/2, geometry.DefaultBounds())

	require.Len(t, got, 2)
	assertSegment(t, seg(0, 0, 0, 1), got[0])
	assertSegment(t, seg(0, 0, 0, -1), got[1])

	// Negative values turn the other way.
	fractal.Value = -1.0
	got = Divide(fractal, gg.Identity(), math.Pi/2, geometry.DefaultBounds())
	require.Len(t, got, 2)
	assertSegment(t, seg(0, 0, 0, -1), got[0])
}

func TestDivide_Scaled(t *testing.T) {
	fractal := tree.Symmetric(1, 4, 0.0)

	got := Divide(fractal, gg.Scale(100, 100), 0.0, geometry.ViewportBounds(400, 200, 0))

	require.Len(t, got, 4)
	assertSegment(t, seg(0, 0, 200, 0), got[0])
	assertSegment(t, seg(0, 0, 0, 100), got[1])
	assertSegment(t, seg(0, 0, -200, 0), got[2])
	assertSegment(t, seg(0, 0, 0, -100), got[3])
}

func TestDivide_NoBounds(t *testing.T) {
	got := Divide(randomTree(3), gg.Identity(), 1.0, nil)

	assert.Empty(t, got)
}

func TestDivide_Leaf(t *testing.T) {
	got := Divide(tree.Leaf(2.0), gg.Identity(), 1.0, geometry.DefaultBounds())
	assert.Empty(t, got)

	assert.Empty(t, Divide(nil, gg.Identity(), 1.0, geometry.DefaultBounds()))
}

func TestDivide_Deterministic(t *testing.T) {
	m := gg.Scale(500, 500)
	bounds := geometry.ViewportBounds(1920, 1080, 10)

	for seed := int64(0); seed < 5; seed++ {
		fractal := randomTree(seed)
		phase := 0.37 * float64(seed)

		a := Divide(fractal, m, phase, bounds)
		b := Divide(fractal, m, phase, bounds)
		assert.Equal(t, a, b)
		assert.NotEmpty(t, a)
	}
}

func TestDivide_DoesNotModifyBounds(t *testing.T) {
	bounds := geometry.DefaultBounds()
	backing := make([]geometry.Segment, len(bounds), len(bounds)+100)
	copy(backing, bounds)

	Divide(randomTree(7), gg.Identity(), 0.5, backing)

	assert.Equal(t, bounds, backing)
	assert.Equal(t, make([]geometry.Segment, 100), backing[len(bounds):cap(backing)])
}

func TestEngine_Clipped(t *testing.T) {
	visits := 0
	e := Engine{Visit: func(v Visit) {
		visits++
		for _, s := range v.Segments {
			onBound := false
			for _, b := range v.Bounds {
				if b.Contains(s.B, 1e-6) {
					onBound = true
					break
				}
			}
			assert.True(t, onBound, "segment %v at depth %d ends off every bound", s, v.Depth)
		}
	}}

	for seed := int64(0); seed < 5; seed++ {
		fractal := randomTree(seed)
		visits = 0
		e.Divide(fractal, gg.Scale(500, 500), 1.3, geometry.ViewportBounds(1920, 1080, 10))
		assert.Equal(t, fractal.Size(), visits)
	}
}

func TestEngine_BoundsGrow(t *testing.T) {
	fractal := randomTree(11)

	received := make(map[*tree.Tree[float64]][]geometry.Segment)
	emitted := make(map[*tree.Tree[float64]][]geometry.Segment)
	var total []geometry.Segment
	e := Engine{Visit: func(v Visit) {
		received[v.Node] = v.Bounds
		emitted[v.Node] = v.Segments
		total = append(total, v.Segments...)
	}}

	got := e.Divide(fractal, gg.Scale(500, 500), 2.0, geometry.ViewportBounds(1920, 1080, 10))
	assert.Len(t, got, len(total))

	fractal.Walk(func(node *tree.Tree[float64], _ int) bool {
		for _, child := range node.Children {
			childBounds := received[child]
			parentBounds := received[node]

			assert.Subset(t, childBounds, parentBounds)
			assert.Len(t, childBounds, len(parentBounds)+len(emitted[node]))
			if n := len(emitted[node]); n > 0 {
				assert.Equal(t, emitted[node], childBounds[:n])
			}
		}
		return true
	})
}

func TestEngine_Order(t *testing.T) {
	fractal := randomTree(5)

	var want []geometry.Segment
	e := Engine{Visit: func(v Visit) {
		want = append(want, v.Segments...)
	}}
	got := e.Divide(fractal, gg.Scale(500, 500), 0.8, geometry.ViewportBounds(1920, 1080, 10))

	// Visits happen depth-first, parents before children, matching output order.
	assert.Equal(t, want, got)
}

func TestEngine_UnsupportedChildren(t *testing.T) {
	fractal := tree.Layered([]int{6, 2}, 1.0)

	var children []Visit
	e := Engine{Visit: func(v Visit) {
		if v.Depth == 1 {
			children = append(children, v)
		}
	}}
	got := e.Divide(fractal, gg.Scale(10, 10), 0.0, geometry.ViewportBounds(40, 40, 0))

	// The root still divides, but its children collapse to a point and draw nothing.
	assert.Len(t, got, 6)
	require.Len(t, children, 6)
	for _, v := range children {
		assert.InDelta(t, 0.0, v.Transform.ScaleFactor(), eps)
		assert.Empty(t, v.Segments)
	}
	for _, s := range got {
		assert.False(t, math.IsNaN(s.B.X) || math.IsNaN(s.B.Y))
	}
}
