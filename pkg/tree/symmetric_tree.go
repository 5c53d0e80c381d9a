package tree

// Symmetric returns a perfectly-symmetric tree where every junction has the
// same number of children and turns at the same rate.
func Symmetric(layers int, children int, value float64) *Tree[float64] {
	counts := make([]int, layers)
	for i := range counts {
		counts[i] = children
	}
	return Layered(counts, value)
}
