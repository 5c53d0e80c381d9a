package tree

// Layered returns a balanced tree where every junction in layer i has counts[i]
// children. All junctions share value.
func Layered(counts []int, value float64) *Tree[float64] {
	result := Leaf(value)
	if len(counts) == 0 {
		return result
	}

	result.Children = make([]*Tree[float64], counts[0])
	for i := range result.Children {
		result.Children[i] = Layered(counts[1:], value)
	}

	return result
}
