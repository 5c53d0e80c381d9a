package tree

// A Tree is really a junction in a fractal.
//
// Each child becomes one radial slice of the region its parent covers, and
// Value sets how quickly the junction turns as the phase advances.
// Trees are built once and only read afterward.
type Tree[V any] struct {
	Value    V
	Children []*Tree[V]
}

// Leaf returns a Tree with no children.
func Leaf[V any](value V) *Tree[V] {
	return &Tree[V]{Value: value}
}

// Map returns a copy of the tree with every value passed through f.
func Map[V, W any](t *Tree[V], f func(V) W) *Tree[W] {
	if t == nil {
		return nil
	}

	result := &Tree[W]{
		Value:    f(t.Value),
		Children: make([]*Tree[W], len(t.Children)),
	}
	for i, child := range t.Children {
		result.Children[i] = Map(child, f)
	}
	return result
}

// Depth is the number of junctions on the longest path from t to a leaf,
// not counting the leaf.
func (t *Tree[V]) Depth() int {
	if t == nil {
		return 0
	}

	depth := 0
	for _, child := range t.Children {
		if d := child.Depth() + 1; d > depth {
			depth = d
		}
	}
	return depth
}

// Size counts every node in the tree, including t.
func (t *Tree[V]) Size() int {
	if t == nil {
		return 0
	}

	size := 1
	for _, child := range t.Children {
		size += child.Size()
	}
	return size
}

// Walk visits t and its descendants depth-first, parents before children.
// Returning false from visit skips that node's children.
func (t *Tree[V]) Walk(visit func(node *Tree[V], depth int) bool) {
	t.walk(visit, 0)
}

func (t *Tree[V]) walk(visit func(node *Tree[V], depth int) bool, depth int) {
	if t == nil || !visit(t, depth) {
		return
	}
	for _, child := range t.Children {
		child.walk(visit, depth+1)
	}
}
