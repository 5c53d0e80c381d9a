package tree

import (
	"math/rand"
)

// Offsets are the values Random picks from for each junction.
//
// Only whole multiples of the phase keep every junction in sync at the end of a
// cycle, so animations loop cleanly.
var Offsets = []float64{-3, -2, -1, 1, 2, 3}

// RandomConfig describes the shape of random trees.
type RandomConfig struct {
	// Depth is how many layers of junctions to generate below the root.
	Depth int

	// MinChildren and MaxChildren bound the number of children of each
	// junction, inclusive.
	MinChildren, MaxChildren int

	// MaxOffset is reserved as the bound for continuous values.
	// Random currently ignores it and uses Offsets instead.
	MaxOffset float64
}

func (c RandomConfig) decrementDepth() RandomConfig {
	if c.Depth > 0 {
		c.Depth--
	}
	return c
}

// A ValueFunc chooses the value for a single junction.
type ValueFunc[V any] func(r *rand.Rand, config RandomConfig) V

// RandomOffset picks uniformly from Offsets.
func RandomOffset(r *rand.Rand, _ RandomConfig) float64 {
	return Offsets[r.Intn(len(Offsets))]
}

// Random generates a tree whose junctions turn at one of Offsets.
func Random(r *rand.Rand, config RandomConfig) *Tree[float64] {
	return RandomOf(r, config, RandomOffset)
}

// RandomOf generates a tree with config.Depth layers below the root. Each
// junction above the bottom layer has between MinChildren and MaxChildren
// children, chosen uniformly.
//
// The config must have 0 <= MinChildren <= MaxChildren.
func RandomOf[V any](r *rand.Rand, config RandomConfig, value ValueFunc[V]) *Tree[V] {
	result := &Tree[V]{
		Value: value(r, config),
	}
	if config.Depth <= 0 {
		return result
	}

	nChildren := config.MinChildren + r.Intn(config.MaxChildren-config.MinChildren+1)
	result.Children = make([]*Tree[V], nChildren)
	for i := range result.Children {
		result.Children[i] = RandomOf(r, config.decrementDepth(), value)
	}

	return result
}
