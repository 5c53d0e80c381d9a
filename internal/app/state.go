// Package app holds the trees being drawn and turns them into frames.
package app

import (
	"context"
	"fmt"
	"github.com/gogpu/gg"
	"github.com/willbeason/radial-fractal/internal/config"
	"github.com/willbeason/radial-fractal/internal/metrics"
	"github.com/willbeason/radial-fractal/pkg/divide"
	"github.com/willbeason/radial-fractal/pkg/geometry"
	"github.com/willbeason/radial-fractal/pkg/render"
	"github.com/willbeason/radial-fractal/pkg/tree"
	"log/slog"
	"math"
	"math/rand"
	"sync"
	"time"
)

// State is the pair of trees currently being drawn.
//
// State is safe for concurrent use. Regenerate replaces the trees; it never
// modifies trees already handed out.
type State struct {
	config  config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics

	mu  sync.RWMutex
	rng *rand.Rand
	a   *tree.Tree[float64]
	b   *tree.Tree[float64]
}

// New generates the first pair of trees. metrics may be nil.
func New(cfg config.Config, logger *slog.Logger, m *metrics.Metrics) *State {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &State{
		config:  cfg,
		logger:  logger,
		metrics: m,
		rng:     rand.New(rand.NewSource(seed)),
	}
	s.a, s.b = s.generate()
	logger.Info("generated trees", "seed", seed, "size_a", s.a.Size(), "size_b", s.b.Size())

	return s
}

func (s *State) Config() config.Config {
	return s.config
}

func (s *State) generate() (*tree.Tree[float64], *tree.Tree[float64]) {
	cfg := s.config.Tree.Random()
	return tree.Random(s.rng, cfg), tree.Random(s.rng, cfg)
}

// Regenerate replaces both trees with new random ones.
func (s *State) Regenerate() {
	s.mu.Lock()
	s.a, s.b = s.generate()
	sizeA, sizeB := s.a.Size(), s.b.Size()
	s.mu.Unlock()

	s.metrics.ObserveRegenerate()
	s.logger.Info("regenerated trees", "size_a", sizeA, "size_b", sizeB)
}

// Trees returns the current pair of trees.
func (s *State) Trees() (a, b *tree.Tree[float64]) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.a, s.b
}

// Phase is how far through its cycle the animation is at frame, in radians.
func (s *State) Phase(frame int) float64 {
	return float64(frame) / float64(s.config.Frame.FramesPerCycle) * 2 * math.Pi
}

// Root places the unit region in the middle of the frame.
func (s *State) Root() gg.Matrix {
	r := s.config.Frame.Radius()
	return gg.Scale(r, r)
}

// Bounds are the outermost lines, just inside the edges of the frame.
func (s *State) Bounds() []geometry.Segment {
	f := s.config.Frame
	return geometry.ViewportBounds(float64(f.Width), float64(f.Height), f.BoundsMargin)
}

// Divide computes the division lines of t at frame.
func (s *State) Divide(t *tree.Tree[float64], frame int) []geometry.Segment {
	junctions := 0
	e := divide.Engine{Visit: func(divide.Visit) {
		junctions++
	}}

	start := time.Now()
	segments := e.Divide(t, s.Root(), s.Phase(frame), s.Bounds())
	elapsed := time.Since(start)

	s.metrics.ObserveFrame(len(segments), junctions, elapsed)
	if s.logger.Enabled(context.Background(), slog.LevelDebug) {
		s.logger.Debug("divided",
			"frame", frame,
			"segments", len(segments),
			"junctions", junctions,
			"region", s.config.Frame.Region,
			"outside", s.outside(segments),
			"elapsed", elapsed,
		)
	}

	return segments
}

// Region is the shape the fractal is meant to fill: the root's disk, or the
// rectangle inside the bounds.
func (s *State) Region() (geometry.Region, error) {
	f := s.config.Frame
	switch f.Region {
	case config.RegionRectangle:
		return geometry.Rectangle(float64(f.Width)-2*f.BoundsMargin, float64(f.Height)-2*f.BoundsMargin), nil
	case config.RegionDisk, "":
		return geometry.Disk(f.Radius())
	default:
		return geometry.Region{}, fmt.Errorf("%w: unknown region %q", config.ErrInvalid, f.Region)
	}
}

// outside counts endpoints beyond the region the fractal is meant to fill.
func (s *State) outside(segments []geometry.Segment) int {
	region, err := s.Region()
	if err != nil {
		s.logger.Warn("no region to compare against", "error", err)
		return 0
	}
	return region.Outside(segments, 1e-6)
}

// Options choose what a frame shows beyond the first tree.
type Options struct {
	Both   bool
	Bounds bool
}

// DefaultOptions are the options set in the config.
func (s *State) DefaultOptions() Options {
	return Options{
		Both:   s.config.Style.Both,
		Bounds: s.config.Style.ShowBounds,
	}
}

// Frame draws the current trees at frame.
func (s *State) Frame(frame int, opts Options) render.Frame {
	a, b := s.Trees()
	return s.frame(a, b, frame, opts)
}

func (s *State) frame(a, b *tree.Tree[float64], frame int, opts Options) render.Frame {
	style := s.config.Style

	f := render.Frame{
		Width:      s.config.Frame.Width,
		Height:     s.config.Frame.Height,
		Background: gg.Hex(style.Background),
	}

	f.Layers = append(f.Layers, render.Layer{
		Segments: s.Divide(a, frame),
		Color:    gg.Hex(style.ColorA),
		Width:    style.LineWidth,
	})
	if opts.Both {
		f.Layers = append(f.Layers, render.Layer{
			Segments: s.Divide(b, frame),
			Color:    gg.Hex(style.ColorB),
			Width:    style.LineWidth,
		})
	}
	if opts.Bounds {
		f.Layers = append(f.Layers, render.Layer{
			Segments: s.Bounds(),
			Color:    gg.Hex(style.BoundsColor),
			Width:    style.LineWidth,
		})
	}

	return f
}
