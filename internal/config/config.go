package config

import (
	"errors"
	"fmt"
	"github.com/gogpu/gg"
	"github.com/willbeason/radial-fractal/pkg/tree"
	"gopkg.in/yaml.v3"
	"math"
	"os"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Shapes the fractal may be checked against.
const (
	RegionDisk      = "disk"
	RegionRectangle = "rectangle"
)

// Config is everything needed to generate and draw fractals.
type Config struct {
	// Seed for tree generation. Zero seeds from the clock.
	Seed int64 `yaml:"seed"`

	Tree   TreeConfig   `yaml:"tree"`
	Frame  FrameConfig  `yaml:"frame"`
	Style  StyleConfig  `yaml:"style"`
	Output OutputConfig `yaml:"output"`
}

type TreeConfig struct {
	Depth       int     `yaml:"depth"`
	MinChildren int     `yaml:"min_children"`
	MaxChildren int     `yaml:"max_children"`
	MaxOffset   float64 `yaml:"max_offset"`
}

// Random converts the config for tree.Random.
func (c TreeConfig) Random() tree.RandomConfig {
	return tree.RandomConfig{
		Depth:       c.Depth,
		MinChildren: c.MinChildren,
		MaxChildren: c.MaxChildren,
		MaxOffset:   c.MaxOffset,
	}
}

type FrameConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// FramesPerCycle is how many frames it takes the phase to go once around.
	FramesPerCycle int `yaml:"frames_per_cycle"`

	// RadiusMargin is the gap between the fractal's disk and the nearest edge of the frame.
	RadiusMargin float64 `yaml:"radius_margin"`

	// BoundsMargin is the gap between the outermost bounds and the edges of the frame.
	BoundsMargin float64 `yaml:"bounds_margin"`

	// Region is the shape the fractal is meant to fill, RegionDisk or
	// RegionRectangle. Endpoints outside it are counted at debug level.
	Region string `yaml:"region"`
}

// Radius is the radius of the disk the root junction fills.
func (c FrameConfig) Radius() float64 {
	return math.Min(float64(c.Width), float64(c.Height))/2 - c.RadiusMargin
}

type StyleConfig struct {
	Background  string  `yaml:"background"`
	ColorA      string  `yaml:"color_a"`
	ColorB      string  `yaml:"color_b"`
	BoundsColor string  `yaml:"bounds_color"`
	LineWidth   float64 `yaml:"line_width"`

	// Both draws the second tree over the first.
	Both bool `yaml:"both"`

	// ShowBounds draws the outermost bounds.
	ShowBounds bool `yaml:"show_bounds"`
}

type OutputConfig struct {
	Dir         string `yaml:"dir"`
	JPEGQuality int    `yaml:"jpeg_quality"`
}

// Default is a looping 1080p animation of seven layers of two or three
// children, one rotation every 1200 frames.
func Default() Config {
	return Config{
		Tree: TreeConfig{
			Depth:       7,
			MinChildren: 2,
			MaxChildren: 3,
			MaxOffset:   2 * math.Pi,
		},
		Frame: FrameConfig{
			Width:          1920,
			Height:         1080,
			FramesPerCycle: 1200,
			RadiusMargin:   30,
			BoundsMargin:   10,
			Region:         RegionDisk,
		},
		Style: StyleConfig{
			Background:  "#000000",
			ColorA:      "#adff2f",
			ColorB:      "#f08080",
			BoundsColor: "#adff2f",
			LineWidth:   2,
		},
		Output: OutputConfig{
			Dir:         "frames",
			JPEGQuality: 90,
		},
	}
}

// Load reads a YAML config from path. Fields missing from the file keep their
// defaults. An empty path returns Default. Load does not validate; callers
// apply their overrides first and then call Validate.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Tree.Depth < 0 {
		invalid("tree.depth must be non-negative, got %d", c.Tree.Depth)
	}
	if c.Tree.MinChildren < 0 {
		invalid("tree.min_children must be non-negative, got %d", c.Tree.MinChildren)
	}
	if c.Tree.MinChildren > c.Tree.MaxChildren {
		invalid("tree.min_children %d exceeds tree.max_children %d", c.Tree.MinChildren, c.Tree.MaxChildren)
	}

	if c.Frame.Width <= 0 || c.Frame.Height <= 0 {
		invalid("frame size must be positive, got %dx%d", c.Frame.Width, c.Frame.Height)
	} else if c.Frame.Radius() <= 0 {
		invalid("frame.radius_margin %v leaves no room in a %dx%d frame", c.Frame.RadiusMargin, c.Frame.Width, c.Frame.Height)
	}
	if c.Frame.Region != RegionDisk && c.Frame.Region != RegionRectangle {
		invalid("frame.region must be %q or %q, got %q", RegionDisk, RegionRectangle, c.Frame.Region)
	}
	if c.Frame.FramesPerCycle <= 0 {
		invalid("frame.frames_per_cycle must be positive, got %d", c.Frame.FramesPerCycle)
	}

	for name, hex := range map[string]string{
		"style.background":   c.Style.Background,
		"style.color_a":      c.Style.ColorA,
		"style.color_b":      c.Style.ColorB,
		"style.bounds_color": c.Style.BoundsColor,
	} {
		if _, err := gg.ParseHex(hex); err != nil {
			invalid("%s: %v", name, err)
		}
	}
	if c.Style.LineWidth <= 0 {
		invalid("style.line_width must be positive, got %v", c.Style.LineWidth)
	}

	if c.Output.JPEGQuality < 1 || c.Output.JPEGQuality > 100 {
		invalid("output.jpeg_quality must be in [1, 100], got %d", c.Output.JPEGQuality)
	}

	return errors.Join(errs...)
}
