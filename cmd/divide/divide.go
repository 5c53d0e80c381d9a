package main

import (
	"context"
	"github.com/spf13/cobra"
	"github.com/willbeason/radial-fractal/internal/app"
	"github.com/willbeason/radial-fractal/internal/config"
	"github.com/willbeason/radial-fractal/internal/logging"
	"github.com/willbeason/radial-fractal/internal/metrics"
	"github.com/willbeason/radial-fractal/pkg/render"
	"log/slog"
	"os"
)

const (
	flagConfig       = "config"
	flagSeed         = "seed"
	flagLogLevel     = "log-level"
	flagMetricsFile  = "metrics-file"
	flagDepth        = "depth"
	flagMinChildren  = "min-children"
	flagMaxChildren  = "max-children"
	flagWidth        = "width"
	flagHeight       = "height"
	flagRadiusMargin = "radius-margin"
	flagBoundsMargin = "bounds-margin"
	flagRegion       = "region"
	flagBoth         = "both"
	flagShowBounds   = "show-bounds"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "divide",
		Short: "Draw fractals by dividing a region along the branches of a random tree",
	}

	flags := cmd.PersistentFlags()
	flags.String(flagConfig, "", "path to a YAML config file")
	flags.Int64(flagSeed, 0, "seed for tree generation; 0 seeds from the clock")
	flags.String(flagLogLevel, "info", "one of debug, info, warn, error")
	flags.String(flagMetricsFile, "", "write metrics to this file on exit")
	flags.Int(flagDepth, 0, "layers of junctions below the root")
	flags.Int(flagMinChildren, 0, "fewest children per junction")
	flags.Int(flagMaxChildren, 0, "most children per junction")
	flags.Int(flagWidth, 0, "frame width in pixels")
	flags.Int(flagHeight, 0, "frame height in pixels")
	flags.Float64(flagRadiusMargin, 0, "gap in pixels between the fractal and the nearest edge")
	flags.Float64(flagBoundsMargin, 0, "gap in pixels between the outermost bounds and the edges")
	flags.String(flagRegion, "", "shape the fractal should fill, disk or rectangle")
	flags.Bool(flagBoth, false, "also draw the second tree")
	flags.Bool(flagShowBounds, false, "draw the outermost bounds")

	cmd.AddCommand(framesCmd(), frameCmd(), svgCmd(), serveCmd())

	return cmd
}

// env is everything a subcommand needs.
type env struct {
	state   *app.State
	logger  *slog.Logger
	metrics *metrics.Metrics

	metricsFile string
}

// loadConfig reads the config file, then applies any flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString(flagConfig)
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if flags.Changed(flagSeed) {
		cfg.Seed, _ = flags.GetInt64(flagSeed)
	}
	if flags.Changed(flagDepth) {
		cfg.Tree.Depth, _ = flags.GetInt(flagDepth)
	}
	if flags.Changed(flagMinChildren) {
		cfg.Tree.MinChildren, _ = flags.GetInt(flagMinChildren)
	}
	if flags.Changed(flagMaxChildren) {
		cfg.Tree.MaxChildren, _ = flags.GetInt(flagMaxChildren)
	}
	if flags.Changed(flagWidth) {
		cfg.Frame.Width, _ = flags.GetInt(flagWidth)
	}
	if flags.Changed(flagHeight) {
		cfg.Frame.Height, _ = flags.GetInt(flagHeight)
	}
	if flags.Changed(flagRadiusMargin) {
		cfg.Frame.RadiusMargin, _ = flags.GetFloat64(flagRadiusMargin)
	}
	if flags.Changed(flagBoundsMargin) {
		cfg.Frame.BoundsMargin, _ = flags.GetFloat64(flagBoundsMargin)
	}
	if flags.Changed(flagRegion) {
		cfg.Frame.Region, _ = flags.GetString(flagRegion)
	}
	if flags.Changed(flagBoth) {
		cfg.Style.Both, _ = flags.GetBool(flagBoth)
	}
	if flags.Changed(flagShowBounds) {
		cfg.Style.ShowBounds, _ = flags.GetBool(flagShowBounds)
	}

	return cfg, cfg.Validate()
}

func setup(cmd *cobra.Command) (*env, error) {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	levelName, _ := cmd.Flags().GetString(flagLogLevel)
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	logger := logging.New(level)
	render.SetLogger(logger)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	metricsFile, _ := cmd.Flags().GetString(flagMetricsFile)

	return &env{
		state:       app.New(cfg, logger, m),
		logger:      logger,
		metrics:     m,
		metricsFile: metricsFile,
	}, nil
}

// close writes metrics if asked to.
func (e *env) close() error {
	if e.metricsFile == "" {
		return nil
	}
	return e.metrics.WriteTextfile(e.metricsFile)
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
