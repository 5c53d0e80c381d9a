package main

import (
	"errors"
	"github.com/spf13/cobra"
)

const (
	flagOut   = "out"
	flagFrame = "frame"
)

func framesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Write one full cycle of frames as JPEGs",
		Args:  cobra.ExactArgs(0),
		RunE:  runFrames,
	}

	cmd.Flags().String(flagOut, "", "output directory; defaults to output.dir from the config")

	return cmd
}

func runFrames(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	dir, _ := cmd.Flags().GetString(flagOut)
	if dir == "" {
		dir = e.state.Config().Output.Dir
	}

	err = e.state.Export(cmd.Context(), dir, e.state.DefaultOptions())
	return errors.Join(err, e.close())
}

func frameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Write a single frame as a PNG",
		Args:  cobra.ExactArgs(0),
		RunE:  runFrame,
	}

	cmd.Flags().String(flagOut, "out.png", "output file")
	cmd.Flags().Int(flagFrame, 0, "frame index within the cycle")

	return cmd
}

func runFrame(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString(flagOut)
	frame, _ := cmd.Flags().GetInt(flagFrame)

	err = e.state.Frame(frame, e.state.DefaultOptions()).Save(out, 0)
	if err == nil {
		e.logger.Info("wrote frame", "path", out, "frame", frame)
	}
	return errors.Join(err, e.close())
}

func svgCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "svg",
		Short: "Write a single frame as an SVG",
		Args:  cobra.ExactArgs(0),
		RunE:  runSVG,
	}

	cmd.Flags().String(flagOut, "out.svg", "output file")
	cmd.Flags().Int(flagFrame, 0, "frame index within the cycle")

	return cmd
}

func runSVG(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString(flagOut)
	frame, _ := cmd.Flags().GetInt(flagFrame)

	err = e.state.Frame(frame, e.state.DefaultOptions()).SaveSVG(out)
	if err == nil {
		e.logger.Info("wrote svg", "path", out, "frame", frame)
	}
	return errors.Join(err, e.close())
}
