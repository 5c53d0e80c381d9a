package app

import (
	"context"
	"fmt"
	"golang.org/x/sync/errgroup"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"
)

// FramePath is where frame is written within dir.
func FramePath(dir string, frame int) string {
	return filepath.Join(dir, fmt.Sprintf("frame-%04d.jpeg", frame))
}

// Export writes one full cycle of frames, 0 through FramesPerCycle, as JPEGs in dir.
//
// Frames are drawn concurrently from the trees current when Export starts, so a
// Regenerate during export does not change the animation.
func (s *State) Export(ctx context.Context, dir string, opts Options) error {
	err := os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		return err
	}

	a, b := s.Trees()
	nFrames := s.config.Frame.FramesPerCycle + 1
	quality := s.config.Output.JPEGQuality

	start := time.Now()
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for frame := 0; frame < nFrames; frame++ {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			err := s.frame(a, b, frame, opts).Save(FramePath(dir, frame), quality)
			if err != nil {
				return fmt.Errorf("frame %d: %w", frame, err)
			}

			if n := done.Add(1); n%100 == 0 {
				s.logger.Info("exported frames", "done", n, "total", nFrames)
			}
			return nil
		})
	}

	err = g.Wait()
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.logger.Info("exported cycle", "dir", dir, "frames", nFrames, "elapsed", time.Since(start))
	return nil
}
