// Package render draws division lines to raster and vector images.
//
// Segments are in world coordinates: the origin is the center of the image and
// y increases upward.
package render

import (
	"fmt"
	"github.com/gogpu/gg"
	"github.com/willbeason/radial-fractal/pkg/geometry"
	"io"
	"log/slog"
	"os"
)

// A Layer is a set of segments drawn with one stroke.
type Layer struct {
	Segments []geometry.Segment
	Color    gg.RGBA
	Width    float64
}

// A Frame is a complete image.
type Frame struct {
	Width, Height int
	Background    gg.RGBA

	// Layers are drawn in order, so later layers cover earlier ones.
	Layers []Layer
}

// SetLogger forwards l to the raster backend.
func SetLogger(l *slog.Logger) {
	gg.SetLogger(l)
}

// Screen maps world coordinates to image pixels.
func Screen(width, height int) gg.Matrix {
	return gg.Translate(float64(width)/2, float64(height)/2).Multiply(gg.Scale(1, -1))
}

// Draw rasterizes the frame. The caller must Close the returned context.
func (f Frame) Draw() (*gg.Context, error) {
	if f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", f.Width, f.Height)
	}

	dc := gg.NewContext(f.Width, f.Height)
	dc.ClearWithColor(f.Background)

	screen := Screen(f.Width, f.Height)
	for i, layer := range f.Layers {
		if len(layer.Segments) == 0 {
			continue
		}

		dc.SetColor(layer.Color)
		dc.SetLineWidth(layer.Width)
		for _, s := range layer.Segments {
			s = s.Transform(screen)
			dc.DrawLine(s.A.X, s.A.Y, s.B.X, s.B.Y)
		}

		err := dc.Stroke()
		if err != nil {
			_ = dc.Close()
			return nil, fmt.Errorf("stroking layer %d: %w", i, err)
		}
	}

	err := dc.FlushGPU()
	if err != nil {
		_ = dc.Close()
		return nil, err
	}

	return dc, nil
}

func (f Frame) WritePNG(w io.Writer) error {
	dc, err := f.Draw()
	if err != nil {
		return err
	}
	defer dc.Close()

	return dc.EncodePNG(w)
}

func (f Frame) WriteJPEG(w io.Writer, quality int) error {
	dc, err := f.Draw()
	if err != nil {
		return err
	}
	defer dc.Close()

	return dc.EncodeJPEG(w, quality)
}

// Save writes the frame to path, as a JPEG if quality is positive and a PNG
// otherwise.
func (f Frame) Save(path string, quality int) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	if quality > 0 {
		err = f.WriteJPEG(out, quality)
	} else {
		err = f.WritePNG(out)
	}
	if err != nil {
		_ = out.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return out.Close()
}
