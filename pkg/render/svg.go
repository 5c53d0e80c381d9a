package render

import (
	"fmt"
	sdfrender "github.com/deadsy/sdfx/render"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/gogpu/gg"
)

// LineStyle is the SVG style attribute for a layer.
func LineStyle(l Layer) string {
	r, g, b := l.Color.R*255, l.Color.G*255, l.Color.B*255
	return fmt.Sprintf("fill:none;stroke:rgb(%.0f,%.0f,%.0f);stroke-width:%g", r, g, b, l.Width)
}

// SaveSVG writes every layer's segments to path in image coordinates.
// SVG output has a single stroke style, taken from the first layer.
func (f Frame) SaveSVG(path string) error {
	if len(f.Layers) == 0 {
		return fmt.Errorf("no layers to write to %s", path)
	}

	svg := sdfrender.NewSVG(path, LineStyle(f.Layers[0]))

	screen := Screen(f.Width, f.Height)
	for _, layer := range f.Layers {
		for _, s := range layer.Segments {
			s = s.Transform(screen)
			svg.Line(vec(s.A), vec(s.B))
		}
	}

	err := svg.Save()
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func vec(p gg.Point) v2.Vec {
	return v2.Vec{X: p.X, Y: p.Y}
}
