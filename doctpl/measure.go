package doctpl

import (
	"image"

	"github.com/lvillar/hausdoc/surface"
)

// measurer runs a block layout without drawing anything. Text metrics come
// from the wrapped surface so measured heights match the real ones.
type measurer struct {
	surface.Surface
}

func (measurer) AddPage()                                                   {}
func (measurer) Rect(x, y, w, h float64, s surface.Style)                   {}
func (measurer) RoundedRect(x, y, w, h, r float64, s surface.Style)         {}
func (measurer) Circle(cx, cy, r float64, s surface.Style)                  {}
func (measurer) Arc(cx, cy, r, startDeg, sweepDeg float64, s surface.Style) {}
func (measurer) Line(x1, y1, x2, y2 float64, s surface.Style)               {}
func (measurer) Polygon(pts []surface.Point, s surface.Style)               {}
func (measurer) Image(path string, x, y, w, h float64) error                { return nil }
func (measurer) Raster(name string, img image.Image, x, y, w, h float64) error {
	return nil
}
func (measurer) Watermark(text string, size float64, c surface.Color, opacity, angle float64) {}

func (m measurer) Text(text string, x, y float64, ts surface.TextStyle) float64 {
	return m.TextHeight(text, ts)
}

// Height returns the vertical extent of b, excluding the space left after
// it.
func (r *Renderer) Height(b Block) float64 {
	dry := *r
	dry.S = measurer{r.S}
	next, err := dry.renderBlock(b, 0)
	if err != nil {
		return 0
	}
	return next - trailing(b)
}

// trailing returns the space a block leaves below its ink.
func trailing(b Block) float64 {
	switch b.Type {
	case TypeHeading:
		return gap(b, 12)
	case TypeParagraph, TypeNote:
		return gap(b, 14)
	case TypeCallout, TypeTable:
		return gap(b, 15)
	case TypeCards:
		return gap(b, 0)
	case TypeSpacer:
		if b.Height > 0 {
			return b.Height
		}
		return 10
	}
	return gap(b, 10)
}
