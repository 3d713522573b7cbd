package floorplan

import (
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/lvillar/hausdoc/doctpl"
	"github.com/lvillar/hausdoc/surface"
)

// Render draws plan and returns its bottom y. Skipped rooms are reported to
// logger, which may be nil.
func Render(s surface.Surface, p doctpl.Palette, plan Plan, logger *log.Logger) float64 {
	k := plan.Scale
	if k <= 0 {
		k = 1
	}
	fs := func(size float64) float64 { return math.Max(6, size*k) }

	thick := surface.Stroke(p.Primary, math.Max(1.5, 3*k))
	thin := surface.Stroke(p.TextMuted, 1)

	for _, fl := range plan.Floors {
		s.Text(fl.Label, 80, fl.LabelY, surface.TextStyle{Size: fs(13), Bold: true, Color: p.Primary})
		for _, idx := range fl.Skipped {
			if logger != nil {
				logger.Printf("[floorplan] %s: room %d skipped, non-finite coordinates", fl.Label, idx+1)
			}
		}
		for _, c := range fl.Cells {
			drawCell(s, p, c, thick, thin, fs)
		}
	}
	return plan.Bottom
}

func drawCell(s surface.Surface, p doctpl.Palette, c Cell, thick, thin surface.Style, fs func(float64) float64) {
	s.Rect(c.X, c.Y, c.W, c.H, thick)
	if c.RightWall {
		s.Line(c.X+c.W, c.Y, c.X+c.W, c.Y+c.H, thin)
	}
	if c.BottomWall {
		s.Line(c.X, c.Y+c.H, c.X+c.W, c.Y+c.H, thin)
	}

	inner := c.W - 10
	nameTS := surface.TextStyle{Size: fs(10), Bold: true, Color: p.Text, Width: inner, Align: surface.AlignCenter, MaxLines: 1}
	s.Text(c.Name, c.X+5, c.Y+5, nameTS)

	areaTS := surface.TextStyle{Size: fs(7), Color: p.TextMuted, Width: inner, Align: surface.AlignCenter}
	areaY := c.Y + c.H - 15*(c.H/100)
	if strings.TrimSpace(c.Details) != "" {
		detailTS := surface.TextStyle{Size: fs(8), Color: p.TextLight, Width: inner, LineGap: 1}
		top := c.Y + nameTS.LineHeight() + 8
		if lines := int((areaY - top) / detailTS.LineHeight()); lines > 0 {
			detailTS.MaxLines = lines
			s.Text(c.Details, c.X+5, top, detailTS)
		}
	}
	s.Text(strconv.Itoa(c.Area)+" m²", c.X+5, areaY, areaTS)
}
