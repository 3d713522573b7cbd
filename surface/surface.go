// Package surface is the drawing abstraction every renderer draws on.
//
// Coordinates are points with the origin at the top-left corner of an A4
// portrait page (595x842). Every primitive takes its colors explicitly; there
// is no current fill or stroke state shared between calls.
//
// Two implementations are provided: PDF, backed by gofpdf, and Recorder, which
// keeps the calls in memory so layouts can be inspected in tests.
package surface

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// Page geometry in points.
const (
	PageWidth  = 595.0
	PageHeight = 842.0
)

// Surface is a page-oriented 2-D canvas.
type Surface interface {
	// AddPage starts a new page. Drawing before the first AddPage is invalid.
	AddPage()

	Rect(x, y, w, h float64, s Style)
	RoundedRect(x, y, w, h, r float64, s Style)
	Circle(cx, cy, r float64, s Style)
	// Arc strokes a circular arc. Angles are degrees measured clockwise from
	// the 3 o'clock position as seen on the page, so 180..360 is the upper
	// half of the circle.
	Arc(cx, cy, r, startDeg, sweepDeg float64, s Style)
	Line(x1, y1, x2, y2 float64, s Style)
	Polygon(pts []Point, s Style)

	// Text draws a text block whose top edge is y and returns the height it
	// consumed. A block with a positive Width wraps and honours Align; a block
	// without one is drawn on a single line per "\n" segment.
	Text(text string, x, y float64, ts TextStyle) float64
	TextHeight(text string, ts TextStyle) float64
	TextWidth(text string, ts TextStyle) float64

	// Image places the image or single-page PDF at path, scaled to fit inside
	// the w x h box and centered in it. A zero h keeps the aspect ratio at
	// width w. It returns an error if the file cannot be used; nothing is
	// drawn in that case.
	Image(path string, x, y, w, h float64) error
	// Raster places an in-memory image, registered under name.
	Raster(name string, img image.Image, x, y, w, h float64) error

	// Watermark draws rotated, translucent text centered on the page.
	Watermark(text string, size float64, c Color, opacity, angle float64)
}

// Color is an RGB color.
type Color struct {
	R, G, B uint8
}

// Hex parses "#rrggbb" or "rrggbb". Malformed input yields black.
func Hex(s string) Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Style describes how a shape is painted. A nil Fill or Stroke skips that
// part. Opacity 0 means fully opaque.
type Style struct {
	Fill      *Color
	Stroke    *Color
	LineWidth float64
	Opacity   float64
	RoundCap  bool
}

// Fill returns a fill-only style.
func Fill(c Color) Style {
	return Style{Fill: &c}
}

// Stroke returns a stroke-only style.
func Stroke(c Color, width float64) Style {
	return Style{Stroke: &c, LineWidth: width}
}

// WithStroke adds a stroke to s.
func (s Style) WithStroke(c Color, width float64) Style {
	s.Stroke = &c
	s.LineWidth = width
	return s
}

// WithOpacity sets the opacity of s.
func (s Style) WithOpacity(a float64) Style {
	s.Opacity = a
	return s
}

func (s Style) alpha() float64 {
	if s.Opacity <= 0 || s.Opacity > 1 {
		return 1
	}
	return s.Opacity
}

// Point is a position on the page.
type Point struct {
	X, Y float64
}

// Align is the horizontal alignment of a wrapped text block.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle describes a text block. Size is in points. LineGap is added
// between wrapped lines. MaxLines > 0 truncates the block with an ellipsis.
type TextStyle struct {
	Size     float64
	Bold     bool
	Italic   bool
	Color    Color
	Width    float64
	Align    Align
	LineGap  float64
	MaxLines int
}

func (ts TextStyle) size() float64 {
	if ts.Size <= 0 {
		return 10
	}
	return ts.Size
}

// LineHeight returns the vertical advance of one line of ts.
func (ts TextStyle) LineHeight() float64 {
	return ts.size()*1.2 + ts.LineGap
}

// ascent is the distance from the top of a line to its baseline, as a
// fraction of the font size.
const ascent = 0.8

// layoutLines splits text into the lines a block of ts occupies, measuring
// with width.
func layoutLines(text string, ts TextStyle, width func(string) float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if ts.Width <= 0 {
			lines = append(lines, para)
			continue
		}
		lines = append(lines, wrap(para, ts.Width, width)...)
	}
	if ts.MaxLines > 0 && len(lines) > ts.MaxLines {
		lines = lines[:ts.MaxLines]
		last := strings.TrimRight(lines[len(lines)-1], " ")
		for last != "" && ts.Width > 0 && width(last+"…") > ts.Width {
			r := []rune(last)
			last = string(r[:len(r)-1])
		}
		lines[len(lines)-1] = last + "…"
	}
	return lines
}

// wrap breaks one paragraph into lines no wider than w. Words wider than w
// are split between runes.
func wrap(para string, w float64, width func(string) float64) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	cur := ""
	for _, word := range words {
		cand := word
		if cur != "" {
			cand = cur + " " + word
		}
		if width(cand) <= w {
			cur = cand
			continue
		}
		if cur != "" {
			lines = append(lines, cur)
			cur = ""
		}
		for width(word) > w && len([]rune(word)) > 1 {
			r := []rune(word)
			n := 1
			for n < len(r)-1 && width(string(r[:n+1])) <= w {
				n++
			}
			lines = append(lines, string(r[:n]))
			word = string(r[n:])
		}
		cur = word
	}
	return append(lines, cur)
}

// alignX returns the x of a line of width lw within a block at x.
func alignX(x, lw float64, ts TextStyle) float64 {
	if ts.Width <= 0 {
		return x
	}
	switch ts.Align {
	case AlignCenter:
		return x + (ts.Width-lw)/2
	case AlignRight:
		return x + ts.Width - lw
	}
	return x
}

// fit scales an iw x ih source into a w x h box, keeping its aspect ratio,
// and returns the placed rectangle.
func fit(iw, ih, x, y, w, h float64) (px, py, pw, ph float64) {
	if iw <= 0 || ih <= 0 {
		return x, y, w, h
	}
	if h <= 0 {
		return x, y, w, w * ih / iw
	}
	scale := w / iw
	if s := h / ih; s < scale {
		scale = s
	}
	pw, ph = iw*scale, ih*scale
	return x + (w-pw)/2, y + (h-ph)/2, pw, ph
}

var (
	_ Surface = (*PDF)(nil)
	_ Surface = (*Recorder)(nil)
)
