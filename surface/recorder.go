package surface

import (
	"fmt"
	"image"
	"os"
	"strings"
	"unicode/utf8"
)

// OpKind names a recorded primitive.
type OpKind string

const (
	OpPage      OpKind = "page"
	OpRect      OpKind = "rect"
	OpRounded   OpKind = "rounded"
	OpCircle    OpKind = "circle"
	OpArc       OpKind = "arc"
	OpLine      OpKind = "line"
	OpPolygon   OpKind = "polygon"
	OpText      OpKind = "text"
	OpImage     OpKind = "image"
	OpRaster    OpKind = "raster"
	OpWatermark OpKind = "watermark"
)

// Op is one recorded call. Fields that do not apply to Kind are zero.
type Op struct {
	Kind       OpKind
	Page       int
	X, Y, W, H float64
	X2, Y2     float64
	R          float64
	Start      float64
	Sweep      float64
	Points     []Point
	Text       string
	Lines      []string
	Name       string
	Style      Style
	TextStyle  TextStyle
}

// Recorder is a Surface that keeps every call in memory. Text is measured
// with a fixed advance of half the font size per rune. Image fails for files
// that do not exist, like the PDF surface does.
type Recorder struct {
	Ops  []Op
	page int
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Pages returns the number of pages added.
func (r *Recorder) Pages() int { return r.page }

func (r *Recorder) add(op Op) {
	op.Page = r.page
	r.Ops = append(r.Ops, op)
}

// Filter returns the recorded ops of kind k, in call order.
func (r *Recorder) Filter(k OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}

// OnPage returns the ops drawn on page n (1-based).
func (r *Recorder) OnPage(n int) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Page == n && op.Kind != OpPage {
			out = append(out, op)
		}
	}
	return out
}

// HasText reports whether any text op contains sub.
func (r *Recorder) HasText(sub string) bool {
	return r.FindText(sub) != nil
}

// FindText returns the first text op containing sub, or nil.
func (r *Recorder) FindText(sub string) *Op {
	for i := range r.Ops {
		if r.Ops[i].Kind == OpText && strings.Contains(r.Ops[i].Text, sub) {
			return &r.Ops[i]
		}
	}
	return nil
}

func (r *Recorder) AddPage() {
	r.page++
	r.add(Op{Kind: OpPage})
}

func (r *Recorder) Rect(x, y, w, h float64, s Style) {
	r.add(Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Style: s})
}

func (r *Recorder) RoundedRect(x, y, w, h, rad float64, s Style) {
	r.add(Op{Kind: OpRounded, X: x, Y: y, W: w, H: h, R: rad, Style: s})
}

func (r *Recorder) Circle(cx, cy, rad float64, s Style) {
	r.add(Op{Kind: OpCircle, X: cx, Y: cy, R: rad, Style: s})
}

func (r *Recorder) Arc(cx, cy, rad, startDeg, sweepDeg float64, s Style) {
	r.add(Op{Kind: OpArc, X: cx, Y: cy, R: rad, Start: startDeg, Sweep: sweepDeg, Style: s})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64, s Style) {
	r.add(Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, Style: s})
}

func (r *Recorder) Polygon(pts []Point, s Style) {
	r.add(Op{Kind: OpPolygon, Points: append([]Point(nil), pts...), Style: s})
}

func (r *Recorder) measure(ts TextStyle) func(string) float64 {
	return func(s string) float64 {
		return float64(utf8.RuneCountInString(s)) * ts.size() / 2
	}
}

func (r *Recorder) Text(text string, x, y float64, ts TextStyle) float64 {
	lines := layoutLines(text, ts, r.measure(ts))
	h := float64(len(lines)) * ts.LineHeight()
	r.add(Op{Kind: OpText, X: x, Y: y, W: ts.Width, H: h, Text: text, Lines: lines, TextStyle: ts})
	return h
}

func (r *Recorder) TextHeight(text string, ts TextStyle) float64 {
	return float64(len(layoutLines(text, ts, r.measure(ts)))) * ts.LineHeight()
}

func (r *Recorder) TextWidth(text string, ts TextStyle) float64 {
	return r.measure(ts)(text)
}

func (r *Recorder) Image(path string, x, y, w, h float64) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("surface: opening image: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("surface: image %s is empty", path)
	}
	r.add(Op{Kind: OpImage, X: x, Y: y, W: w, H: h, Name: path})
	return nil
}

func (r *Recorder) Raster(name string, img image.Image, x, y, w, h float64) error {
	if img == nil || img.Bounds().Empty() {
		return fmt.Errorf("surface: image %s is empty", name)
	}
	r.add(Op{Kind: OpRaster, X: x, Y: y, W: w, H: h, Name: name})
	return nil
}

func (r *Recorder) Watermark(text string, size float64, c Color, opacity, angle float64) {
	r.add(Op{Kind: OpWatermark, Text: text, R: angle, TextStyle: TextStyle{Size: size, Color: c}})
}
