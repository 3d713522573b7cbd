package surface

import (
	"fmt"
	"image"
	"io"
	"math"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
	"golang.org/x/text/encoding/charmap"
)

// kappa is the Bezier control distance for a quarter circle of radius 1.
const kappa = 0.5522847498

// Meta is the document information dictionary.
type Meta struct {
	Title   string
	Author  string
	Subject string
	Creator string
	Created time.Time
}

// PDF is a Surface backed by gofpdf. Text is drawn with the Helvetica core
// font, so it is transcoded to Windows-1252; runes outside that code page
// are replaced with "?".
type PDF struct {
	pdf    *gofpdf.Fpdf
	imp    *gofpdi.Importer
	images map[string]placed
	maxDim int
	pages  int
}

// placed is a registered image and its pixel size.
type placed struct {
	name   string
	w, h   float64
	vector bool
	tpl    int
}

// NewPDF returns an empty A4 portrait document measured in points. Raster
// images larger than maxImageDim pixels on their longer side are downscaled
// before embedding; 0 disables downscaling.
func NewPDF(maxImageDim int) *PDF {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: PageWidth, Ht: PageHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Helvetica", "", 10)
	return &PDF{
		pdf:    pdf,
		imp:    gofpdi.NewImporter(),
		images: make(map[string]placed),
		maxDim: maxImageDim,
	}
}

// SetMeta writes the document information dictionary.
func (p *PDF) SetMeta(m Meta) {
	p.pdf.SetTitle(m.Title, true)
	p.pdf.SetAuthor(m.Author, true)
	p.pdf.SetSubject(m.Subject, true)
	if m.Creator != "" {
		p.pdf.SetCreator(m.Creator, true)
	}
	if !m.Created.IsZero() {
		p.pdf.SetCreationDate(m.Created)
	}
}

// Pages returns the number of pages added so far.
func (p *PDF) Pages() int { return p.pages }

// Err returns the first error recorded by the underlying document.
func (p *PDF) Err() error {
	if p.pdf.Err() {
		return p.pdf.Error()
	}
	return nil
}

// Output writes the finished document to w.
func (p *PDF) Output(w io.Writer) error {
	if err := p.Err(); err != nil {
		return fmt.Errorf("surface: rendering: %w", err)
	}
	if err := p.pdf.Output(w); err != nil {
		return fmt.Errorf("surface: writing output: %w", err)
	}
	return nil
}

func (p *PDF) AddPage() {
	p.pdf.AddPage()
	p.pages++
}

// paint applies s and returns the gofpdf style string, or "" if nothing is
// to be painted.
func (p *PDF) paint(s Style) string {
	op := ""
	if s.Fill != nil {
		p.pdf.SetFillColor(int(s.Fill.R), int(s.Fill.G), int(s.Fill.B))
		op += "F"
	}
	if s.Stroke != nil {
		p.pdf.SetDrawColor(int(s.Stroke.R), int(s.Stroke.G), int(s.Stroke.B))
		w := s.LineWidth
		if w <= 0 {
			w = 1
		}
		p.pdf.SetLineWidth(w)
		if s.RoundCap {
			p.pdf.SetLineCapStyle("round")
		} else {
			p.pdf.SetLineCapStyle("butt")
		}
		op += "D"
	}
	if op != "" && s.alpha() < 1 {
		p.pdf.SetAlpha(s.alpha(), "Normal")
	}
	return op
}

func (p *PDF) unpaint(s Style) {
	if s.alpha() < 1 {
		p.pdf.SetAlpha(1, "Normal")
	}
}

func (p *PDF) Rect(x, y, w, h float64, s Style) {
	if op := p.paint(s); op != "" {
		p.pdf.Rect(x, y, w, h, op)
	}
	p.unpaint(s)
}

// RoundedRect is built from path segments; corners with r larger than half
// the shorter side are clamped.
func (p *PDF) RoundedRect(x, y, w, h, r float64, s Style) {
	if r <= 0 {
		p.Rect(x, y, w, h, s)
		return
	}
	r = math.Min(r, math.Min(w, h)/2)
	op := p.paint(s)
	if op == "" {
		p.unpaint(s)
		return
	}
	k := r * kappa
	f := p.pdf
	f.MoveTo(x+r, y)
	f.LineTo(x+w-r, y)
	f.CurveBezierCubicTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	f.LineTo(x+w, y+h-r)
	f.CurveBezierCubicTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	f.LineTo(x+r, y+h)
	f.CurveBezierCubicTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	f.LineTo(x, y+r)
	f.CurveBezierCubicTo(x, y+r-k, x+r-k, y, x+r, y)
	f.ClosePath()
	f.DrawPath(op)
	p.unpaint(s)
}

func (p *PDF) Circle(cx, cy, r float64, s Style) {
	if op := p.paint(s); op != "" {
		p.pdf.Circle(cx, cy, r, op)
	}
	p.unpaint(s)
}

// Arc converts clockwise page angles into the counter-clockwise angles
// gofpdf expects.
func (p *PDF) Arc(cx, cy, r, startDeg, sweepDeg float64, s Style) {
	if sweepDeg <= 0 || s.Stroke == nil {
		return
	}
	s.Fill = nil
	op := p.paint(s)
	p.pdf.Arc(cx, cy, r, r, 0, -(startDeg + sweepDeg), -startDeg, op)
	p.unpaint(s)
}

func (p *PDF) Line(x1, y1, x2, y2 float64, s Style) {
	if s.Stroke == nil {
		return
	}
	s.Fill = nil
	p.paint(s)
	p.pdf.Line(x1, y1, x2, y2)
	p.unpaint(s)
}

func (p *PDF) Polygon(pts []Point, s Style) {
	if len(pts) < 3 {
		return
	}
	op := p.paint(s)
	if op != "" {
		gp := make([]gofpdf.PointType, len(pts))
		for i, pt := range pts {
			gp[i] = gofpdf.PointType{X: pt.X, Y: pt.Y}
		}
		p.pdf.Polygon(gp, op)
	}
	p.unpaint(s)
}

func (p *PDF) font(ts TextStyle) {
	style := ""
	if ts.Bold {
		style += "B"
	}
	if ts.Italic {
		style += "I"
	}
	p.pdf.SetFont("Helvetica", style, ts.size())
}

func (p *PDF) measure(s string) float64 {
	return p.pdf.GetStringWidth(cp1252(s))
}

func (p *PDF) Text(text string, x, y float64, ts TextStyle) float64 {
	p.font(ts)
	p.pdf.SetTextColor(int(ts.Color.R), int(ts.Color.G), int(ts.Color.B))
	lines := layoutLines(text, ts, p.measure)
	lh := ts.LineHeight()
	for i, line := range lines {
		if line == "" {
			continue
		}
		lx := alignX(x, p.measure(line), ts)
		p.pdf.Text(lx, y+float64(i)*lh+ts.size()*ascent, cp1252(line))
	}
	return float64(len(lines)) * lh
}

func (p *PDF) TextHeight(text string, ts TextStyle) float64 {
	p.font(ts)
	return float64(len(layoutLines(text, ts, p.measure))) * ts.LineHeight()
}

func (p *PDF) TextWidth(text string, ts TextStyle) float64 {
	p.font(ts)
	return p.measure(text)
}

// Watermark rotates around the page center.
func (p *PDF) Watermark(text string, size float64, c Color, opacity, angle float64) {
	ts := TextStyle{Size: size, Bold: true, Color: c}
	w := p.TextWidth(text, ts)
	cx, cy := PageWidth/2, PageHeight/2
	p.pdf.SetAlpha(opacity, "Normal")
	p.pdf.TransformBegin()
	p.pdf.TransformRotate(angle, cx, cy)
	p.pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
	p.pdf.Text(cx-w/2, cy+size/3, cp1252(text))
	p.pdf.TransformEnd()
	p.pdf.SetAlpha(1, "Normal")
}

// Raster registers img as PNG under name and places it.
func (p *PDF) Raster(name string, img image.Image, x, y, w, h float64) error {
	pl, ok := p.images[name]
	if !ok {
		var err error
		pl, err = p.registerRaster(name, img, false)
		if err != nil {
			return err
		}
		p.images[name] = pl
	}
	p.place(pl, x, y, w, h)
	return nil
}

func (p *PDF) place(pl placed, x, y, w, h float64) {
	px, py, pw, ph := fit(pl.w, pl.h, x, y, w, h)
	if pl.vector {
		p.imp.UseImportedTemplate(p.pdf, pl.tpl, px, py, pw, ph)
		return
	}
	p.pdf.ImageOptions(pl.name, px, py, pw, ph, false, gofpdf.ImageOptions{}, 0, "")
}

var win1252 = charmap.Windows1252

// cp1252 transcodes s for the core fonts.
func cp1252(s string) string {
	buf := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := win1252.EncodeRune(r)
		if !ok {
			b = '?'
		}
		buf = append(buf, b)
	}
	return string(buf)
}
