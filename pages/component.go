package pages

import (
	"math"
	"strconv"
	"strings"

	"github.com/lvillar/hausdoc/catalog"
	"github.com/lvillar/hausdoc/infographic"
	"github.com/lvillar/hausdoc/surface"
	"github.com/lvillar/hausdoc/table"
)

// Column geometry of a component page.
const (
	leftX      = 60.0
	imageW     = 200.0
	imageH     = 150.0
	rightX     = 300.0
	rightW     = 235.0
	fullInnerX = 75.0
	fullInnerW = 455.0
)

// Limits of the lists on a component page.
const (
	MaxQualityRows = 4
	MaxPremium     = 4
	MaxAdvantages  = 6
)

// DetailResult is what the upper half of a component page hands to the
// lower half.
type DetailResult struct {
	ImageBottom float64 // bottom of the image or placeholder
	RightBottom float64 // bottom of the right-hand column
	Metric      catalog.Metric
	MetricValue string // raw display value of the metric attribute, if any
	Placeholder bool   // no usable image was found
}

// Y returns the cursor below both columns.
func (r DetailResult) Y() float64 {
	return math.Max(r.ImageBottom, r.RightBottom) + 15
}

// Component draws the detail page of v below the header and returns the
// cursor.
func (e *Env) Component(ctx Context, v *catalog.Variant) float64 {
	res := e.ComponentDetail(ctx, v)
	return e.ComponentTail(ctx, v, res)
}

// ComponentDetail draws the image column and the right-hand column with the
// name, description, quality table and U-value chart of v.
func (e *Env) ComponentDetail(ctx Context, v *catalog.Variant) DetailResult {
	d := v.Category.Descriptor()
	res := DetailResult{Metric: d.Metric}
	y := ctx.Y

	res.Placeholder = !e.componentImage(v, leftX, y)
	res.ImageBottom = y + imageH

	p := e.Palette
	ry := y
	ry += e.S.Text(v.Name, rightX, ry, surface.TextStyle{Size: 14, Bold: true, Color: p.Primary, Width: rightW, LineGap: 1, MaxLines: 2}) + 6
	if desc := strings.TrimSpace(v.Summary()); desc != "" {
		ry += e.S.Text(desc, rightX, ry, surface.TextStyle{Size: 9, Color: p.TextLight, Width: rightW, LineGap: 2, MaxLines: 6}) + 10
	}

	if rows := QualityRows(v); len(rows) > 0 {
		ry += e.S.Text("Technische Daten", rightX, ry, surface.TextStyle{Size: 9, Bold: true, Color: p.Primary}) + 4
		t := table.New(e.S).SetPosition(rightX, ry).SetWidth(rightW).SetColumnWidths(105, 130)
		t.SetStyle(table.TableStyle{
			RowHeight:     16,
			CellPadding:   table.Padding{Top: 4, Left: 6, Right: 6, Bottom: 3},
			CellFont:      &table.FontSpec{Size: 8},
			AlternateRows: &table.AlternateStyle{Even: table.CellStyle{FillColor: &p.GoldLight}},
		})
		for _, a := range rows {
			row := t.AddRow()
			row.AddCell(catalog.AttributeLabel(a.Key)).SetFont(true, 8).SetTextColor(p.Primary.String())
			row.AddCell(a.Value).SetTextColor(p.Text.String())
		}
		ry, _ = t.Render()
		ry += 10
	}

	switch d.Metric {
	case catalog.MetricUValue:
		if raw, ok := v.Attributes.Get("uValue"); ok {
			res.MetricValue = raw
			ry = infographic.UValueChart(e.S, p, rightX, ry, rightW, raw, e.uValueScale())
		}
	case catalog.MetricSCOP:
		res.MetricValue, _ = v.Attributes.Get("scop")
	}
	res.RightBottom = ry
	return res
}

// ComponentTail draws the lower half of a component page: the SCOP gauge
// carried in res, the assembly list, premium features, advantages and the
// comparison notes, each only if it fits above the content bottom.
func (e *Env) ComponentTail(ctx Context, v *catalog.Variant, res DetailResult) float64 {
	y := res.Y()
	if res.Metric == catalog.MetricSCOP && res.MetricValue != "" {
		gb := infographic.SCOPGauge(e.S, e.Palette, leftX, res.ImageBottom+10, res.MetricValue, e.scopMax())
		y = math.Max(gb, res.RightBottom) + 15
	}

	y = e.assembly(v, y)
	y = e.premium(v, y)
	y = e.advantages(v, y)
	return e.notes(v, y)
}

// componentImage places the technical drawing of v, or its photo, in the
// image box at (x, y). It draws the category placeholder and returns false
// if neither can be used.
func (e *Env) componentImage(v *catalog.Variant, x, y float64) bool {
	for _, ref := range []string{v.TechnicalDrawing, v.Image} {
		if ref == "" {
			continue
		}
		path, ok := e.Assets.Resolve(ref)
		if !ok {
			e.logf("%s/%s: asset %s not found", v.Category, v.ID, ref)
			continue
		}
		if err := e.S.Image(path, x, y, imageW, imageH); err != nil {
			e.logf("%s/%s: %v", v.Category, v.ID, err)
			continue
		}
		return true
	}

	fill := surface.Hex(v.Category.Descriptor().Placeholder)
	e.S.Rect(x, y, imageW, imageH, surface.Fill(fill).WithStroke(e.Palette.White, 2))
	e.S.Text("Bild folgt", x, y+imageH/2-7, surface.TextStyle{Size: 12, Bold: true, Color: e.Palette.White, Width: imageW, Align: surface.AlignCenter})
	return false
}

// QualityRows returns the attributes of the compact quality table: at most
// MaxQualityRows, chosen by the category's priority list.
func QualityRows(v *catalog.Variant) catalog.Attributes {
	return v.Attributes.Pick(v.Category.Descriptor().Priority, MaxQualityRows)
}

// Assembly returns the construction layers of v from outside to inside. It
// uses the explicit layer list when the catalog has one and otherwise builds
// it from the category's layer attributes.
func Assembly(v *catalog.Variant) []catalog.Layer {
	var out []catalog.Layer
	if len(v.Layers) > 0 {
		for _, l := range v.Layers {
			if strings.TrimSpace(l.Name) != "" {
				out = append(out, l)
			}
		}
		return out
	}
	for _, k := range v.Category.Descriptor().LayerKeys {
		if val, ok := v.Attributes.Get(k); ok {
			out = append(out, catalog.Layer{Name: catalog.AttributeLabel(k), Value: val})
		}
	}
	return out
}

func (e *Env) fits(v *catalog.Variant, what string, y, h float64) bool {
	if y+h <= e.bottom() {
		return true
	}
	e.logf("%s/%s: %s omitted, no space left", v.Category, v.ID, what)
	return false
}

func (e *Env) assembly(v *catalog.Variant, y float64) float64 {
	layers := Assembly(v)
	if len(layers) == 0 {
		return y
	}
	const lineH = 13.0
	h := 18 + lineH*float64(len(layers))
	if !e.fits(v, "assembly list", y, h) {
		return y
	}
	p := e.Palette
	e.S.Text("Aufbau von außen nach innen", fullInnerX-5, y, surface.TextStyle{Size: 11, Bold: true, Color: p.Primary})
	ly := y + 18
	for i, l := range layers {
		e.S.Text(strconv.Itoa(i+1)+".", fullInnerX, ly, surface.TextStyle{Size: 9, Bold: true, Color: p.Gold})
		text := l.Name
		if l.Value != "" {
			text += ": " + l.Value
		}
		e.S.Text(text, fullInnerX+15, ly, surface.TextStyle{Size: 9, Color: p.Text, Width: fullInnerW - 15, MaxLines: 1})
		ly += lineH
	}
	return y + h + 12
}

// twoColumns lays out items in rows of two and returns the height of every
// row when drawn with ts.
func (e *Env) twoColumns(items []string, ts surface.TextStyle) []float64 {
	var rows []float64
	for i := 0; i < len(items); i += 2 {
		h := e.S.TextHeight(items[i], ts)
		if i+1 < len(items) {
			h = math.Max(h, e.S.TextHeight(items[i+1], ts))
		}
		rows = append(rows, h+4)
	}
	return rows
}

func sum(vs []float64) float64 {
	t := 0.0
	for _, v := range vs {
		t += v
	}
	return t
}

func (e *Env) premium(v *catalog.Variant, y float64) float64 {
	items := limit(v.PremiumFeatures, MaxPremium)
	if len(items) == 0 {
		return y
	}
	p := e.Palette
	colW := (fullInnerW - 10) / 2
	ts := surface.TextStyle{Size: 8.5, Color: p.Text, Width: colW - 14, LineGap: 0.5, MaxLines: 2}
	rows := e.twoColumns(items, ts)
	h := 28 + sum(rows) + 4
	if !e.fits(v, "premium features", y, h) {
		return y
	}

	e.S.RoundedRect(leftX, y, ContentWidth, h, 6, surface.Fill(p.GoldLight))
	e.S.Rect(leftX, y, 4, h, surface.Fill(p.Gold))
	e.S.Text("Premium-Merkmale", fullInnerX, y+8, surface.TextStyle{Size: 10, Bold: true, Color: p.Primary})
	ry := y + 28
	for r, rh := range rows {
		for c := 0; c < 2; c++ {
			i := 2*r + c
			if i >= len(items) {
				break
			}
			x := fullInnerX + float64(c)*(colW+10)
			surface.Star(e.S, x+4, ry+4.5, 4, surface.Fill(p.Gold))
			e.S.Text(items[i], x+14, ry, ts)
		}
		ry += rh
	}
	return y + h + 12
}

func (e *Env) advantages(v *catalog.Variant, y float64) float64 {
	items := limit(v.Advantages, MaxAdvantages)
	if len(items) == 0 {
		return y
	}
	p := e.Palette
	colW := (fullInnerW - 10) / 2
	ts := surface.TextStyle{Size: 9, Color: p.Text, Width: colW - 14, LineGap: 0.5, MaxLines: 2}
	rows := e.twoColumns(items, ts)
	h := 18 + sum(rows)
	if !e.fits(v, "advantages", y, h) {
		return y
	}

	e.S.Text("Ihre Vorteile", fullInnerX-5, y, surface.TextStyle{Size: 11, Bold: true, Color: p.Primary})
	ry := y + 18
	for r, rh := range rows {
		for c := 0; c < 2; c++ {
			i := 2*r + c
			if i >= len(items) {
				break
			}
			x := fullInnerX + float64(c)*(colW+10)
			surface.Check(e.S, x, ry, 10, p.Gold)
			e.S.Text(items[i], x+14, ry, ts)
		}
		ry += rh
	}
	return y + h + 12
}

// notes draws the comparison notes box, truncated to the configured
// character budget, if it ends above the notes bottom limit.
func (e *Env) notes(v *catalog.Variant, y float64) float64 {
	text := Truncate(v.ComparisonNotes, e.Config.Layout.NotesCharBudget)
	if text == "" {
		return y
	}
	p := e.Palette
	ts := surface.TextStyle{Size: 8.5, Color: p.Text, Width: fullInnerW - 10, LineGap: 1.5}
	h := e.S.TextHeight(text, ts) + 35
	maxY := e.Config.Layout.NotesBottomLimit
	if maxY <= 0 {
		maxY = e.bottom()
	}
	if y+h >= maxY {
		e.logf("%s/%s: comparison notes omitted, no space left", v.Category, v.ID)
		return y
	}

	e.S.RoundedRect(leftX, y, ContentWidth, h, 6, surface.Fill(p.ErrorLight))
	e.S.Rect(leftX, y, 4, h, surface.Fill(p.Error))
	surface.Warning(e.S, fullInnerX-5, y+8, 11, p.Error, p.White)
	e.S.Text("KRITISCHE FRAGEN beim Vergleich:", fullInnerX+12, y+9, surface.TextStyle{Size: 9, Bold: true, Color: p.Error})
	e.S.Text(text, fullInnerX, y+25, ts)
	return y + h + 12
}

// Truncate shortens s to at most budget runes, cutting at a word boundary
// where possible and marking the cut with an ellipsis. A budget of zero or
// less leaves s unchanged.
func Truncate(s string, budget int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if budget <= 0 || len(r) <= budget {
		return s
	}
	cut := string(r[:budget-1])
	if i := strings.LastIndexByte(cut, ' '); i > len(cut)/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:-") + "…"
}

func limit(items []string, n int) []string {
	var out []string
	for _, it := range items {
		if len(out) == n {
			break
		}
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}

func (e *Env) uValueScale() infographic.UValueScale {
	l := e.Config.Layout
	s := infographic.DefaultUValueScale
	if l.UValueCeiling > 0 {
		s.Ceiling = l.UValueCeiling
	}
	if l.UValueStandard > 0 {
		s.Standard = l.UValueStandard
	}
	if l.UValueMinimum > 0 {
		s.Minimum = l.UValueMinimum
	}
	return s
}

func (e *Env) scopMax() float64 {
	if m := e.Config.Layout.SCOPMax; m > 0 {
		return m
	}
	return infographic.DefaultSCOPMax
}
