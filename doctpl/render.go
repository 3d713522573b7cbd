package doctpl

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lvillar/hausdoc/surface"
	"github.com/lvillar/hausdoc/table"
)

// Parse decodes a JSON template and checks that every block type is known.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("doctpl: parsing template: %w", err)
	}
	for _, p := range doc.Pages {
		for i, b := range p.Blocks {
			if !known(b.Type) {
				return nil, fmt.Errorf("doctpl: page %q block %d: unknown block type %q", p.Key, i+1, b.Type)
			}
		}
	}
	return &doc, nil
}

func known(t string) bool {
	switch t {
	case TypeHeading, TypeParagraph, TypeNote, TypeChecks, TypeEntries, TypeChecklist,
		TypeSteps, TypeBullets, TypeCallout, TypeCards, TypeTable, TypeSpacer:
		return true
	}
	return false
}

// Renderer draws blocks into a content column. Boxes span the full column;
// text is inset by 20pt on both sides.
//
// With a positive MaxY a block that would reach below it is not drawn;
// OnSkip, if set, is told about it and rendering continues with the next
// block.
type Renderer struct {
	S       surface.Surface
	Palette Palette
	X       float64
	Width   float64
	Vars    map[string]string
	MaxY    float64
	OnSkip  func(index int, b Block)
}

// NewRenderer returns a Renderer for the standard 60..535 content column.
func NewRenderer(s surface.Surface, vars map[string]string) *Renderer {
	return &Renderer{S: s, Palette: DefaultPalette(), X: 60, Width: 475, Vars: vars}
}

const inset = 20

func (r *Renderer) textX() float64 { return r.X + inset }
func (r *Renderer) textW() float64 { return r.Width - 2*inset }

// expand replaces {name} placeholders from r.Vars.
func (r *Renderer) expand(s string) string {
	if len(r.Vars) == 0 || !strings.Contains(s, "{") {
		return s
	}
	pairs := make([]string, 0, 2*len(r.Vars))
	for k, v := range r.Vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// Render draws blocks from y downwards and returns the y below the last one.
func (r *Renderer) Render(blocks []Block, y float64) (float64, error) {
	for i, b := range blocks {
		if r.MaxY > 0 && y+r.Height(b) > r.MaxY {
			if r.OnSkip != nil {
				r.OnSkip(i, b)
			}
			continue
		}
		next, err := r.renderBlock(b, y)
		if err != nil {
			return y, fmt.Errorf("doctpl: block %d: %w", i+1, err)
		}
		y = next
	}
	return y, nil
}

func gap(b Block, def float64) float64 {
	if b.Gap != 0 {
		return b.Gap
	}
	return def
}

func size(b Block, def float64) float64 {
	if b.Size > 0 {
		return b.Size
	}
	return def
}

func (r *Renderer) renderBlock(b Block, y float64) (float64, error) {
	switch b.Type {
	case TypeHeading:
		return r.heading(b, y), nil
	case TypeParagraph:
		return r.paragraph(b, y, size(b, 10), r.Palette.Text), nil
	case TypeNote:
		return r.paragraph(b, y, size(b, 9), r.Palette.TextMuted), nil
	case TypeChecks:
		return r.checks(b, y), nil
	case TypeEntries:
		return r.entries(b, y), nil
	case TypeChecklist:
		return r.checklist(b, y), nil
	case TypeSteps:
		return r.steps(b, y), nil
	case TypeBullets:
		return r.bullets(b, y), nil
	case TypeCallout:
		return r.callout(b, y), nil
	case TypeCards:
		return r.cards(b, y), nil
	case TypeTable:
		return r.table(b, y), nil
	case TypeSpacer:
		if b.Height > 0 {
			return y + b.Height, nil
		}
		return y + 10, nil
	}
	return y, fmt.Errorf("unknown block type %q", b.Type)
}

func (r *Renderer) heading(b Block, y float64) float64 {
	ts := surface.TextStyle{Size: size(b, 13), Bold: true, Color: r.Palette.Primary, Width: r.textW()}
	h := r.S.Text(r.expand(b.Text), r.textX(), y, ts)
	return y + h + gap(b, 12)
}

func (r *Renderer) paragraph(b Block, y, sz float64, c surface.Color) float64 {
	ts := surface.TextStyle{Size: sz, Color: c, Width: r.textW(), LineGap: 2}
	h := r.S.Text(r.expand(b.Text), r.textX(), y, ts)
	return y + h + gap(b, 14)
}

func (r *Renderer) checks(b Block, y float64) float64 {
	x := r.textX()
	p := r.Palette
	for _, it := range b.Items {
		r.S.Circle(x+10, y+7, 8, surface.Fill(p.Gold))
		surface.Check(r.S, x+4, y+1, 12, p.White)
		r.S.Text(r.expand(it.Title), x+28, y, surface.TextStyle{Size: 10, Bold: true, Color: p.Primary})
		h := r.S.Text(r.expand(it.Text), x+28, y+13,
			surface.TextStyle{Size: 9, Color: p.TextLight, Width: r.textW() - 28, LineGap: 1})
		y += math.Max(42, 13+h+12)
	}
	return y + gap(b, 10)
}

func (r *Renderer) entries(b Block, y float64) float64 {
	x := r.textX()
	p := r.Palette
	for _, it := range b.Items {
		r.S.Text(r.expand(it.Title), x, y, surface.TextStyle{Size: 10, Bold: true, Color: p.Primary})
		h := r.S.Text(r.expand(it.Text), x, y+13, surface.TextStyle{Size: 9, Color: p.Text, Width: r.textW()})
		y += math.Max(38, 13+h+12)
	}
	return y + gap(b, 10)
}

func (r *Renderer) checklist(b Block, y float64) float64 {
	x := r.textX()
	p := r.Palette
	for _, it := range b.Items {
		r.S.Rect(x, y, 10, 10, surface.Stroke(p.Gold, 1.5))
		r.S.Text(r.expand(it.Title)+":", x+15, y, surface.TextStyle{Size: 9, Bold: true, Color: p.Primary, Width: 100})
		h := r.S.Text(r.expand(it.Text), x+120, y,
			surface.TextStyle{Size: 9, Color: p.Text, Width: r.textW() - 120, LineGap: 1})
		y += math.Max(22, h+8)
	}
	return y + gap(b, 10)
}

func (r *Renderer) steps(b Block, y float64) float64 {
	ts := surface.TextStyle{Size: size(b, 10), Color: r.Palette.TextLight, Width: r.textW() - 10}
	for i, it := range b.Items {
		h := r.S.Text(strconv.Itoa(i+1)+". "+r.expand(it.Text), r.textX()+10, y, ts)
		y += math.Max(18, h+4)
	}
	return y + gap(b, 10)
}

func (r *Renderer) bullets(b Block, y float64) float64 {
	return r.bulletList(b.Items, r.textX()+10, y, r.textW()-20, size(b, 10), r.Palette.Text) + gap(b, 10)
}

func (r *Renderer) bulletList(items []Item, x, y, w, sz float64, c surface.Color) float64 {
	for _, it := range items {
		r.S.Text("•", x, y, surface.TextStyle{Size: sz, Color: r.Palette.Gold})
		h := r.S.Text(r.expand(it.Text), x+10, y, surface.TextStyle{Size: sz, Color: c, Width: w})
		y += math.Max(sz*1.3, h+1)
	}
	return y
}

// tone returns fill, accent bar, title and body colors of a callout. The
// accent bar is drawn on the left for gold and warning boxes and on the right
// for primary boxes.
func (r *Renderer) tone(t string) (fill surface.Color, bar *surface.Color, title, body surface.Color, barRight bool) {
	p := r.Palette
	switch t {
	case "primary":
		return p.Primary, &p.Gold, p.White, p.White, true
	case "dark":
		return p.PrimaryDark, nil, p.Gold, p.White, false
	case "warning":
		return p.ErrorLight, &p.Error, p.Error, p.Text, false
	}
	return p.GoldLight, &p.Gold, p.Primary, p.Text, false
}

func (r *Renderer) callout(b Block, y float64) float64 {
	fill, bar, titleC, bodyC, barRight := r.tone(b.Tone)
	tx, tw := r.textX(), r.textW()
	titleTS := surface.TextStyle{Size: size(b, 11), Bold: true, Color: titleC, Width: tw}
	bodyTS := surface.TextStyle{Size: 9, Color: bodyC, Width: tw, LineGap: 1}

	title, text := r.expand(b.Title), r.expand(b.Text)
	h := 12.0
	if title != "" {
		h += r.S.TextHeight(title, titleTS) + 4
	}
	if text != "" {
		h += r.S.TextHeight(text, bodyTS) + 4
	}
	for _, it := range b.Items {
		h += math.Max(9*1.3, r.S.TextHeight(r.expand(it.Text), surface.TextStyle{Size: 9, Width: tw - 20})+1)
	}
	h = math.Max(h+8, b.Height)

	r.S.RoundedRect(r.X, y, r.Width, h, 8, surface.Fill(fill))
	if bar != nil {
		if barRight {
			r.S.Rect(r.X+r.Width-9, y+10, 4, h-20, surface.Fill(*bar))
		} else {
			r.S.Rect(r.X, y, 4, h, surface.Fill(*bar))
		}
	}

	cy := y + 12
	if title != "" {
		cy += r.S.Text(title, tx, cy, titleTS) + 4
	}
	if text != "" {
		cy += r.S.Text(text, tx, cy, bodyTS) + 4
	}
	if len(b.Items) > 0 {
		r.bulletList(b.Items, tx+10, cy, tw-20, 9, bodyC)
	}
	return y + h + gap(b, 15)
}

func (r *Renderer) cards(b Block, y float64) float64 {
	perRow := b.Columns
	if perRow <= 0 {
		perRow = 3
	}
	const (
		cardH = 115.0
		gapX  = 18.0
	)
	startX := r.X + 10
	cardW := (r.Width - 20 - gapX*float64(perRow-1)) / float64(perRow)
	p := r.Palette
	for i, it := range b.Items {
		row, col := i/perRow, i%perRow
		cx := startX + float64(col)*(cardW+gapX)
		cy := y + float64(row)*(cardH+gapX)

		r.S.RoundedRect(cx, cy, cardW, cardH, 8, surface.Fill(surface.Hex("#f9f9f9")).WithStroke(p.Gold, 1))
		r.S.Circle(cx+15, cy+15, 12, surface.Fill(p.Gold))
		r.S.Text(strconv.Itoa(i+1), cx+3, cy+9,
			surface.TextStyle{Size: 10, Bold: true, Color: p.White, Width: 24, Align: surface.AlignCenter})
		r.S.Text(r.expand(it.Title), cx+8, cy+45,
			surface.TextStyle{Size: 10, Bold: true, Color: p.Primary, Width: cardW - 16, Align: surface.AlignCenter})
		r.S.Text(r.expand(it.Text), cx+8, cy+65,
			surface.TextStyle{Size: 7.5, Color: p.TextLight, Width: cardW - 16, Align: surface.AlignCenter, LineGap: 0.8, MaxLines: 4})
	}
	rows := (len(b.Items) + perRow - 1) / perRow
	return y + float64(rows)*(cardH+gapX) + gap(b, 0)
}

func (r *Renderer) table(b Block, y float64) float64 {
	t := table.New(r.S).SetPosition(r.X, y).SetWidth(r.Width)
	if len(b.Widths) > 0 {
		t.SetColumnWidths(b.Widths...)
	}
	t.SetStyle(table.TableStyle{
		RowHeight:   22,
		CellPadding: table.Padding{Top: 6, Left: 10, Right: 10, Bottom: 4},
		CellFont:    &table.FontSpec{Size: size(b, 10)},
		AlternateRows: &table.AlternateStyle{
			Even: table.CellStyle{FillColor: &r.Palette.GrayLight},
		},
	})
	for _, cells := range b.Rows {
		row := t.AddRow()
		for _, c := range cells {
			row.AddCell(r.expand(c)).SetTextColor(r.Palette.Text.String())
		}
	}
	next, _ := t.Render()
	return next + gap(b, 15)
}
