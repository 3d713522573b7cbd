package pages

import (
	"strconv"
	"strings"

	"github.com/lvillar/hausdoc/catalog"
	"github.com/lvillar/hausdoc/submission"
	"github.com/lvillar/hausdoc/surface"
	"github.com/lvillar/hausdoc/table"
)

// Selection holds the resolved variant of every category the submission
// references. Categories whose variant could not be resolved are absent.
type Selection map[catalog.Category]*catalog.Variant

// Name returns the display name of the variant chosen for c, or "-".
func (s Selection) Name(c catalog.Category) string {
	if v, ok := s[c]; ok && v != nil && v.Name != "" {
		return v.Name
	}
	return "-"
}

// Summary draws the executive summary: the key facts of the customer, one
// line per selected component with its headline attribute, and the call to
// action from the "summary" template.
func (e *Env) Summary(ctx Context, sub *submission.Submission, sel Selection) (float64, error) {
	y := e.sectionTitle("Ihre Hausdaten", ctx.Y)
	y = e.factsTable(sub, sel, y) + 20

	y = e.sectionTitle("Gewählte Komponenten", y)
	y = e.componentsTable(sub, sel, y) + 20

	ctx.Y = y
	return e.Static(ctx, "summary")
}

func (e *Env) sectionTitle(text string, y float64) float64 {
	h := e.S.Text(text, MarginLeft, y, surface.TextStyle{Size: 14, Bold: true, Color: e.Palette.Primary})
	return y + h + 8
}

func (e *Env) newTable(y float64) *table.Table {
	t := table.New(e.S).SetPosition(MarginLeft, y).SetWidth(ContentWidth).SetMaxY(e.bottom())
	t.SetStyle(table.TableStyle{
		RowHeight:   22,
		CellPadding: table.Padding{Top: 6, Left: 10, Right: 10, Bottom: 4},
		CellFont:    &table.FontSpec{Size: 10},
		AlternateRows: &table.AlternateStyle{
			Even: table.CellStyle{FillColor: &e.Palette.GrayLight},
		},
	})
	return t
}

func (e *Env) factsTable(sub *submission.Submission, sel Selection, y float64) float64 {
	people := "-"
	if sub.HouseholdSize > 0 {
		people = strconv.Itoa(int(sub.HouseholdSize)) + " Personen"
	}
	name := sub.FullName()
	if name == "" {
		name = "-"
	}
	facts := [][2]string{
		{"Bauherr", name},
		{"Haustyp", sel.Name(catalog.HouseType)},
		{"Energiestandard", sub.EnergyLabel()},
		{"Personenzahl", people},
		{"Grundstück", sub.LandLabel()},
	}
	if w := strings.TrimSpace(string(sub.SelfWork)); w != "" {
		facts = append(facts, [2]string{"Eigenleistungen", w})
	}

	t := e.newTable(y).SetColumnWidths(160, 315)
	primary := e.Palette.Primary.String()
	for _, f := range facts {
		row := t.AddRow()
		row.AddCell(f[0]).SetFont(true, 10).SetTextColor(primary)
		row.AddCell(f[1]).SetTextColor(e.Palette.Text.String())
	}
	next, dropped := t.Render()
	if dropped > 0 {
		e.logf("summary: %d fact rows did not fit", dropped)
	}
	return next
}

func (e *Env) componentsTable(sub *submission.Submission, sel Selection, y float64) float64 {
	t := e.newTable(y).SetColumnWidths(110, 230, 135)
	gold := e.Palette.GoldDark.String()
	for _, c := range catalog.Categories() {
		d := c.Descriptor()
		if !d.InSummary {
			continue
		}
		if c == catalog.Ventilation && !sub.WantsVentilation() {
			continue
		}
		v, ok := sel[c]
		if !ok || v == nil {
			continue
		}
		value, _ := v.Attributes.Get(d.SummaryKey)
		row := t.AddRow()
		row.AddCell(d.Label).SetFont(true, 10).SetTextColor(e.Palette.Primary.String())
		row.AddCell(v.Name).SetTextColor(e.Palette.Text.String())
		row.AddCell(value).SetFont(true, 10).SetTextColor(gold).SetAlign("R")
	}
	if t.Len() == 0 {
		h := e.S.Text("Keine Komponenten ausgewählt.", MarginLeft+10, y, surface.TextStyle{Size: 10, Color: e.Palette.TextMuted})
		return y + h
	}
	next, dropped := t.Render()
	if dropped > 0 {
		e.logf("summary: %d component rows did not fit", dropped)
	}
	return next
}
