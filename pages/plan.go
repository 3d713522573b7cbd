package pages

import (
	"strings"

	"github.com/lvillar/hausdoc/catalog"
	"github.com/lvillar/hausdoc/floorplan"
	"github.com/lvillar/hausdoc/submission"
	"github.com/lvillar/hausdoc/surface"
)

// legendSpace is kept free below the plan for the legend and disclaimer.
const legendSpace = 55.0

// FloorPlan draws the room planning page: the inner wall system, the room
// grid of every non-empty floor, scaled down if needed to stay on the page,
// and a legend. innerWall may be nil.
func (e *Env) FloorPlan(ctx Context, rooms submission.Rooms, innerWall *catalog.Variant) float64 {
	p := e.Palette
	y := ctx.Y
	if innerWall != nil {
		e.S.RoundedRect(MarginLeft, y, ContentWidth, 50, 6, surface.Fill(p.GoldLight))
		e.S.Rect(MarginLeft, y, 4, 50, surface.Fill(p.Gold))
		e.S.Text("Ihr Innenwandsystem:", 80, y+10, surface.TextStyle{Size: 9, Bold: true, Color: p.Primary})
		e.S.Text(innerWall.Name, 80, y+25, surface.TextStyle{Size: 10, Color: p.Text, Width: 190, MaxLines: 1})
		if info := innerWallInfo(innerWall); info != "" {
			e.S.Text(info, 280, y+27, surface.TextStyle{Size: 8, Color: p.TextMuted, Width: 245, MaxLines: 1})
		}
		y += 70
	}

	plan := floorplan.Fit(rooms.Floors(), y, e.bottom()-legendSpace, e.geometry())
	if plan.Scale < 1 {
		e.logf("floor plan scaled to %.0f%% to fit the page", plan.Scale*100)
	}
	y = floorplan.Render(e.S, p, plan, e.Log) + 5

	return e.legend(y)
}

func (e *Env) legend(y float64) float64 {
	p := e.Palette
	label := surface.TextStyle{Size: 8, Color: p.TextLight}
	e.S.Line(80, y+5, 110, y+5, surface.Stroke(p.Primary, 3))
	e.S.Text("Außenwände", 116, y, label)
	e.S.Line(200, y+5, 230, y+5, surface.Stroke(p.TextMuted, 1))
	e.S.Text("Innenwände", 236, y, label)
	y += 18
	h := e.S.Text("Raumgrößen sind Schätzwerte. Finale Planung erfolgt im persönlichen Gespräch.", 80, y,
		surface.TextStyle{Size: 8, Italic: true, Color: p.TextMuted, Width: 435})
	return y + h + 10
}

func innerWallInfo(v *catalog.Variant) string {
	var parts []string
	for _, k := range []string{"plasterThickness", "soundInsulation"} {
		if val, ok := v.Attributes.Get(k); ok {
			parts = append(parts, val)
		}
	}
	return strings.Join(parts, " | ")
}

func (e *Env) geometry() floorplan.Geometry {
	g := floorplan.DefaultGeometry()
	l := e.Config.Layout
	if l.FloorCellWidth > 0 {
		g.CellW = l.FloorCellWidth
	}
	if l.FloorCellHeight > 0 {
		g.CellH = l.FloorCellHeight
	}
	if l.FloorGap > 0 {
		g.Gap = l.FloorGap
	}
	return g
}
