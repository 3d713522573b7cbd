package floorplan

import (
	"bytes"
	"log"
	"math"
	"strings"
	"testing"

	"github.com/lvillar/hausdoc/doctpl"
	"github.com/lvillar/hausdoc/submission"
	"github.com/lvillar/hausdoc/surface"
)

func rooms(names ...string) []submission.Room {
	out := make([]submission.Room, len(names))
	for i, n := range names {
		out[i] = submission.Room{Name: n}
	}
	return out
}

func TestFourRoomsGrid(t *testing.T) {
	floors := []submission.FloorRooms{{Floor: submission.Ground, Rooms: rooms("A", "B", "C", "D")}}
	plan := Layout(floors, 100, DefaultGeometry())

	if len(plan.Floors) != 1 {
		t.Fatalf("got %d floors", len(plan.Floors))
	}
	cells := plan.Floors[0].Cells
	if len(cells) != 4 {
		t.Fatalf("got %d cells", len(cells))
	}
	want := []struct {
		row, col      int
		right, bottom bool
	}{
		{0, 0, true, true},   // A: shares B on the right, D below
		{0, 1, true, false},  // B: shares C on the right
		{0, 2, false, false}, // C: end of row
		{1, 0, false, false}, // D: alone in row two
	}
	for i, w := range want {
		c := cells[i]
		if c.Row != w.row || c.Col != w.col || c.RightWall != w.right || c.BottomWall != w.bottom {
			t.Errorf("%s: row %d col %d right %v bottom %v, want %+v", c.Name, c.Row, c.Col, c.RightWall, c.BottomWall, w)
		}
	}
	if cells[1].X != 80+155 || cells[3].Y != 125+115 {
		t.Errorf("B.x = %v, D.y = %v", cells[1].X, cells[3].Y)
	}
	if plan.Bottom != 125+2*115 {
		t.Errorf("bottom = %v", plan.Bottom)
	}
	if cells[0].Area != 42 {
		t.Errorf("area = %d, want 42", cells[0].Area)
	}
}

func TestFourRoomsStrokes(t *testing.T) {
	floors := []submission.FloorRooms{{Floor: submission.Ground, Rooms: rooms("A", "B", "C", "D")}}
	plan := Layout(floors, 100, DefaultGeometry())
	rec := surface.NewRecorder()
	rec.AddPage()
	Render(rec, doctpl.DefaultPalette(), plan, nil)

	if n := len(rec.Filter(surface.OpRect)); n != 4 {
		t.Errorf("got %d thick perimeters, want 4", n)
	}
	lines := rec.Filter(surface.OpLine)
	if len(lines) != 3 {
		t.Fatalf("got %d thin strokes, want 3 (A|B, B|C, A/D)", len(lines))
	}
	// A|B vertical at x=220, B|C at x=375, A/D horizontal at y=225.
	if lines[0].X != 220 || lines[0].X2 != 220 {
		t.Errorf("A|B stroke = %+v", lines[0])
	}
	if lines[1].Y != 225 || lines[1].Y2 != 225 {
		t.Errorf("A/D stroke = %+v", lines[1])
	}
	if lines[2].X != 375 {
		t.Errorf("B|C stroke = %+v", lines[2])
	}
}

func TestSingleRowStrokes(t *testing.T) {
	plan := Layout([]submission.FloorRooms{{Rooms: rooms("A", "B")}}, 0, DefaultGeometry())
	cells := plan.Floors[0].Cells
	if !cells[0].RightWall || cells[1].RightWall || cells[0].BottomWall {
		t.Errorf("unexpected walls: %+v", cells)
	}
}

func TestEmptyFloorsDropped(t *testing.T) {
	floors := []submission.FloorRooms{
		{Floor: submission.Ground, Rooms: rooms("Wohnen")},
		{Floor: submission.Upper},
		{Floor: submission.Basement, Rooms: rooms("", "Keller")},
	}
	plan := Layout(floors, 100, DefaultGeometry())
	if len(plan.Floors) != 2 {
		t.Fatalf("got %d floors, want 2", len(plan.Floors))
	}
	second := plan.Floors[1]
	if second.Label != "Untergeschoss" {
		t.Errorf("label = %q", second.Label)
	}
	// 100 + 25 + 115 for the ground floor, then the 40pt floor gap.
	if second.LabelY != 280 {
		t.Errorf("second floor label at %v, want 280", second.LabelY)
	}
	if second.Cells[0].Name != "Raum 1" {
		t.Errorf("fallback name = %q", second.Cells[0].Name)
	}
	if Layout(nil, 100, DefaultGeometry()).Rooms() != 0 {
		t.Error("no floors must yield no rooms")
	}
}

func TestNonFiniteRoomsSkipped(t *testing.T) {
	g := DefaultGeometry()
	g.CellH = math.MaxFloat64 * 0.4
	names := rooms("1", "2", "3", "4", "5", "6", "7")
	plan := Layout([]submission.FloorRooms{{Floor: submission.Ground, Rooms: names}}, 100, g)

	fl := plan.Floors[0]
	if len(fl.Cells) != 6 {
		t.Errorf("placed %d rooms, want 6", len(fl.Cells))
	}
	if len(fl.Skipped) != 1 || fl.Skipped[0] != 6 {
		t.Errorf("skipped = %v, want [6]", fl.Skipped)
	}

	var buf bytes.Buffer
	rec := surface.NewRecorder()
	rec.AddPage()
	Render(rec, doctpl.DefaultPalette(), plan, log.New(&buf, "", 0))
	if n := len(rec.Filter(surface.OpRect)); n != 6 {
		t.Errorf("drew %d rooms, want 6", n)
	}
	if !strings.Contains(buf.String(), "room 7 skipped") {
		t.Errorf("log = %q", buf.String())
	}
}

func TestFitScalesDown(t *testing.T) {
	floors := []submission.FloorRooms{
		{Floor: submission.Ground, Rooms: rooms("1", "2", "3", "4", "5", "6", "7", "8", "9")},
		{Floor: submission.Upper, Rooms: rooms("1", "2", "3", "4", "5", "6")},
	}
	full := Layout(floors, 180, DefaultGeometry())
	if full.Bottom <= 700 {
		t.Fatalf("test setup: plan ends at %v", full.Bottom)
	}
	plan := Fit(floors, 180, 700, DefaultGeometry())
	if math.Abs(plan.Bottom-700) > 1e-6 {
		t.Errorf("fitted bottom = %v, want 700", plan.Bottom)
	}
	if plan.Scale >= 1 || plan.Rooms() != 15 {
		t.Errorf("scale %v, rooms %d", plan.Scale, plan.Rooms())
	}
	c := plan.Floors[0].Cells[0]
	if math.Abs(c.W/c.H-1.4) > 1e-9 {
		t.Errorf("aspect ratio changed: %v x %v", c.W, c.H)
	}
	if c.Area != 42 {
		t.Errorf("area should not shrink with the drawing, got %d", c.Area)
	}

	small := Fit(floors[:1], 100, 800, DefaultGeometry())
	if small.Scale != 1 {
		t.Errorf("plan that fits was scaled by %v", small.Scale)
	}
}

func TestRenderDetails(t *testing.T) {
	floors := []submission.FloorRooms{{Floor: submission.Ground, Rooms: []submission.Room{
		{Name: "Wohnzimmer", Details: "Offen zur Küche mit großer Fensterfront nach Süden"},
		{Name: "WC", Details: "   "},
	}}}
	rec := surface.NewRecorder()
	rec.AddPage()
	Render(rec, doctpl.DefaultPalette(), Layout(floors, 100, DefaultGeometry()), nil)
	if !rec.HasText("Offen zur Küche") {
		t.Error("details missing")
	}
	texts := rec.Filter(surface.OpText)
	// Floor label, two names, one details block, two area labels.
	if len(texts) != 6 {
		t.Errorf("got %d text ops, want 6", len(texts))
	}
	if !rec.HasText("42 m²") {
		t.Error("area label missing")
	}
}
