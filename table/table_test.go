package table_test

import (
	"testing"

	"github.com/lvillar/hausdoc/surface"
	"github.com/lvillar/hausdoc/table"
)

func TestBasicTable(t *testing.T) {
	rec := surface.NewRecorder()
	rec.AddPage()

	tb := table.New(rec)
	tb.SetPosition(60, 100).SetWidth(475).SetColumnWidths(160, 0)
	tb.SetStyle(table.TableStyle{RowHeight: 22, CellPadding: table.UniformPadding(4)})

	h := tb.AddHeaderRow()
	h.AddCell("Merkmal")
	h.AddCell("Wert")

	r := tb.AddRow()
	r.AddCell("Bauherr")
	r.AddCell("Max Mustermann")

	next, dropped := tb.Render()
	if dropped != 0 {
		t.Errorf("dropped = %d", dropped)
	}
	if next != 100+2*22 {
		t.Errorf("next y = %v, want 144", next)
	}
	op := rec.FindText("Max Mustermann")
	if op == nil {
		t.Fatal("value cell not drawn")
	}
	if op.X != 60+160+4 {
		t.Errorf("second column x = %v, want 224", op.X)
	}
	if op.TextStyle.Width != 475-160-8 {
		t.Errorf("auto column width = %v", op.TextStyle.Width)
	}
}

func TestAlternatingRows(t *testing.T) {
	rec := surface.NewRecorder()
	rec.AddPage()

	tb := table.New(rec).SetPosition(0, 0).SetColumnWidths(100)
	tb.SetStyle(table.TableStyle{
		RowHeight: 20,
		AlternateRows: &table.AlternateStyle{
			Even: table.CellStyle{FillColor: table.RGB("#f5f5f5")},
		},
	})
	for i := 0; i < 4; i++ {
		tb.AddRow().AddCellf("Zeile %d", i)
	}
	tb.Render()

	rects := rec.Filter(surface.OpRect)
	if len(rects) != 2 {
		t.Fatalf("got %d filled rows, want 2", len(rects))
	}
	if rects[0].Y != 0 || rects[1].Y != 40 {
		t.Errorf("filled rows at %v and %v, want 0 and 40", rects[0].Y, rects[1].Y)
	}
}

func TestWrappedCellGrowsRow(t *testing.T) {
	rec := surface.NewRecorder()
	rec.AddPage()

	tb := table.New(rec).SetPosition(0, 0).SetColumnWidths(60, 0).SetWidth(120)
	tb.SetStyle(table.TableStyle{RowHeight: 10})
	r := tb.AddRow()
	r.AddCell("kurz")
	r.AddCell("ein deutlich längerer Text, der umbrechen muss")

	next, _ := tb.Render()
	one := (surface.TextStyle{Size: 10}).LineHeight()
	if next <= one {
		t.Errorf("row height %v did not grow for wrapped text", next)
	}
}

func TestMaxYDropsRows(t *testing.T) {
	rec := surface.NewRecorder()
	rec.AddPage()

	tb := table.New(rec).SetPosition(0, 700).SetColumnWidths(200).SetMaxY(760)
	tb.SetStyle(table.TableStyle{RowHeight: 22})
	for i := 0; i < 5; i++ {
		tb.AddRow().AddCellf("Zeile %d", i)
	}
	next, dropped := tb.Render()
	if dropped != 3 {
		t.Errorf("dropped = %d, want 3", dropped)
	}
	if next != 744 {
		t.Errorf("next = %v, want 744", next)
	}
	if rec.HasText("Zeile 2") {
		t.Error("row below the limit was drawn")
	}
}

func TestColspan(t *testing.T) {
	rec := surface.NewRecorder()
	rec.AddPage()

	tb := table.New(rec).SetPosition(0, 0).SetColumnWidths(50, 50, 50)
	tb.SetStyle(table.TableStyle{Border: &table.BorderStyle{Width: 0.5}})
	r := tb.AddRow()
	r.AddCell("breit").SetColspan(2)
	r.AddCell("rechts").SetAlign("R")
	tb.Render()

	rects := rec.Filter(surface.OpRect)
	if len(rects) != 2 || rects[0].W != 100 || rects[1].X != 100 {
		t.Errorf("unexpected cell rects: %+v", rects)
	}
	if op := rec.FindText("rechts"); op == nil || op.TextStyle.Align != surface.AlignRight {
		t.Error("cell alignment not applied")
	}
	if tb.Len() != 1 {
		t.Errorf("Len = %d", tb.Len())
	}
}
