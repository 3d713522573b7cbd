package table_test

import (
	"bytes"
	"fmt"

	"github.com/lvillar/hausdoc/surface"
	"github.com/lvillar/hausdoc/table"
)

// ExampleTable draws a key facts table with alternating row colors.
func ExampleTable() {
	pdf := surface.NewPDF(0)
	pdf.AddPage()

	tbl := table.New(pdf)
	tbl.SetPosition(60, 100).SetWidth(475).SetColumnWidths(160, 0)
	tbl.SetStyle(table.TableStyle{
		RowHeight:   22,
		CellPadding: table.Padding{Top: 6, Left: 10, Right: 10},
		AlternateRows: &table.AlternateStyle{
			Even: table.CellStyle{FillColor: table.RGB("#f5f5f5")},
		},
	})

	facts := [][2]string{
		{"Bauherr", "Max Mustermann"},
		{"Energiestandard", "KfW 40"},
		{"Personenzahl", "4 Personen"},
	}
	for _, f := range facts {
		row := tbl.AddRow()
		row.AddCell(f[0]).SetTextColor("#1d1d1b")
		row.AddCell(f[1]).SetTextColor("#333333")
	}

	next, _ := tbl.Render()

	var buf bytes.Buffer
	err := pdf.Output(&buf)
	fmt.Println(err == nil, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), next)
	// Output:
	// true true 166
}
