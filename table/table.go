package table

import (
	"github.com/lvillar/hausdoc/surface"
)

// ColumnDef defines the properties of a table column.
type ColumnDef struct {
	Width    float64 // Fixed width. 0 means auto/fill.
	MinWidth float64 // Minimum width for auto columns.
	Align    string  // Default alignment for this column ("L", "C", "R").
}

// Table is a table builder bound to one surface.
type Table struct {
	s          surface.Surface
	columns    []ColumnDef
	rows       []*Row
	style      TableStyle
	x, y       float64
	tableWidth float64
	maxY       float64
}

var defaultFont = FontSpec{Size: 10}

// New creates a new Table drawing on s.
func New(s surface.Surface) *Table {
	return &Table{
		s:          s,
		x:          60,
		tableWidth: surface.PageWidth - 120,
		style: TableStyle{
			CellPadding: UniformPadding(4),
		},
	}
}

// SetColumns sets column definitions for the table.
func (t *Table) SetColumns(cols ...ColumnDef) *Table {
	t.columns = cols
	return t
}

// SetColumnWidths is a convenience method to set column widths directly.
// A width of 0 means the column will auto-fill remaining space.
func (t *Table) SetColumnWidths(widths ...float64) *Table {
	t.columns = make([]ColumnDef, len(widths))
	for i, w := range widths {
		t.columns[i] = ColumnDef{Width: w}
	}
	return t
}

// SetStyle sets the table-wide style.
func (t *Table) SetStyle(s TableStyle) *Table {
	t.style = s
	return t
}

// SetPosition sets the top-left corner of the table.
func (t *Table) SetPosition(x, y float64) *Table {
	t.x = x
	t.y = y
	return t
}

// SetWidth sets the total table width.
func (t *Table) SetWidth(w float64) *Table {
	t.tableWidth = w
	return t
}

// SetMaxY sets the bottom limit. Rows that would end below it are not drawn.
// 0 means no limit.
func (t *Table) SetMaxY(y float64) *Table {
	t.maxY = y
	return t
}

// AddRow adds a new data row to the table and returns it for chaining.
func (t *Table) AddRow() *Row {
	r := &Row{}
	t.rows = append(t.rows, r)
	return r
}

// AddHeaderRow adds a header row. Header rows are drawn before all data rows.
func (t *Table) AddHeaderRow() *Row {
	r := &Row{isHeader: true}
	insertIdx := 0
	for i, existing := range t.rows {
		if !existing.isHeader {
			insertIdx = i
			break
		}
		insertIdx = i + 1
	}
	t.rows = append(t.rows, nil)
	copy(t.rows[insertIdx+1:], t.rows[insertIdx:])
	t.rows[insertIdx] = r
	return r
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	n := 0
	for _, r := range t.rows {
		if !r.isHeader {
			n++
		}
	}
	return n
}

// Render draws the table and returns the y below its last drawn row and the
// number of data rows that did not fit above the bottom limit.
func (t *Table) Render() (nextY float64, dropped int) {
	widths := t.calculateWidths()
	y := t.y
	bodyIdx := 0
	for _, r := range t.rows {
		h := t.calculateRowHeight(r, widths)
		if t.maxY > 0 && y+h > t.maxY {
			if !r.isHeader {
				dropped++
			}
			continue
		}
		idx := -1
		if !r.isHeader {
			idx = bodyIdx
			bodyIdx++
		}
		t.renderRow(r, widths, y, h, idx)
		y += h
	}
	return y, dropped
}

// calculateWidths computes final column widths based on definitions and
// available space.
func (t *Table) calculateWidths() []float64 {
	numCols := len(t.columns)
	if numCols == 0 {
		for _, r := range t.rows {
			if len(r.cells) > numCols {
				numCols = len(r.cells)
			}
		}
		if numCols == 0 {
			return nil
		}
		t.columns = make([]ColumnDef, numCols)
	}

	widths := make([]float64, numCols)
	fixedTotal := 0.0
	autoCount := 0
	for i, col := range t.columns {
		if col.Width > 0 {
			widths[i] = col.Width
			fixedTotal += col.Width
		} else {
			autoCount++
		}
	}
	if autoCount > 0 {
		remaining := t.tableWidth - fixedTotal
		if remaining < 0 {
			remaining = 0
		}
		autoWidth := remaining / float64(autoCount)
		for i, col := range t.columns {
			if col.Width == 0 {
				w := autoWidth
				if col.MinWidth > 0 && w < col.MinWidth {
					w = col.MinWidth
				}
				widths[i] = w
			}
		}
	}
	return widths
}

// cellWidth returns the width of the cell starting at column i, including
// its colspan.
func cellWidth(cell *Cell, i int, widths []float64) float64 {
	w := widths[i]
	for j := 1; j < cell.colspan && i+j < len(widths); j++ {
		w += widths[i+j]
	}
	return w
}

func (t *Table) textStyle(style CellStyle, w float64) surface.TextStyle {
	font := defaultFont
	if style.Font != nil {
		font = *style.Font
	}
	ts := surface.TextStyle{Size: font.Size, Bold: font.Bold, Width: w}
	if style.TextColor != nil {
		ts.Color = *style.TextColor
	}
	switch style.Align {
	case "C":
		ts.Align = surface.AlignCenter
	case "R":
		ts.Align = surface.AlignRight
	}
	return ts
}

// calculateRowHeight computes the height needed for a row based on cell
// content.
func (t *Table) calculateRowHeight(r *Row, widths []float64) float64 {
	maxH := t.style.RowHeight
	if r.minH > maxH {
		maxH = r.minH
	}
	padding := t.style.CellPadding
	col := 0
	for _, cell := range r.cells {
		if col >= len(widths) {
			break
		}
		contentW := cellWidth(cell, col, widths) - padding.Left - padding.Right
		if contentW < 1 {
			contentW = 1
		}
		style := t.resolveCellStyle(cell, r, 0, r.isHeader)
		h := t.s.TextHeight(cell.text, t.textStyle(style, contentW)) + padding.Top + padding.Bottom
		if h > maxH {
			maxH = h
		}
		col += cell.colspan
	}
	return maxH
}

func (t *Table) renderRow(r *Row, widths []float64, y, rowH float64, bodyIdx int) {
	padding := t.style.CellPadding
	x := t.x
	col := 0
	for _, cell := range r.cells {
		if col >= len(widths) {
			break
		}
		cellW := cellWidth(cell, col, widths)
		style := t.resolveCellStyle(cell, r, bodyIdx, r.isHeader)

		var paint surface.Style
		if style.FillColor != nil {
			paint.Fill = style.FillColor
		}
		if b := t.style.Border; b != nil {
			paint = paint.WithStroke(b.Color, b.Width)
		}
		if paint.Fill != nil || paint.Stroke != nil {
			t.s.Rect(x, y, cellW, rowH, paint)
		}

		if style.Align == "" && col < len(t.columns) {
			style.Align = t.columns[col].Align
		}
		ts := t.textStyle(style, cellW-padding.Left-padding.Right)
		if cell.text != "" {
			t.s.Text(cell.text, x+padding.Left, y+padding.Top, ts)
		}

		x += cellW
		col += cell.colspan
	}
}

// resolveCellStyle determines the effective style for a cell by merging
// table, header, alternate row, row and cell-level styles.
func (t *Table) resolveCellStyle(cell *Cell, row *Row, bodyIdx int, isHeader bool) CellStyle {
	var result CellStyle
	if t.style.CellFont != nil {
		result.Font = t.style.CellFont
	}
	if isHeader && t.style.HeaderStyle != nil {
		mergeStyle(&result, t.style.HeaderStyle)
	}
	if !isHeader && t.style.AlternateRows != nil && bodyIdx >= 0 {
		if bodyIdx%2 == 0 {
			mergeStyle(&result, &t.style.AlternateRows.Even)
		} else {
			mergeStyle(&result, &t.style.AlternateRows.Odd)
		}
	}
	if row.style != nil {
		mergeStyle(&result, row.style)
	}
	if cell.style != nil {
		mergeStyle(&result, cell.style)
	}
	return result
}

// mergeStyle copies non-nil fields from src to dst.
func mergeStyle(dst, src *CellStyle) {
	if src.FillColor != nil {
		dst.FillColor = src.FillColor
	}
	if src.TextColor != nil {
		dst.TextColor = src.TextColor
	}
	if src.Font != nil {
		dst.Font = src.Font
	}
	if src.Align != "" {
		dst.Align = src.Align
	}
}
