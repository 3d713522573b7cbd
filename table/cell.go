package table

import "fmt"

// Cell represents a single cell in a table row.
type Cell struct {
	text    string
	colspan int
	style   *CellStyle
}

// Text returns the cell text.
func (c *Cell) Text() string { return c.text }

// SetColspan sets the number of columns this cell spans.
func (c *Cell) SetColspan(n int) *Cell {
	if n > 0 {
		c.colspan = n
	}
	return c
}

// SetStyle sets the style for this cell, overriding table and row defaults.
func (c *Cell) SetStyle(s CellStyle) *Cell {
	c.style = &s
	return c
}

// SetAlign sets the horizontal alignment for this cell.
func (c *Cell) SetAlign(align string) *Cell {
	if c.style == nil {
		c.style = &CellStyle{}
	}
	c.style.Align = align
	return c
}

// SetTextColor sets the text color for this cell.
func (c *Cell) SetTextColor(hex string) *Cell {
	if c.style == nil {
		c.style = &CellStyle{}
	}
	c.style.TextColor = RGB(hex)
	return c
}

// SetFont sets the font for this cell.
func (c *Cell) SetFont(bold bool, size float64) *Cell {
	if c.style == nil {
		c.style = &CellStyle{}
	}
	c.style.Font = &FontSpec{Bold: bold, Size: size}
	return c
}

// Row represents a single row in a table.
type Row struct {
	cells    []*Cell
	style    *CellStyle
	isHeader bool
	minH     float64
}

// Cells returns the cells of the row.
func (r *Row) Cells() []*Cell { return r.cells }

// AddCell adds a text cell to the row and returns the cell for chaining.
func (r *Row) AddCell(text string) *Cell {
	c := &Cell{text: text, colspan: 1}
	r.cells = append(r.cells, c)
	return c
}

// AddCellf adds a formatted text cell to the row.
func (r *Row) AddCellf(format string, args ...any) *Cell {
	return r.AddCell(fmt.Sprintf(format, args...))
}

// SetStyle sets the style for all cells in this row.
func (r *Row) SetStyle(s CellStyle) *Row {
	r.style = &s
	return r
}

// SetMinHeight sets the minimum height for this row.
func (r *Row) SetMinHeight(h float64) *Row {
	r.minH = h
	return r
}
