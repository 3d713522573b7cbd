// Package table draws simple data tables on a surface.Surface.
//
// Tables are built row by row, styled by merging table, header, alternate
// row, row and cell styles, and rendered at a fixed position. Rendering never
// breaks pages: rows that would cross the bottom limit are left out and
// reported to the caller.
package table

import "github.com/lvillar/hausdoc/surface"

// FontSpec defines font properties for cell text.
type FontSpec struct {
	Bold bool
	Size float64 // in points
}

// Padding defines spacing inside a cell.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// BorderStyle defines the appearance of cell borders.
type BorderStyle struct {
	Width float64
	Color surface.Color
}

// CellStyle defines the visual appearance of a cell.
type CellStyle struct {
	FillColor *surface.Color
	TextColor *surface.Color
	Font      *FontSpec
	Align     string // "L", "C", "R"
}

// AlternateStyle defines alternating row colors.
type AlternateStyle struct {
	Even CellStyle
	Odd  CellStyle
}

// TableStyle defines the overall appearance of a table.
type TableStyle struct {
	Border        *BorderStyle
	AlternateRows *AlternateStyle
	HeaderStyle   *CellStyle
	CellPadding   Padding
	CellFont      *FontSpec
	RowHeight     float64 // minimum row height
}

// RGB is a shorthand for a color pointer in style literals.
func RGB(hex string) *surface.Color {
	c := surface.Hex(hex)
	return &c
}
