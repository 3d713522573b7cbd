// Package floorplan lays out the rooms of each floor as a grid of equal cells
// and draws them as a schematic plan.
//
// Every cell gets a thick perimeter, as if all rooms had exterior walls; a
// thin stroke is added on an edge shared with a right-hand or lower
// neighbour to suggest an interior partition. There is no wall adjacency
// model beyond that.
package floorplan

import (
	"fmt"
	"math"

	"github.com/lvillar/hausdoc/submission"
)

// Geometry holds the grid dimensions in points.
type Geometry struct {
	CellW     float64
	CellH     float64
	Gap       float64
	StartX    float64
	PerRow    int     // maximum cells per row
	LabelH    float64 // space between a floor label and its first row
	FloorGap  float64 // extra space between floors
	AreaScale float64 // m² per pt² of an unscaled cell
	Scale     float64 // uniform scale applied to all lengths; 0 means 1
}

// DefaultGeometry is three 140x100 cells per row with a 15pt gap, starting at
// x=80. A default cell reads as 42 m².
func DefaultGeometry() Geometry {
	return Geometry{
		CellW:     140,
		CellH:     100,
		Gap:       15,
		StartX:    80,
		PerRow:    3,
		LabelH:    25,
		FloorGap:  40,
		AreaScale: 0.003,
		Scale:     1,
	}
}

func (g Geometry) scale() float64 {
	if g.Scale <= 0 {
		return 1
	}
	return g.Scale
}

// Cell is one placed room.
type Cell struct {
	Index      int // position in the floor's room list
	Name       string
	Details    string
	X, Y, W, H float64
	Row, Col   int
	RightWall  bool // thin stroke on the right edge
	BottomWall bool // thin stroke on the bottom edge
	Area       int  // approximate m², for display only
}

// Floor is the layout of one floor.
type Floor struct {
	Floor   submission.Floor
	Label   string
	LabelY  float64
	Cells   []Cell
	Skipped []int // indexes of rooms with non-finite coordinates
	Bottom  float64
}

// Plan is the layout of all floors that have rooms.
type Plan struct {
	Floors []Floor
	Top    float64
	Bottom float64
	Scale  float64
}

// Layout places the rooms of floors starting at y=top. Floors without rooms
// are dropped before layout. A room whose computed position is not finite is
// recorded in Skipped and left out; its siblings are still placed.
func Layout(floors []submission.FloorRooms, top float64, g Geometry) Plan {
	k := g.scale()
	perRowMax := g.PerRow
	if perRowMax <= 0 {
		perRowMax = 3
	}
	cw, ch, gap := g.CellW*k, g.CellH*k, g.Gap*k
	area := int(math.Round(g.CellW * g.CellH * g.AreaScale))

	plan := Plan{Top: top, Scale: k}
	y := top
	for _, fr := range floors {
		n := len(fr.Rooms)
		if n == 0 {
			continue
		}
		if len(plan.Floors) > 0 {
			y += g.FloorGap * k
		}
		fl := Floor{Floor: fr.Floor, Label: fr.Floor.Name(), LabelY: y}
		y += g.LabelH * k

		perRow := min(perRowMax, n)
		for idx, room := range fr.Rooms {
			row, col := idx/perRow, idx%perRow
			x := g.StartX + float64(col)*(cw+gap)
			cy := y + float64(row)*(ch+gap)
			if !finite(x) || !finite(cy) || !finite(x+cw) || !finite(cy+ch) {
				fl.Skipped = append(fl.Skipped, idx)
				continue
			}
			name := room.Name
			if name == "" {
				name = fmt.Sprintf("Raum %d", idx+1)
			}
			fl.Cells = append(fl.Cells, Cell{
				Index:      idx,
				Name:       name,
				Details:    room.Details,
				X:          x,
				Y:          cy,
				W:          cw,
				H:          ch,
				Row:        row,
				Col:        col,
				RightWall:  col < perRow-1 && idx+1 < n,
				BottomWall: idx+perRow < n,
				Area:       area,
			})
		}
		rows := (n + perRow - 1) / perRow
		y += float64(rows) * (ch + gap)
		fl.Bottom = y
		plan.Floors = append(plan.Floors, fl)
	}
	plan.Bottom = y
	return plan
}

// Fit lays out floors like Layout and, if the plan would end below
// maxBottom, shrinks every length uniformly so that it ends there.
func Fit(floors []submission.FloorRooms, top, maxBottom float64, g Geometry) Plan {
	plan := Layout(floors, top, g)
	if maxBottom <= top || !finite(plan.Bottom) || plan.Bottom <= maxBottom {
		return plan
	}
	g.Scale = g.scale() * (maxBottom - top) / (plan.Bottom - top)
	return Layout(floors, top, g)
}

// Rooms returns the number of placed cells across all floors.
func (p Plan) Rooms() int {
	n := 0
	for _, f := range p.Floors {
		n += len(f.Cells)
	}
	return n
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
