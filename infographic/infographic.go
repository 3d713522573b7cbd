// Package infographic draws the charts of the component pages: a U-value bar
// chart against fixed reference values and a semicircular SCOP gauge.
//
// Both renderers take the raw catalog display string, parse it with the
// locale package and return the next free y so the caller can continue its
// layout. A value that cannot be parsed is drawn off-scale, clamped to the
// top of the chart.
package infographic

import (
	"math"

	"github.com/lvillar/hausdoc/doctpl"
	"github.com/lvillar/hausdoc/locale"
	"github.com/lvillar/hausdoc/surface"
)

// UValueScale is the fixed scale of the U-value chart in W/(m²K).
type UValueScale struct {
	Ceiling  float64
	Standard float64
	Minimum  float64
}

// DefaultUValueScale is 0..0,50 with references at 0,24 and 0,40.
var DefaultUValueScale = UValueScale{Ceiling: 0.50, Standard: 0.24, Minimum: 0.40}

// DefaultSCOPMax is the value at which the gauge is full.
const DefaultSCOPMax = 6.0

// BarLength returns the drawn length of a bar for value v on a 0..ceiling
// scale of the given width. The result is always within [0, width]; an
// unparseable (+Inf or NaN) value fills the bar.
func BarLength(v, ceiling, width float64) float64 {
	if ceiling <= 0 || width <= 0 {
		return 0
	}
	if math.IsNaN(v) {
		return width
	}
	frac := math.Min(1, v/ceiling)
	if frac < 0 {
		frac = 0
	}
	return frac * width
}

// Sweep returns the gauge angle in radians for value v on a 0..max scale:
// π * min(1, v/max), never negative.
func Sweep(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	if math.IsNaN(v) {
		return math.Pi
	}
	return math.Pi * math.Max(0, math.Min(1, v/max))
}

// StarCount returns the star rating for v: min(5, round(v)), never negative.
func StarCount(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 1) {
		return 5
	}
	n := math.Round(v)
	if n < 0 {
		return 0
	}
	return int(math.Min(5, n))
}

const (
	barHeight   = 12.0
	maxChart    = 200.0
	gaugeRadius = 45.0
	gaugeWidth  = 8.0
)

// UValueChart draws the customer's value against the standard and minimum
// reference bars at (x, y) within a column of maxWidth and returns the next
// free y. Only the customer's bar carries the "Exzellent" marker.
func UValueChart(s surface.Surface, p doctpl.Palette, x, y, maxWidth float64, raw string, scale UValueScale) float64 {
	chartW := math.Min(maxChart, maxWidth-20)
	if chartW < 0 {
		chartW = 0
	}
	v := locale.Scalar(raw)

	s.Text("U-Wert-Vergleich:", x, y, surface.TextStyle{Size: 8, Bold: true, Color: p.Primary})
	y += 14

	label := surface.TextStyle{Size: 7, Color: p.TextMuted}
	yours := BarLength(v, scale.Ceiling, chartW)
	s.Text("Ihr Wert: "+raw, x+5, y+2, label)
	if yours > 0 {
		s.Rect(x+5, y+12, yours, barHeight, surface.Fill(p.Gold))
	}
	surface.Star(s, x+14+yours, y+18, 4, surface.Fill(p.Gold))
	s.Text("Exzellent", x+20+yours, y+14, surface.TextStyle{Size: 7, Bold: true, Color: p.Gold})

	y += 22
	s.Text("Standard: "+locale.FormatNumber(scale.Standard, 2), x+5, y+2, label)
	s.Rect(x+5, y+12, BarLength(scale.Standard, scale.Ceiling, chartW), barHeight, surface.Fill(surface.Hex("#95a5a6")))

	y += 22
	s.Text("Minimum: "+locale.FormatNumber(scale.Minimum, 2), x+5, y+2, label)
	s.Rect(x+5, y+12, BarLength(scale.Minimum, scale.Ceiling, chartW), barHeight, surface.Fill(surface.Hex("#cccccc")))

	return y + 28
}

// SCOPGauge draws a half-circle gauge whose filled arc is proportional to the
// value on a 0..max scale, with the value, a star rating and a fixed label in
// its center. It returns y + 110.
func SCOPGauge(s surface.Surface, p doctpl.Palette, x, y float64, raw string, max float64) float64 {
	cx, cy := x+100, y+55
	v := locale.Scalar(raw)

	s.Arc(cx, cy, gaugeRadius, 180, 180, surface.Stroke(surface.Hex("#e0e0e0"), gaugeWidth))
	if sweep := Sweep(v, max); sweep > 0 {
		s.Arc(cx, cy, gaugeRadius, 180, sweep*180/math.Pi, surface.Stroke(p.Gold, gaugeWidth))
	}

	value := raw
	if _, ok := locale.ParseNumber(raw); ok {
		value = locale.FormatNumber(v, 1)
	}
	s.Text("SCOP "+value, cx-40, cy-8, surface.TextStyle{Size: 16, Bold: true, Color: p.Primary, Width: 80, Align: surface.AlignCenter})
	surface.Stars(s, StarCount(v), cx, cy+16, 4, surface.Fill(p.Gold))
	s.Text("Energieeffizienz: Exzellent", cx-45, cy+30, surface.TextStyle{Size: 7, Color: p.TextMuted, Width: 90, Align: surface.AlignCenter})

	return y + 110
}
