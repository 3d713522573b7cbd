package surface

import "math"

// The core fonts have no star, check mark or warning sign, so these glyphs
// are drawn as polygons.

// Star draws a five-pointed star centered on (cx, cy) with outer radius r.
func Star(s Surface, cx, cy, r float64, st Style) {
	pts := make([]Point, 0, 10)
	inner := r * 0.45
	for i := 0; i < 10; i++ {
		rad := r
		if i%2 == 1 {
			rad = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		pts = append(pts, Point{X: cx + rad*math.Cos(a), Y: cy + rad*math.Sin(a)})
	}
	s.Polygon(pts, st)
}

// Stars draws n stars of radius r in a row centered on cx.
func Stars(s Surface, n int, cx, cy, r float64, st Style) {
	if n <= 0 {
		return
	}
	step := r * 2.4
	x := cx - step*float64(n-1)/2
	for i := 0; i < n; i++ {
		Star(s, x+float64(i)*step, cy, r, st)
	}
}

// Check draws a check mark inside the size x size box at (x, y).
func Check(s Surface, x, y, size float64, c Color) {
	w := math.Max(size*0.16, 0.8)
	st := Style{Stroke: &c, LineWidth: w, RoundCap: true}
	s.Line(x+size*0.15, y+size*0.55, x+size*0.4, y+size*0.8, st)
	s.Line(x+size*0.4, y+size*0.8, x+size*0.85, y+size*0.2, st)
}

// Warning draws a warning triangle with an exclamation mark inside the
// size x size box at (x, y).
func Warning(s Surface, x, y, size float64, fill, mark Color) {
	s.Polygon([]Point{{x + size/2, y}, {x + size, y + size}, {x, y + size}}, Fill(fill))
	st := Style{Stroke: &mark, LineWidth: size * 0.1}
	s.Line(x+size/2, y+size*0.35, x+size/2, y+size*0.7, st)
	s.Rect(x+size*0.45, y+size*0.78, size*0.1, size*0.1, Fill(mark))
}
