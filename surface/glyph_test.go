package surface

import (
	"math"
	"testing"
)

func TestStarPoints(t *testing.T) {
	r := NewRecorder()
	r.AddPage()
	Star(r, 100, 100, 10, Fill(Hex("#D4AF37")))
	polys := r.Filter(OpPolygon)
	if len(polys) != 1 || len(polys[0].Points) != 10 {
		t.Fatalf("star polygon = %+v", polys)
	}
	top := polys[0].Points[0]
	if math.Abs(top.X-100) > 1e-9 || math.Abs(top.Y-90) > 1e-9 {
		t.Errorf("first point %+v should be the top tip", top)
	}
}

func TestStarsRow(t *testing.T) {
	r := NewRecorder()
	r.AddPage()
	Stars(r, 5, 200, 50, 4, Fill(Color{}))
	if n := len(r.Filter(OpPolygon)); n != 5 {
		t.Errorf("got %d stars, want 5", n)
	}
	Stars(r, 0, 200, 50, 4, Fill(Color{}))
	if n := len(r.Filter(OpPolygon)); n != 5 {
		t.Errorf("zero stars drew %d polygons", n-5)
	}
}
