package submission

import (
	"strings"
	"testing"
	"time"

	"github.com/lvillar/hausdoc/catalog"
)

func TestLoadGolden(t *testing.T) {
	s, err := Load("testdata/golden.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.HouseholdSize != 4 {
		t.Errorf("household size = %d, want 4", s.HouseholdSize)
	}
	if s.SelfWork != "Malerarbeiten innen, Bodenbelag verlegen" {
		t.Errorf("self work = %q", s.SelfWork)
	}
	want := time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)
	if !s.Timestamp.Equal(want) {
		t.Errorf("timestamp = %v, want %v", s.Timestamp, want)
	}
	if got := s.VariantID(catalog.Heating); got != "viessmann" {
		t.Errorf("heating id = %q", got)
	}
	if s.EnergyLabel() != "KfW 55" || s.LandLabel() != "In Aussicht" {
		t.Errorf("labels = %q, %q", s.EnergyLabel(), s.LandLabel())
	}
}

func TestRoomsTolerateNull(t *testing.T) {
	s, err := Read(strings.NewReader(`{"id":"x","rooms":null,"personenanzahl":2,"eigenleistungen":"Maler"}`))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if s.Rooms.Any() {
		t.Error("null rooms must hold no rooms")
	}
	if s.HouseholdSize != 2 || s.SelfWork != "Maler" {
		t.Errorf("got %d / %q", s.HouseholdSize, s.SelfWork)
	}
}

func TestFloorsSkipEmpty(t *testing.T) {
	r := Rooms{
		Ground:   []Room{{Name: "A"}},
		Basement: []Room{{Name: "Keller"}},
	}
	floors := r.Floors()
	if len(floors) != 2 {
		t.Fatalf("got %d floors, want 2", len(floors))
	}
	if floors[0].Floor != Ground || floors[1].Floor != Basement {
		t.Errorf("unexpected floor order: %+v", floors)
	}
	if floors[1].Floor.Name() != "Untergeschoss" {
		t.Errorf("name = %q", floors[1].Floor.Name())
	}
}

func TestWantsVentilation(t *testing.T) {
	tests := map[string]bool{"": false, "keine": false, " keine ": false, "zentral": true}
	for id, want := range tests {
		s := &Submission{Ventilation: id}
		if got := s.WantsVentilation(); got != want {
			t.Errorf("WantsVentilation(%q) = %v, want %v", id, got, want)
		}
	}
}

func TestSafeID(t *testing.T) {
	s := &Submission{ID: "../../etc/passwd-1"}
	if got := s.SafeID(); got != "etcpasswd-1" {
		t.Errorf("SafeID = %q", got)
	}
	if id := NewID(); len(id) != 36 {
		t.Errorf("NewID = %q", id)
	}
}

func TestTimestampFormats(t *testing.T) {
	for _, in := range []string{`"2026-10-19"`, `"2026-10-19T00:00:00Z"`, `1792368000000`} {
		var tm Time
		if err := tm.UnmarshalJSON([]byte(in)); err != nil || tm.IsZero() {
			t.Errorf("UnmarshalJSON(%s) = %v, zero=%v", in, err, tm.IsZero())
		}
	}
	var bad Time
	if err := bad.UnmarshalJSON([]byte(`"gestern"`)); err != nil || !bad.IsZero() {
		t.Errorf("bad timestamp: %v %v", err, bad.Time)
	}
}
