package catalog

import (
	"errors"
	"strings"
	"testing"
)

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load("testdata/catalog.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return c
}

func TestResolve(t *testing.T) {
	c := loadTestCatalog(t)

	v, ok := c.Resolve(Wall, "climativ-esb")
	if !ok {
		t.Fatal("expected climativ-esb to resolve")
	}
	if v.Category != Wall {
		t.Errorf("category = %v, want walls", v.Category)
	}
	if v.Name != "Climativ ESB" {
		t.Errorf("name = %q", v.Name)
	}

	if _, ok := c.Resolve(Wall, "does-not-exist"); ok {
		t.Error("unknown id must not resolve")
	}
	if _, ok := c.Resolve(Ceiling, "climativ-esb"); ok {
		t.Error("id must not resolve in a foreign category")
	}
	if _, ok := c.Resolve(Wall, ""); ok {
		t.Error("empty id must not resolve")
	}
}

func TestAttributesKeepOrderAndNumbers(t *testing.T) {
	c := loadTestCatalog(t)
	v, _ := c.Resolve(Wall, "climativ-esb")

	var keys []string
	for _, a := range v.Attributes {
		keys = append(keys, a.Key)
	}
	want := "uValue,wallThickness,insulation,fireRating,soundInsulation"
	if got := strings.Join(keys, ","); got != want {
		t.Errorf("keys = %s, want %s", got, want)
	}

	plus, _ := c.Resolve(Wall, "climativ-plus")
	if u, ok := plus.Attributes.Get("uValue"); !ok || u != "0.12" {
		t.Errorf("numeric uValue = %q, %v", u, ok)
	}
}

func TestPickHonoursPriorityAndLimit(t *testing.T) {
	c := loadTestCatalog(t)
	v, _ := c.Resolve(Wall, "climativ-esb")

	got := v.Attributes.Pick(Wall.Descriptor().Priority, 4)
	if len(got) != 3 {
		t.Fatalf("picked %d attributes, want 3", len(got))
	}
	if got[0].Key != "uValue" || got[1].Key != "fireRating" || got[2].Key != "soundInsulation" {
		t.Errorf("unexpected order: %+v", got)
	}

	all := Attributes{{"a", "1"}, {"b", "2"}, {"c", "3"}}
	if n := len(all.Pick([]string{"a", "b", "c"}, 2)); n != 2 {
		t.Errorf("limit ignored: %d", n)
	}
}

func TestListByCategoryIsACopy(t *testing.T) {
	c := loadTestCatalog(t)
	list := c.ListByCategory(Ventilation)
	if len(list) != 2 || list[0].ID != "keine" {
		t.Fatalf("unexpected ventilation list: %v", list)
	}
	list[0] = nil
	if again := c.ListByCategory(Ventilation); again[0] == nil {
		t.Error("ListByCategory exposed internal slice")
	}
}

func TestParseCategory(t *testing.T) {
	for _, cat := range Categories() {
		got, err := ParseCategory(cat.String())
		if err != nil || got != cat {
			t.Errorf("ParseCategory(%q) = %v, %v", cat.String(), got, err)
		}
	}
	if _, err := ParseCategory("brochures"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestReadRejectsDuplicates(t *testing.T) {
	_, err := Read(strings.NewReader(`{"walls":[{"id":"a","name":"A"},{"id":"a","name":"B"}]}`))
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestNewCopiesInput(t *testing.T) {
	groups := map[Category][]Variant{Heating: {{ID: "wp", Name: "Wärmepumpe"}}}
	c, err := New(groups)
	if err != nil {
		t.Fatal(err)
	}
	groups[Heating][0].Name = "changed"
	v, _ := c.Resolve(Heating, "wp")
	if v.Name != "Wärmepumpe" || v.Category != Heating {
		t.Errorf("variant = %+v", v)
	}
}
