// Package catalog loads the static product catalog and resolves the variants a
// submission refers to.
//
// The catalog file is a JSON object keyed by category ("walls", "innerwalls",
// "decken", "windows", "tiles", "haustypen", "heizung", "lueftung"), each
// holding an ordered list of variants. Category membership is fixed when the
// catalog is loaded.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrUnknownCategory is returned for category keys outside the fixed set.
var ErrUnknownCategory = errors.New("catalog: unknown category")

// Adapter resolves variants by category and id.
type Adapter interface {
	Resolve(c Category, id string) (*Variant, bool)
	ListByCategory(c Category) []*Variant
}

// Catalog is an immutable, in-memory catalog. It is safe for concurrent use.
type Catalog struct {
	byCategory map[Category][]*Variant
	byID       map[Category]map[string]*Variant
}

// Load reads a catalog from a JSON file.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: opening %s: %w", path, err)
	}
	defer f.Close()
	c, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return c, nil
}

// Read parses a catalog from r. Unknown top-level keys are ignored so the
// catalog file can carry data for other consumers.
func Read(r io.Reader) (*Catalog, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("catalog: parsing: %w", err)
	}
	c := &Catalog{
		byCategory: make(map[Category][]*Variant),
		byID:       make(map[Category]map[string]*Variant),
	}
	for key, data := range raw {
		cat, err := ParseCategory(key)
		if err != nil {
			continue
		}
		var variants []*Variant
		if err := json.Unmarshal(data, &variants); err != nil {
			return nil, fmt.Errorf("catalog: parsing %s: %w", key, err)
		}
		if err := c.add(cat, variants); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// New builds a catalog from variants grouped by category. The variants are
// copied; later changes to the arguments do not affect the catalog.
func New(groups map[Category][]Variant) (*Catalog, error) {
	c := &Catalog{
		byCategory: make(map[Category][]*Variant),
		byID:       make(map[Category]map[string]*Variant),
	}
	for _, cat := range Categories() {
		list := groups[cat]
		ptrs := make([]*Variant, len(list))
		for i := range list {
			v := list[i]
			ptrs[i] = &v
		}
		if err := c.add(cat, ptrs); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) add(cat Category, variants []*Variant) error {
	ids := make(map[string]*Variant, len(variants))
	kept := variants[:0]
	for _, v := range variants {
		if v == nil || v.ID == "" {
			continue
		}
		if _, dup := ids[v.ID]; dup {
			return fmt.Errorf("catalog: duplicate id %q in %s", v.ID, cat)
		}
		v.Category = cat
		ids[v.ID] = v
		kept = append(kept, v)
	}
	c.byCategory[cat] = kept
	c.byID[cat] = ids
	return nil
}

// Resolve returns the variant with the given id, or false if it is absent.
func (c *Catalog) Resolve(cat Category, id string) (*Variant, bool) {
	if c == nil || id == "" {
		return nil, false
	}
	v, ok := c.byID[cat][id]
	return v, ok
}

// ListByCategory returns the variants of cat in catalog order.
func (c *Catalog) ListByCategory(cat Category) []*Variant {
	if c == nil {
		return nil
	}
	list := c.byCategory[cat]
	out := make([]*Variant, len(list))
	copy(out, list)
	return out
}
