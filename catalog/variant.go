package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Variant is one selectable product option within a category. Variants are
// owned by the Catalog and must be treated as read-only by callers.
type Variant struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Category         Category   `json:"-"`
	Description      string     `json:"description,omitempty"`
	Details          string     `json:"details,omitempty"`
	Attributes       Attributes `json:"technicalDetails,omitempty"`
	PremiumFeatures  []string   `json:"premiumFeatures,omitempty"`
	Advantages       []string   `json:"advantages,omitempty"`
	ComparisonNotes  string     `json:"comparisonNotes,omitempty"`
	Layers           []Layer    `json:"layers,omitempty"`
	Image            string     `json:"filePath,omitempty"`
	TechnicalDrawing string     `json:"technicalDrawing,omitempty"`
}

// Summary returns the description, falling back to the short details text.
func (v *Variant) Summary() string {
	if v.Description != "" {
		return v.Description
	}
	return v.Details
}

// Layer is one construction layer of the assembly list.
type Layer struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// Attribute is a technical attribute with its display value.
type Attribute struct {
	Key   string
	Value string
}

// Attributes keeps technical attributes in catalog order. Values are display
// strings; numbers in the JSON source are kept in their literal form.
type Attributes []Attribute

// Get returns the value stored under key.
func (a Attributes) Get(key string) (string, bool) {
	for _, at := range a {
		if at.Key == key {
			return at.Value, at.Value != ""
		}
	}
	return "", false
}

// Pick returns the attributes named in keys, in the order of keys, skipping
// missing ones, up to limit entries (limit <= 0 means no limit).
func (a Attributes) Pick(keys []string, limit int) Attributes {
	var out Attributes
	for _, k := range keys {
		if limit > 0 && len(out) == limit {
			break
		}
		if v, ok := a.Get(k); ok {
			out = append(out, Attribute{Key: k, Value: v})
		}
	}
	return out
}

// UnmarshalJSON decodes a JSON object while preserving key order.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*a = nil
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("catalog: technicalDetails must be an object")
	}
	var out Attributes
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("catalog: technicalDetails.%s: %w", key, err)
		}
		out = append(out, Attribute{Key: key, Value: displayValue(raw)})
	}
	*a = out
	return nil
}

// MarshalJSON encodes the attributes as a JSON object in their stored order.
func (a Attributes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, at := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, _ := json.Marshal(at.Key)
		v, _ := json.Marshal(at.Value)
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// displayValue flattens a JSON value to the string shown in the report.
func displayValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var list []any
	if err := json.Unmarshal(raw, &list); err == nil {
		parts := make([]string, 0, len(list))
		for _, item := range list {
			parts = append(parts, strings.TrimSpace(fmt.Sprint(item)))
		}
		return strings.Join(parts, ", ")
	}
	t := strings.TrimSpace(string(raw))
	if t == "null" || t == "false" {
		return ""
	}
	return t
}
