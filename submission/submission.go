// Package submission holds the customer's finalized configuration: contact
// data, one variant id per catalog category and the room layout per floor.
package submission

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lvillar/hausdoc/catalog"
)

// NoVentilation is the sentinel ventilation id meaning "no ventilation system".
const NoVentilation = "keine"

// Submission is one customer configuration.
type Submission struct {
	ID        string `json:"id"`
	Timestamp Time   `json:"timestamp"`

	FirstName string `json:"bauherr_vorname"`
	LastName  string `json:"bauherr_nachname"`
	Email     string `json:"bauherr_email"`
	Phone     string `json:"bauherr_telefon"`

	EnergyStandard string   `json:"kfw_standard"`
	HouseholdSize  FlexInt  `json:"personenanzahl"`
	LandStatus     string   `json:"grundstueck"`
	SelfWork       FlexText `json:"eigenleistungen"`
	Rooms          Rooms    `json:"rooms"`

	Wall        string `json:"wall"`
	InnerWall   string `json:"innerwall"`
	Ceiling     string `json:"decke"`
	Window      string `json:"window"`
	Roof        string `json:"tiles"`
	HouseType   string `json:"haustyp"`
	Heating     string `json:"heizung"`
	Ventilation string `json:"lueftung"`
}

// VariantID returns the variant id selected for category c.
func (s *Submission) VariantID(c catalog.Category) string {
	switch c {
	case catalog.Wall:
		return s.Wall
	case catalog.InnerWall:
		return s.InnerWall
	case catalog.Ceiling:
		return s.Ceiling
	case catalog.Window:
		return s.Window
	case catalog.Roof:
		return s.Roof
	case catalog.HouseType:
		return s.HouseType
	case catalog.Heating:
		return s.Heating
	case catalog.Ventilation:
		return s.Ventilation
	}
	return ""
}

// WantsVentilation reports whether a ventilation system was chosen.
func (s *Submission) WantsVentilation() bool {
	v := strings.TrimSpace(s.Ventilation)
	return v != "" && v != NoVentilation
}

// FullName returns "first last", trimmed.
func (s *Submission) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// EnergyLabel returns the display name of the chosen energy standard. Anything
// other than KfW 55 is reported as the default KfW 40.
func (s *Submission) EnergyLabel() string {
	if strings.ToUpper(strings.ReplaceAll(s.EnergyStandard, " ", "")) == "KFW55" {
		return "KfW 55"
	}
	return "KfW 40"
}

var landLabels = map[string]string{
	"vorhanden":   "Vorhanden",
	"in_aussicht": "In Aussicht",
	"suche":       "Auf der Suche",
}

// LandLabel returns the display text of the land-ownership status.
func (s *Submission) LandLabel() string {
	if l, ok := landLabels[s.LandStatus]; ok {
		return l
	}
	if s.LandStatus == "" {
		return "-"
	}
	return s.LandStatus
}

var unsafeID = regexp.MustCompile(`[^a-zA-Z0-9-]`)

// SafeID returns the id reduced to characters that are safe in file names.
func (s *Submission) SafeID() string {
	return unsafeID.ReplaceAllString(s.ID, "")
}

// NewID returns a fresh random submission id.
func NewID() string {
	return uuid.NewString()
}

// Load reads a submission from a JSON file.
func Load(path string) (*Submission, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("submission: opening %s: %w", path, err)
	}
	defer f.Close()
	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("submission: %s: %w", path, err)
	}
	return s, nil
}

// Read decodes a submission from r.
func Read(r io.Reader) (*Submission, error) {
	var s Submission
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("submission: parsing: %w", err)
	}
	return &s, nil
}

// FlexInt accepts a JSON number or a numeric string. Anything else decodes to 0.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = FlexInt(f)
	return nil
}

// FlexText accepts a JSON string or a list of strings, which are joined with ", ".
type FlexText string

func (t *FlexText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = FlexText(strings.TrimSpace(s))
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		kept := list[:0]
		for _, item := range list {
			if item = strings.TrimSpace(item); item != "" {
				kept = append(kept, item)
			}
		}
		*t = FlexText(strings.Join(kept, ", "))
		return nil
	}
	*t = ""
	return nil
}

// Time is a timestamp that accepts RFC 3339 strings, plain dates and Unix
// milliseconds. Unparseable values decode to the zero time.
type Time struct {
	time.Time
}

var timeLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func (t *Time) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		t.Time = time.UnixMilli(ms).UTC()
		return nil
	}
	s := strings.Trim(raw, `"`)
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	t.Time = time.Time{}
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}
