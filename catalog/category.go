package catalog

import "fmt"

// Category identifies one component group of the house configuration. It is a
// closed set; every category carries a Descriptor that drives its layout.
type Category int

const (
	Wall Category = iota
	InnerWall
	Ceiling
	Window
	Roof
	HouseType
	Heating
	Ventilation
)

// Metric names the infographic a category feeds.
type Metric int

const (
	MetricNone   Metric = iota
	MetricUValue        // U-value bar chart from the "uValue" attribute
	MetricSCOP          // SCOP gauge from the "scop" attribute
)

// Descriptor is the layout information attached to a category. It replaces
// any dispatch on display titles.
type Descriptor struct {
	Key         string   // catalog JSON key, e.g. "walls"
	Title       string   // detail page heading
	Label       string   // short label used in summary tables
	Placeholder string   // hex fill of the image placeholder block
	Priority    []string // attribute keys for the quality table, most important first
	LayerKeys   []string // attribute keys that synthesise the assembly list
	SummaryKey  string   // attribute shown next to the variant in the executive summary
	InSummary   bool
	Metric      Metric
}

// qualityPriority orders the attributes of the compact quality table: thermal
// and glazing coefficients, fire rating, acoustic rating, efficiency,
// lifespan, position.
var qualityPriority = []string{
	"uValue", "ugValue", "uwValue",
	"fireRating",
	"soundInsulation",
	"scop", "heatRecovery", "energySaving",
	"lifespan",
	"position",
}

var descriptors = [...]Descriptor{
	Wall: {
		Key: "walls", Title: "Außenwandsystem", Label: "Außenwand",
		Placeholder: "#2ecc71", Priority: qualityPriority,
		LayerKeys:  []string{"surface", "insulation", "wallThickness", "plasterThickness"},
		SummaryKey: "uValue", InSummary: true, Metric: MetricUValue,
	},
	InnerWall: {
		Key: "innerwalls", Title: "Innenwandsystem", Label: "Innenwand",
		Placeholder: "#3498db", Priority: qualityPriority,
		LayerKeys:  []string{"plasterThickness", "material", "wallThickness"},
		SummaryKey: "soundInsulation", InSummary: true,
	},
	Ceiling: {
		Key: "decken", Title: "Deckensystem", Label: "Decke",
		Placeholder: "#b1a699", Priority: qualityPriority,
		LayerKeys:  []string{"surface", "material", "insulation"},
		SummaryKey: "soundInsulation", InSummary: true, Metric: MetricUValue,
	},
	Window: {
		Key: "windows", Title: "Fenstersystem", Label: "Fenster",
		Placeholder: "#3498db", Priority: qualityPriority,
		LayerKeys:  []string{"glazing", "profile", "securityFeatures"},
		SummaryKey: "ugValue", InSummary: true,
	},
	Roof: {
		Key: "tiles", Title: "Dacheindeckung", Label: "Dach",
		Placeholder: "#95a5a6", Priority: qualityPriority,
		LayerKeys:  []string{"material", "surface", "weight"},
		SummaryKey: "lifespan", InSummary: true,
	},
	HouseType: {
		Key: "haustypen", Title: "Ihr Haustyp", Label: "Haustyp",
		Placeholder: "#9b59b6", Priority: qualityPriority,
	},
	Heating: {
		Key: "heizung", Title: "Heizungssystem", Label: "Heizung",
		Placeholder: "#e74c3c", Priority: qualityPriority,
		LayerKeys:  []string{"refrigerant", "noise"},
		SummaryKey: "scop", InSummary: true, Metric: MetricSCOP,
	},
	Ventilation: {
		Key: "lueftung", Title: "Lüftungssystem", Label: "Lüftung",
		Placeholder: "#9b59b6", Priority: qualityPriority,
		LayerKeys:  []string{"filters", "heatRecovery"},
		SummaryKey: "heatRecovery", InSummary: true, Metric: MetricSCOP,
	},
}

// Categories returns all categories in document order.
func Categories() []Category {
	return []Category{Wall, InnerWall, Ceiling, Window, Roof, HouseType, Heating, Ventilation}
}

// Descriptor returns the layout descriptor of c.
func (c Category) Descriptor() Descriptor {
	if c < 0 || int(c) >= len(descriptors) {
		return Descriptor{Key: "unknown", Title: "Komponente", Label: "Komponente", Placeholder: "#95a5a6"}
	}
	return descriptors[c]
}

func (c Category) String() string {
	return c.Descriptor().Key
}

// ParseCategory maps a catalog JSON key to its Category.
func ParseCategory(key string) (Category, error) {
	for _, c := range Categories() {
		if descriptors[c].Key == key {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, key)
}

// attributeLabels are the German display labels of technical attribute keys.
var attributeLabels = map[string]string{
	"uValue":           "U-Wert",
	"ugValue":          "Ug-Wert",
	"uwValue":          "Uw-Wert",
	"wallThickness":    "Wandstärke",
	"insulation":       "Dämmung",
	"position":         "Position",
	"soundInsulation":  "Schallschutz",
	"profile":          "Profil",
	"glazing":          "Verglasung",
	"material":         "Material",
	"lifespan":         "Lebensdauer",
	"weight":           "Gewicht",
	"scop":             "SCOP",
	"refrigerant":      "Kältemittel",
	"noise":            "Schallpegel",
	"heatRecovery":     "Wärmerückgewinnung",
	"energySaving":     "Energieeinsparung",
	"filters":          "Filter",
	"fireRating":       "Brandschutz",
	"securityFeatures": "Sicherheit",
	"plasterThickness": "Gipskarton-Stärke",
	"surface":          "Oberfläche",
}

// AttributeLabel returns the display label for an attribute key, or the key itself.
func AttributeLabel(key string) string {
	if l, ok := attributeLabels[key]; ok {
		return l
	}
	return key
}
