// Package doctpl renders declarative content blocks onto a surface.
//
// The static parts of the report (certification, service overview, check
// list, next steps) are written as JSON templates instead of drawing code.
// A template is a list of pages, each with a title and an ordered list of
// blocks; the Type of a block selects how it is drawn.
//
// Example JSON:
//
//	{
//	  "pages": [{
//	    "key": "service",
//	    "title": "Unser Service für Sie",
//	    "blocks": [
//	      {"type": "paragraph", "text": "Alles aus einer Hand."},
//	      {"type": "entries", "items": [{"title": "Festpreis", "text": "Keine versteckten Kosten"}]}
//	    ]
//	  }]
//	}
//
// Text fields may contain {name} placeholders which are replaced from the
// renderer's Vars.
package doctpl

// Block types.
const (
	TypeHeading   = "heading"   // bold title line
	TypeParagraph = "paragraph" // wrapped body text
	TypeNote      = "note"      // small muted text
	TypeChecks    = "checks"    // gold check badge, title and description per item
	TypeEntries   = "entries"   // title and description per item
	TypeChecklist = "checklist" // empty check box, topic and question per item
	TypeSteps     = "steps"     // numbered list
	TypeBullets   = "bullets"   // bullet list
	TypeCallout   = "callout"   // rounded box with title, text and bullets
	TypeCards     = "cards"     // grid of numbered cards
	TypeTable     = "table"     // two-column key/value table
	TypeSpacer    = "spacer"    // vertical gap
)

// Document is a set of static pages.
type Document struct {
	Pages []Page `json:"pages"`
}

// Page is one static page. Key identifies it to the page registry.
type Page struct {
	Key    string  `json:"key"`
	Title  string  `json:"title"`
	Blocks []Block `json:"blocks"`
}

// Block is a single visual element within a page. The Type field determines
// which other fields are relevant.
type Block struct {
	Type string `json:"type"`

	Title string  `json:"title,omitempty"`
	Text  string  `json:"text,omitempty"`
	Size  float64 `json:"size,omitempty"` // font size override

	// Callout
	Tone   string  `json:"tone,omitempty"`   // gold, primary, dark, warning
	Height float64 `json:"height,omitempty"` // minimum box height; spacer height

	// Lists, cards and check lists
	Items   []Item `json:"items,omitempty"`
	Columns int    `json:"columns,omitempty"` // cards per row

	// Table
	Rows   [][]string `json:"rows,omitempty"`
	Widths []float64  `json:"widths,omitempty"`

	Gap float64 `json:"gap,omitempty"` // space after the block; 0 uses the type default
}

// Item is one entry of a list-like block.
type Item struct {
	Title string `json:"title,omitempty"`
	Text  string `json:"text,omitempty"`
}

// Lookup returns the page with the given key.
func (d *Document) Lookup(key string) (Page, bool) {
	for _, p := range d.Pages {
		if p.Key == key {
			return p, true
		}
	}
	return Page{}, false
}
