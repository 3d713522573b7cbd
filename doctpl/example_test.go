package doctpl_test

import (
	"bytes"
	"fmt"

	"github.com/lvillar/hausdoc/doctpl"
	"github.com/lvillar/hausdoc/surface"
)

// ExampleRenderer renders a static page from a JSON template.
func ExampleRenderer() {
	tpl := []byte(`{
		"pages": [{
			"key": "service",
			"title": "Unser Service für Sie",
			"blocks": [
				{"type": "paragraph", "text": "Bei {company} erhalten Sie alles aus einer Hand."},
				{"type": "entries", "items": [
					{"title": "Individuelle Planung", "text": "Freie Grundrissgestaltung"},
					{"title": "Festpreis-Garantie", "text": "Keine versteckten Kosten"}
				]},
				{"type": "callout", "tone": "primary", "title": "Mehr als 3.000 zufriedene Baufamilien"}
			]
		}]
	}`)

	doc, err := doctpl.Parse(tpl)
	if err != nil {
		fmt.Println(err)
		return
	}
	page, _ := doc.Lookup("service")

	pdf := surface.NewPDF(0)
	pdf.AddPage()
	r := doctpl.NewRenderer(pdf, map[string]string{"company": "Lehner Haus"})
	if _, err := r.Render(page.Blocks, 100); err != nil {
		fmt.Println(err)
		return
	}

	var buf bytes.Buffer
	err = pdf.Output(&buf)
	fmt.Println(page.Title, err == nil, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	// Output:
	// Unser Service für Sie true true
}
