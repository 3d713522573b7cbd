package pages

import (
	"strconv"
	"strings"

	"github.com/lvillar/hausdoc/surface"
)

// Header starts a content page: it draws the gold accent bar, the title and
// the rule below it, plus the draft watermark if one is configured. It
// returns the cursor at the top of the content area.
func (e *Env) Header(ctx Context, title string) float64 {
	p := e.Palette
	if w := e.Config.Watermark; w != "" {
		e.S.Watermark(w, 90, p.Gray, 0.12, 45)
	}
	e.S.Rect(50, 35, 4, 30, surface.Fill(p.Gold))
	e.S.Text(title, 62, 40, surface.TextStyle{Size: 20, Bold: true, Color: p.Primary, Width: 480, MaxLines: 1})
	e.S.Line(50, 75, 545, 75, surface.Stroke(p.Secondary, 1))
	return ContentTop
}

// Footer stamps the company strip and the page number of ctx.
func (e *Env) Footer(ctx Context) {
	p := e.Palette
	c := e.Config.Company
	e.S.Line(50, FooterTop, 545, FooterTop, surface.Stroke(p.Gold, 1))

	parts := []string{c.Name, "QDF-zertifiziert", "RAL-Gütezeichen"}
	if host := displayHost(c.Website); host != "" {
		parts = append(parts, host)
	}
	e.S.Text(strings.Join(parts, " | "), 50, 810, surface.TextStyle{Size: 7, Color: p.TextMuted, Width: 440, MaxLines: 1})
	e.S.Text("Seite "+strconv.Itoa(ctx.Page), 500, 810, surface.TextStyle{Size: 8, Bold: true, Color: p.Primary})
}

var legalForms = []string{" GmbH", " AG", " KG", " e.K.", " UG"}

// shortName returns the company name without its legal form,
// "Lehner Haus GmbH & Co. KG" → "Lehner Haus".
func shortName(name string) string {
	cut := len(name)
	for _, f := range legalForms {
		if i := strings.Index(name, f); i > 0 && i < cut {
			cut = i
		}
	}
	return strings.TrimSpace(name[:cut])
}

// displayHost returns the host of a website URL for printing,
// "https://www.lehner-haus.de/" → "www.lehner-haus.de".
func displayHost(site string) string {
	s := strings.TrimPrefix(strings.TrimPrefix(site, "https://"), "http://")
	return strings.TrimSuffix(s, "/")
}
