package pages

import (
	"strings"

	"github.com/lvillar/hausdoc/surface"
)

// Contact is one quick-access code on the closing page.
type Contact struct {
	Target string // encoded URI
	Label  string
}

// Contacts returns the website, e-mail and phone targets of the configured
// company, skipping those that are not set.
func (e *Env) Contacts() []Contact {
	c := e.Config.Company
	var out []Contact
	if c.Website != "" {
		out = append(out, Contact{Target: c.Website, Label: "Website besuchen"})
	}
	if c.Email != "" {
		out = append(out, Contact{Target: "mailto:" + c.Email, Label: "E-Mail senden"})
	}
	if dial := strings.ReplaceAll(c.PhoneDial, " ", ""); dial != "" {
		out = append(out, Contact{Target: "tel:" + dial, Label: "Anrufen"})
	}
	return out
}

// Closing draws the next steps from the "closing" template followed by one
// QR code per contact.
func (e *Env) Closing(ctx Context) (float64, error) {
	y, err := e.Static(ctx, "closing")
	if err != nil {
		return y, err
	}
	contacts := e.Contacts()
	if len(contacts) == 0 {
		return y, nil
	}
	const size = 80.0
	if y+20+size+20 > e.bottom() {
		e.logf("closing: quick access codes omitted, no space left")
		return y, nil
	}
	e.S.Text("Schnellzugriff:", 80, y, surface.TextStyle{Size: 11, Bold: true, Color: e.Palette.Primary})
	y += 20
	for i, c := range contacts {
		e.QRCode(100+float64(i)*120, y, size, c.Target, c.Label)
	}
	return y + size + 20, nil
}
