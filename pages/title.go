package pages

import (
	"strconv"
	"strings"
	"time"

	"github.com/lvillar/hausdoc/locale"
	"github.com/lvillar/hausdoc/submission"
	"github.com/lvillar/hausdoc/surface"
)

// Title draws the cover page. It has no header, footer or cursor.
func (e *Env) Title(sub *submission.Submission, created time.Time) {
	p := e.Palette
	c := e.Config.Company
	center := func(size float64, bold bool, col surface.Color) surface.TextStyle {
		return surface.TextStyle{Size: size, Bold: bold, Color: col, Width: surface.PageWidth, Align: surface.AlignCenter, MaxLines: 1}
	}

	e.S.Rect(0, 0, surface.PageWidth, surface.PageHeight, surface.Fill(p.Primary))
	if hero, ok := e.Assets.Resolve(c.HeroImage); ok {
		if err := e.S.Image(hero, 0, 0, surface.PageWidth, surface.PageHeight); err != nil {
			e.logf("hero image %s: %v", c.HeroImage, err)
		}
		e.S.Rect(0, 0, surface.PageWidth, surface.PageHeight, surface.Fill(p.Primary).WithOpacity(0.65))
	} else {
		e.S.Rect(0, 0, surface.PageWidth, 300, surface.Fill(p.Gold).WithOpacity(0.15))
	}

	e.logo()
	e.badge(created)

	e.S.Line(200, 355, 395, 355, surface.Stroke(p.Gold, 2))
	e.S.Text("Ihre persönliche", 0, 390, center(28, false, p.White))
	e.S.Text("Leistungsbeschreibung", 0, 425, center(34, true, p.Gold))

	family := "Ihre Familie"
	if n := strings.TrimSpace(sub.LastName); n != "" {
		family = "Familie " + n
	}
	e.S.Text(family, 0, 510, center(22, false, p.White))
	if d := locale.FormatDate(created); d != "" {
		e.S.Text("Erstellt am "+d, 0, 570, center(11, false, p.White))
	}
	if sub.ID != "" {
		e.S.Text("Referenz: "+sub.ID, 0, 590, center(9, false, p.GoldLight))
		e.ReferenceCode(222.5, 625, 150, 50, referencePayload(sub.ID, created))
	}

	e.S.Rect(0, 770, surface.PageWidth, surface.PageHeight-770, surface.Fill(p.Gold))
	e.S.Text(c.Name, 0, 785, center(12, true, p.Primary))
	e.S.Text(c.Tagline, 0, 802, center(9, false, p.PrimaryDark))
}

// logo draws the company logo on a white plate, or the company name as a
// text logo when no logo file is available.
func (e *Env) logo() {
	p := e.Palette
	c := e.Config.Company
	if path, ok := e.Assets.Resolve(c.Logo); ok {
		e.S.RoundedRect(187.5, 110, 220, 100, 10, surface.Fill(p.White))
		err := e.S.Image(path, 197.5, 120, 200, 80)
		if err == nil {
			return
		}
		e.logf("logo %s: %v", c.Logo, err)
		e.S.Rect(187.5, 110, 220, 100, surface.Fill(p.Primary))
	}
	e.S.Text(strings.ToUpper(shortName(c.Name)), 0, 165, surface.TextStyle{
		Size: 48, Bold: true, Color: p.White, Width: surface.PageWidth, Align: surface.AlignCenter, MaxLines: 1,
	})
	e.S.Text(c.Tagline, 0, 230, surface.TextStyle{
		Size: 16, Color: p.Gold, Width: surface.PageWidth, Align: surface.AlignCenter, MaxLines: 1,
	})
}

// badge draws the round certification seal in the top right corner.
func (e *Env) badge(created time.Time) {
	p := e.Palette
	const cx, cy, r = 515.0, 85.0, 35.0
	e.S.Circle(cx, cy, r, surface.Fill(p.Gold).WithStroke(p.White, 2))
	ts := func(size float64, bold bool) surface.TextStyle {
		return surface.TextStyle{Size: size, Bold: bold, Color: p.Primary, Width: 2 * r, Align: surface.AlignCenter}
	}
	e.S.Text("QDF", cx-r, cy-20, ts(12, true))
	e.S.Text("zertifiziert", cx-r, cy-4, ts(7, false))
	if !created.IsZero() {
		e.S.Text(strconv.Itoa(created.Year()), cx-r, cy+8, ts(8, true))
	}
}

// referencePayload is the text carried by the title page code.
func referencePayload(id string, created time.Time) string {
	if created.IsZero() {
		return id
	}
	return id + "|" + created.Format("2006-01-02")
}
