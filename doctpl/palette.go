package doctpl

import "github.com/lvillar/hausdoc/surface"

// Palette is the brand color set shared by all renderers.
type Palette struct {
	Primary        surface.Color
	PrimaryDark    surface.Color
	PrimaryLight   surface.Color
	Secondary      surface.Color
	SecondaryLight surface.Color
	Gold           surface.Color
	GoldDark       surface.Color
	GoldLight      surface.Color
	Text           surface.Color
	TextLight      surface.Color
	TextMuted      surface.Color
	Gray           surface.Color
	GrayLight      surface.Color
	White          surface.Color
	Error          surface.Color
	ErrorLight     surface.Color
}

// DefaultPalette returns the house colors: dark green and gold on white.
func DefaultPalette() Palette {
	return Palette{
		Primary:        surface.Hex("#06402b"),
		PrimaryDark:    surface.Hex("#042e1f"),
		PrimaryLight:   surface.Hex("#267e61"),
		Secondary:      surface.Hex("#b1a699"),
		SecondaryLight: surface.Hex("#f5f3ef"),
		Gold:           surface.Hex("#D4AF37"),
		GoldDark:       surface.Hex("#b8922e"),
		GoldLight:      surface.Hex("#faf8f0"),
		Text:           surface.Hex("#1d1d1b"),
		TextLight:      surface.Hex("#333333"),
		TextMuted:      surface.Hex("#666666"),
		Gray:           surface.Hex("#999999"),
		GrayLight:      surface.Hex("#f5f5f5"),
		White:          surface.Hex("#FFFFFF"),
		Error:          surface.Hex("#cc0000"),
		ErrorLight:     surface.Hex("#fff5f5"),
	}
}
