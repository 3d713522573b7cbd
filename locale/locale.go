// Package locale converts catalog display strings into numbers and formats
// numbers and dates the way the German report expects them.
//
// Catalog values are free text such as "0,18 W/(m²K)" or "SCOP 4,8". Parsing
// never fails loudly: a value without a numeric token becomes +Inf, which every
// chart clamps to its maximum, so malformed catalog data renders as off-scale
// instead of aborting the document.
package locale

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numberToken = regexp.MustCompile(`[-+]?(?:\d+(?:[.,]\d+)?|[.,]\d+)`)

// ParseNumber extracts the first numeric token of s, accepting either a comma
// or a dot as decimal separator. ok is false when s holds no number.
func ParseNumber(s string) (v float64, ok bool) {
	tok := numberToken.FindString(s)
	if tok == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.Replace(tok, ",", ".", 1), 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Scalar is ParseNumber for chart scaling: a missing or malformed number is
// reported as +Inf so that it clamps to the top of any scale.
func Scalar(s string) float64 {
	v, ok := ParseNumber(s)
	if !ok {
		return math.Inf(1)
	}
	return v
}

var printer = message.NewPrinter(language.German)

// FormatNumber renders v with the given number of decimals using German
// separators, e.g. 1234.5 → "1.234,5".
func FormatNumber(v float64, decimals int) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "-"
	}
	return printer.Sprintf("%."+strconv.Itoa(decimals)+"f", v)
}

var months = [...]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// FormatDate renders t as a German long date, e.g. "19. Oktober 2026".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return strconv.Itoa(t.Day()) + ". " + months[t.Month()-1] + " " + strconv.Itoa(t.Year())
}
