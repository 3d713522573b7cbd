package locale

import (
	"math"
	"testing"
	"time"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"0,15", 0.15, true},
		{"0.15", 0.15, true},
		{"0,18 W/(m²K)", 0.18, true},
		{"SCOP 4,8", 4.8, true},
		{"  5 ", 5, true},
		{"-0,5", -0.5, true},
		{".5 W/(m²K)", 0.5, true},
		{",25", 0.25, true},
		{"-,5", -0.5, true},
		{"sehr gut", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseNumber(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseNumber(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCommaAndDotAgree(t *testing.T) {
	a, _ := ParseNumber("0,15")
	b, _ := ParseNumber("0.15")
	if a != b || a != 0.15 {
		t.Fatalf("got %v and %v, want 0.15 for both", a, b)
	}
}

func TestScalarMalformedIsOffScale(t *testing.T) {
	if v := Scalar("k.A."); !math.IsInf(v, 1) {
		t.Fatalf("Scalar of malformed value = %v, want +Inf", v)
	}
	if v := Scalar("4,2"); v != 4.2 {
		t.Fatalf("Scalar(4,2) = %v", v)
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(0.18, 2); got != "0,18" {
		t.Errorf("FormatNumber(0.18) = %q", got)
	}
	if got := FormatNumber(math.Inf(1), 1); got != "-" {
		t.Errorf("FormatNumber(Inf) = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "19. Oktober 2026" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatDate(time.Time{}); got != "" {
		t.Errorf("FormatDate(zero) = %q", got)
	}
}
