package normalize

import (
	"math"
	"testing"
	"time"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1.234,56", 1234.56, true},
		{"9,00", 9.0, true},
		{"30", 30.0, true},
		{"€ 627,59", 627.59, true},
		{"-12,50", -12.5, true},
		{"−17,80", -17.8, true},
		{"19,00 %", 19.0, true},
		{"1.234.567,89", 1234567.89, true},
		{"", 0, false},
		{"   ", 0, false},
		{"Gesamtbetrag", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseDecimal(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseDecimal(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ParseDecimal(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatDecimalRoundTrip(t *testing.T) {
	for _, f := range []float64{1234.56, 9.0, 30.0, 0.0, 627.59, -446.5, 1234567.89} {
		s := FormatDecimal(f)
		got, ok := ParseDecimal(s)
		if !ok {
			t.Fatalf("ParseDecimal(FormatDecimal(%v) = %q) failed", f, s)
		}
		if math.Abs(got-math.Round(f*100)/100) > 1e-9 {
			t.Errorf("round trip %v -> %q -> %v", f, s, got)
		}
	}
	if got := FormatDecimal(1234.56); got != "1.234,56" {
		t.Errorf("FormatDecimal(1234.56) = %q, want 1.234,56", got)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"30.11.2025", "2025-11-30", true},
		{"02-11-2025", "2025-11-02", true},
		{"2025-11-16", "2025-11-16", true},
		{"16/11/2025", "2025-11-16", true},
		{"not a date", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseDate(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseDate(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got.Format("2006-01-02") != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got.Format("2006-01-02"), tt.want)
		}
	}
}

func TestParseDateTime(t *testing.T) {
	got, ok := ParseDateTime("02-11-2025, 12:38:34")
	if !ok {
		t.Fatal("ParseDateTime failed")
	}
	want := time.Date(2025, 11, 2, 12, 38, 34, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDateTime = %v, want %v", got, want)
	}
}

func TestTempInvoiceNumber(t *testing.T) {
	now := time.Date(2025, 11, 30, 8, 15, 42, 0, time.UTC)
	got := TempInvoiceNumber(now)
	if got != "TEMP-20251130081542" {
		t.Errorf("TempInvoiceNumber = %q", got)
	}
	if len(got) != len("TEMP-")+14 {
		t.Errorf("stamp is not 14 digits: %q", got)
	}
}
