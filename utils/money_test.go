package utils

import (
	"testing"
	"time"
)

func TestFormatCOP(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "$0"},
		{5, "$5"},
		{999, "$999"},
		{1000, "$1.000"},
		{19000, "$19.000"},
		{119000, "$119.000"},
		{1234567, "$1.234.567"},
		{-38000, "-$38.000"},
	}
	for _, c := range cases {
		if got := FormatCOP(c.amount); got != c.want {
			t.Fatalf("FormatCOP(%d) = %q, want %q", c.amount, got, c.want)
		}
	}
}

func TestQuoteFileName(t *testing.T) {
	date := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	want := "cotizacion-soluciones-ferreteras-2026-03-15.pdf"
	if got := QuoteFileName(date); got != want {
		t.Fatalf("QuoteFileName = %q, want %q", got, want)
	}
}
