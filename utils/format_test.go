package utils

import (
	"testing"
	"time"
)

func TestFormatCutoff(t *testing.T) {
	ts := time.Date(2026, 12, 25, 16, 30, 0, 0, time.UTC)
	if got := FormatCutoff(ts); got != "25/12-1630 HRS" {
		t.Errorf("FormatCutoff() = %q, want 25/12-1630 HRS", got)
	}
}

func TestParseCutoff(t *testing.T) {
	got, err := ParseCutoff("25/12-1630 HRS", 2026)
	if err != nil {
		t.Fatalf("ParseCutoff() error = %v", err)
	}
	if got.Day() != 25 || got.Month() != time.December || got.Hour() != 16 || got.Minute() != 30 {
		t.Errorf("ParseCutoff() = %v", got)
	}

	if _, err := ParseCutoff("Friday evening", 2026); err == nil {
		t.Error("ParseCutoff() should reject free text")
	}
}

func TestFormatInvoiceNo(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"104", "DMS/104/25-26"},
		{" 104 ", "DMS/104/25-26"},
		{"DMS/104/25-26", "DMS/104/25-26"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormatInvoiceNo(tt.input); got != tt.want {
			t.Errorf("FormatInvoiceNo(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatSOBDate(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"2026-08-12", "12/08/2026", false},
		{"12/08/2026", "12/08/2026", false},
		{"2026-08-12T10:30:00Z", "12/08/2026", false},
		{"", "", true},
		{"next tuesday", "", true},
	}
	for _, tt := range tests {
		got, err := FormatSOBDate(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatSOBDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatSOBDate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
