package utils

import (
	"fmt"
	"strings"
	"time"
)

// Display layouts the booking desk has always used. Changing these breaks
// saved documents, so the encodings are produced here and nowhere else.
const (
	cutoffLayout  = "02/01-1504"
	sobDateLayout = "02/01/2006"
)

// FormatCutoff renders a cut-off timestamp in the desk's display
// encoding, e.g. "25/12-1630 HRS".
func FormatCutoff(t time.Time) string {
	return t.Format(cutoffLayout) + " HRS"
}

// ParseCutoff reads a "DD/MM-HHMM HRS" string back into a timestamp in
// the given year. Returns an error for anything else.
func ParseCutoff(s string, year int) (time.Time, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), " HRS")
	t, err := time.Parse(cutoffLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse cutoff %q: %w", s, err)
	}
	return t.AddDate(year, 0, 0), nil
}

// FormatInvoiceNo applies the fixed invoice template "DMS/<n>/25-26".
// Input already in the template is returned unchanged.
func FormatInvoiceNo(input string) string {
	n := strings.TrimSpace(input)
	if n == "" {
		return ""
	}
	if strings.HasPrefix(n, "DMS/") && strings.HasSuffix(n, "/25-26") {
		return n
	}
	return fmt.Sprintf("DMS/%s/25-26", n)
}

// FormatSOBDate normalizes an SOB date to "DD/MM/YYYY" display form.
// Accepts ISO dates, RFC3339 timestamps, or an already formatted value.
func FormatSOBDate(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", fmt.Errorf("empty sob date")
	}
	for _, layout := range []string{sobDateLayout, "2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(sobDateLayout), nil
		}
	}
	return "", fmt.Errorf("unrecognized sob date %q", s)
}
