package handlers

import "testing"

func TestNormalizeCutoff(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"empty passes through", "", "", false},
		{"rfc3339 converted", "2026-12-25T16:30:00Z", "25/12-1630 HRS", false},
		{"display form kept", "25/12-1630 HRS", "25/12-1630 HRS", false},
		{"missing suffix added", "25/12-1630", "25/12-1630 HRS", false},
		{"surrounding space trimmed", "  25/12-1630 HRS ", "25/12-1630 HRS", false},
		{"free text rejected", "sometime next week", "", true},
		{"bare date rejected", "25/12/2026", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeCutoff(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("normalizeCutoff(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("normalizeCutoff(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
