package utils

import "testing"

func TestMatchesPermission(t *testing.T) {
	tests := []struct {
		name         string
		userPerm     string
		requiredPerm string
		expected     bool
	}{
		// Exact matches
		{"exact match same permission", "bookings:create", "bookings:create", true},
		{"exact match different action", "bookings:create", "bookings:read", false},
		{"exact match different resource", "bookings:create", "masters:create", false},

		// Full wildcard
		{"full wildcard matches bookings", "*", "bookings:flags", true},
		{"full wildcard matches users", "*", "users:manage", true},

		// Resource wildcard
		{"resource wildcard matches read", "bookings:*", "bookings:read", true},
		{"resource wildcard matches flags", "bookings:*", "bookings:flags", true},
		{"resource wildcard doesn't match masters", "bookings:*", "masters:read", false},

		// Action wildcard
		{"action wildcard matches bookings read", "*:read", "bookings:read", true},
		{"action wildcard matches masters read", "*:read", "masters:read", true},
		{"action wildcard doesn't match manage", "*:read", "masters:manage", false},

		// Edge cases
		{"empty required permission", "bookings:create", "", false},
		{"empty user permission", "", "bookings:create", false},
		{"both empty", "", "", true},
		{"single part only matches exactly", "admin", "admin", true},
		{"single part vs multi-part", "admin", "admin:read", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MatchesPermission(tt.userPerm, tt.requiredPerm)
			if result != tt.expected {
				t.Errorf("MatchesPermission(%q, %q) = %v, expected %v",
					tt.userPerm, tt.requiredPerm, result, tt.expected)
			}
		})
	}
}
