package utils

import "strings"

// MatchesPermission checks if a user permission key matches the required
// one. Keys use the "resource:action" format with wildcard support:
//
//   - "*" matches everything
//   - "bookings:*" matches all actions on bookings
//   - "*:read" matches read on every resource
//   - "bookings:flags" exact match
//
// Keys without a colon only match exactly.
func MatchesPermission(userPerm, requiredPerm string) bool {
	if userPerm == requiredPerm {
		return true
	}
	if userPerm == "*" {
		return true
	}

	userParts := strings.Split(userPerm, ":")
	reqParts := strings.Split(requiredPerm, ":")
	if len(userParts) < 2 || len(reqParts) < 2 {
		return false
	}

	resourceMatch := userParts[0] == "*" || userParts[0] == reqParts[0]
	actionMatch := userParts[1] == "*" || userParts[1] == reqParts[1]
	return resourceMatch && actionMatch
}
