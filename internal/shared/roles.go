package shared

import "strings"

// Role names as stored in the credential store and carried in token claims.
const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"
)

// NormalizeRole canonicalizes a role name for comparison.
func NormalizeRole(role string) string {
	return strings.ToUpper(strings.TrimSpace(role))
}

// HasAnyRole reports whether granted and required intersect after
// normalization.
func HasAnyRole(granted, required []string) bool {
	if len(required) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(granted))
	for _, r := range granted {
		set[NormalizeRole(r)] = struct{}{}
	}
	for _, r := range required {
		if _, ok := set[NormalizeRole(r)]; ok {
			return true
		}
	}
	return false
}
