package profiles

import "strings"

// CoerceBool maps a client-supplied value onto a tri-state boolean.
// Booleans pass through. Absent, null and empty-string inputs yield nil
// (unknown) so they can never clobber a stored value with false. Any other
// string is true when it reads "true" or "yes" (case-insensitive), false
// otherwise.
func CoerceBool(v any) *bool {
	switch t := v.(type) {
	case bool:
		b := t
		return &b
	case string:
		if t == "" {
			return nil
		}
		b := strings.EqualFold(t, "true") || strings.EqualFold(t, "yes")
		return &b
	default:
		return nil
	}
}

// FormatTriState renders a tri-state boolean for the client form:
// "Yes", "No", or empty string when unknown.
func FormatTriState(v *bool) string {
	if v == nil {
		return ""
	}
	if *v {
		return "Yes"
	}
	return "No"
}

// DefaultRole returns the account role to persist at registration.
// Blank input falls back to "student".
func DefaultRole(role string) string {
	if role == "" {
		return "student"
	}
	return role
}
