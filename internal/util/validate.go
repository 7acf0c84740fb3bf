package util

// ValidateDigits reports whether s is non-empty and made only of ASCII
// digits, plus ':' when colonAllowed is set.
func ValidateDigits(s string, colonAllowed bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == ':' && colonAllowed:
		default:
			return false
		}
	}
	return true
}
