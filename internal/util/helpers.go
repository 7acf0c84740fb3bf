package util

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// TextOrDefault returns def when s is empty.
func TextOrDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
