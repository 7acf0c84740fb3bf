package countdown

import "fmt"

// Format renders seconds as MM:SS, switching to HH:MM:SS once the minute
// count leaves [-59, 59]. Negative input keeps Go's truncated division and
// remainder signs, so -1 renders as "00:-1".
func Format(totalSeconds int64) string {
	minutes := totalSeconds / 60
	if minutes > 59 || minutes < -59 {
		return fmt.Sprintf("%02d:%02d:%02d", totalSeconds/3600, minutes%60, totalSeconds%60)
	}
	return fmt.Sprintf("%02d:%02d", minutes, totalSeconds%60)
}

// Line joins prefix and the formatted remaining time with a single space.
// An empty prefix still yields the leading space.
func Line(prefix string, remaining int64) string {
	return prefix + " " + Format(remaining)
}
