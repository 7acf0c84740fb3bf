package countdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{59, "00:59"},
		{60, "01:00"},
		{125, "02:05"},
		{3599, "59:59"},
		{3600, "01:00:00"},
		{3723, "01:02:03"},
		{86399, "23:59:59"},
		{360000, "100:00:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.seconds), "Format(%d)", tt.seconds)
	}
}

// Negative values keep Go's truncated division, so the sign shows up on
// every non-zero component and %02d counts it as one of the two digits.
func TestFormatNegative(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{-1, "00:-1"},
		{-5, "00:-5"},
		{-59, "00:-59"},
		{-60, "-1:00"},
		{-61, "-1:-1"},
		{-3599, "-59:-59"},
		{-3600, "-1:00:00"},
		{-3723, "-1:-2:-3"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.seconds), "Format(%d)", tt.seconds)
	}
}

func TestLine(t *testing.T) {
	assert.Equal(t, "T: 00:05", Line("T:", 5))
	assert.Equal(t, " 00:05", Line("", 5))
	assert.Equal(t, "Start in: 10:00", Plan{Prefix: "Start in:"}.Line(600))
}
