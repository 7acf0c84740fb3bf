// Package countdown turns time expressions into second counts and drives
// step-quantized countdowns that emit one formatted line per tick.
package countdown

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	fieldSeparator = ":"
	fieldBase      = 60
	maxClockFields = 3
)

var clockFieldNames = [maxClockFields]string{"hour", "minute", "second"}
var clockFieldLimits = [maxClockFields]uint64{23, 59, 59}

// ParseRelative reads a colon separated duration right to left as seconds,
// minutes, hours and so on. "90" is 90 seconds, "1:02:03" is 3723.
func ParseRelative(text string) (uint32, error) {
	fields := strings.Split(text, fieldSeparator)

	var total uint64
	factor := uint64(1)
	for i := len(fields) - 1; i >= 0; i-- {
		value, err := strconv.ParseUint(fields[i], 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, newParseError(Overflow, text, fields[i], nil)
			}
			return 0, newParseError(InvalidNumber, text, fields[i], err)
		}
		if value != 0 {
			if factor > math.MaxUint32 || value > math.MaxUint32/factor {
				return 0, newParseError(Overflow, text, fields[i], nil)
			}
			total += value * factor
			if total > math.MaxUint32 {
				return 0, newParseError(Overflow, text, fields[i], nil)
			}
		}
		// factor stays below 2^38 so the multiplication cannot wrap
		if factor <= math.MaxUint32 {
			factor *= fieldBase
		}
	}
	return uint32(total), nil
}

// ParseUntil returns the seconds from now until the next occurrence of the
// clock time hour[:minute[:second]] in now's location. A time already passed
// today resolves to the same time tomorrow.
func ParseUntil(text string, now time.Time) (uint32, error) {
	fields := strings.Split(text, fieldSeparator)
	if len(fields) > maxClockFields {
		return 0, newParseError(InvalidClockField, text, "", nil)
	}

	var parts [maxClockFields]int
	for i, field := range fields {
		value, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			return 0, newParseError(InvalidClockField, text, clockFieldNames[i], err)
		}
		if value > clockFieldLimits[i] {
			return 0, newParseError(InvalidClockField, text, clockFieldNames[i], nil)
		}
		parts[i] = int(value)
	}

	target := time.Date(now.Year(), now.Month(), now.Day(), parts[0], parts[1], parts[2], now.Nanosecond(), now.Location())
	delta := target.Sub(now)
	if delta < 0 {
		target = target.AddDate(0, 0, 1)
		delta = target.Sub(now)
	}
	return uint32(delta / time.Second), nil
}

// Parse dispatches to ParseUntil when until is set and ParseRelative otherwise.
func Parse(text string, until bool, now time.Time) (uint32, error) {
	if until {
		return ParseUntil(text, now)
	}
	return ParseRelative(text)
}
