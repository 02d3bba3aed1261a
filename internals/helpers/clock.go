// file: internals/helpers/clock.go
package helper

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock turns "HH:MM" (or "HH:MM:SS", seconds ignored) into minutes
// since midnight. Postgres time columns scan back as "HH:MM:SS" strings, so
// both forms must be accepted.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}

// FormatClock is the inverse of ParseClock for grid display.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NormalizeClock re-renders a clock string as "HH:MM" so "09:00:00" and
// "09:00" compare equal.
func NormalizeClock(s string) (string, error) {
	m, err := ParseClock(s)
	if err != nil {
		return "", err
	}
	return FormatClock(m), nil
}
