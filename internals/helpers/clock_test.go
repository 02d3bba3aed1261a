// file: internals/helpers/clock_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		minutes int
	}{
		{"09:00", 540},
		{"09:00:00", 540}, // Postgres time scan format
		{"00:00", 0},
		{"23:59", 1439},
		{" 10:30 ", 630},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		require.NoErrorf(t, err, "input %q", tc.in)
		assert.Equal(t, tc.minutes, got, "input %q", tc.in)
	}
}

func TestParseClockRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "9", "24:00", "09:60", "ab:cd", "09:00:00:00"} {
		_, err := ParseClock(in)
		assert.Errorf(t, err, "input %q must fail", in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "00:00", FormatClock(0))
}

func TestNormalizeClock(t *testing.T) {
	got, err := NormalizeClock("09:00:00")
	require.NoError(t, err)
	assert.Equal(t, "09:00", got)
}
