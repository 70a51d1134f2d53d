package prayer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock_Accepted(t *testing.T) {
	cases := []struct {
		in     string
		hour   int
		minute int
	}{
		{"05:15", 5, 15},
		{"5:15", 5, 15},
		{"05:15 AM", 5, 15},
		{"5:15 PM", 17, 15},
		{"5:15pm", 17, 15},
		{"12:00 AM", 0, 0},
		{"12:30 PM", 12, 30},
		{"00:00", 0, 0},
		{"23:59", 23, 59},
		{" 18:45 ", 18, 45},
	}
	for _, tc := range cases {
		clock, ok := ParseClock(tc.in)
		require.True(t, ok, "expected %q to parse", tc.in)
		assert.Equal(t, tc.hour, clock.Hour, "hour of %q", tc.in)
		assert.Equal(t, tc.minute, clock.Minute, "minute of %q", tc.in)
	}
}

func TestParseClock_Rejected(t *testing.T) {
	cases := []string{
		"",
		"abc",
		"25:00",
		"05:70",
		"24:00",
		"5:5",     // minutes must be two digits
		"05-15",   // wrong separator
		"05:15:00",
		"05:15 XM",
		"noon",
		"13:00 PM", // converts past 23
	}
	for _, in := range cases {
		_, ok := ParseClock(in)
		assert.False(t, ok, "expected %q to be rejected", in)
	}
}

func TestMinutesSinceMidnight(t *testing.T) {
	clock, ok := ParseClock("13:05")
	require.True(t, ok)
	assert.Equal(t, 13*60+5, clock.MinutesSinceMidnight())
}

func TestTo12Hour(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"00:15", "12:15 AM"},
		{"05:15", "05:15 AM"},
		{"12:00", "12:00 PM"},
		{"13:30", "01:30 PM"},
		{"23:59", "11:59 PM"},
		// already 12-hour: returned unchanged, casing preserved
		{"5:15 PM", "5:15 PM"},
		{"5:15 am", "5:15 am"},
		// no colon: best effort is the identity
		{"noon", "noon"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, To12Hour(tc.in), "input %q", tc.in)
	}
}
