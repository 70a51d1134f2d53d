package prayer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCountdown(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{45, "00:45"},
		{0, "00:00"},
		{-5, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{1799, "29:59"},
		{1800, "30:00"},
		{3599, "59:59"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{6300, "01:45:00"},
		{1430 * 60, "23:50:00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatCountdown(tc.seconds), "seconds %d", tc.seconds)
	}
}

func TestUrgent(t *testing.T) {
	assert.True(t, Urgent("29:59"))
	assert.True(t, Urgent("00:45"))
	assert.True(t, Urgent("00:00"))
	assert.False(t, Urgent("30:00"))
	assert.False(t, Urgent("59:59"))
	assert.False(t, Urgent("01:00:00"))
	assert.False(t, Urgent("02:15:00"))
	assert.False(t, Urgent("not a countdown"))
}

func TestUrgentMatchesThreshold(t *testing.T) {
	// the string-derived flag must agree with the 30-minute rule
	for _, seconds := range []int{0, 1, 1799, 1800, 1801, 3599, 3600, 7200} {
		assert.Equal(t, seconds < 1800, Urgent(FormatCountdown(seconds)), "seconds %d", seconds)
	}
}
