package prayer

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCountdown renders remaining seconds as "HH:MM:SS" when an hour or
// more remains, "MM:SS" otherwise. Values at or below zero render "00:00";
// second-level truncation can land exactly on the boundary.
func FormatCountdown(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// Urgent reports whether a formatted countdown is under the 30-minute
// threshold. It works on the formatted string: "MM:SS" is urgent when the
// minutes read under 30, "HH:MM:SS" only with zero hours.
func Urgent(countdown string) bool {
	parts := strings.Split(countdown, ":")
	switch len(parts) {
	case 2:
		minutes, err := strconv.Atoi(parts[0])
		return err == nil && minutes < 30
	case 3:
		hours, err := strconv.Atoi(parts[0])
		if err != nil || hours != 0 {
			return false
		}
		minutes, err := strconv.Atoi(parts[1])
		return err == nil && minutes < 30
	}
	return false
}
