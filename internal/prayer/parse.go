package prayer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ClockTime is a parsed time of day.
type ClockTime struct {
	Hour   int
	Minute int
}

var (
	re12Hour = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*(AM|PM)$`)
	re24Hour = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// ParseClock parses a prayer time string in either 24-hour ("05:15", "17:00")
// or 12-hour ("5:15 PM", case-insensitive) form. Both formats go through this
// one parser so the countdown and the display conversion never disagree.
// Returns ok=false for any other shape or for out-of-range hour/minute.
func ParseClock(s string) (ClockTime, bool) {
	s = strings.TrimSpace(s)

	if m := re12Hour.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		meridiem := strings.ToUpper(m[3])
		if meridiem == "AM" {
			if hour == 12 {
				hour = 0
			}
		} else if hour != 12 {
			hour += 12
		}
		return checkRange(hour, minute)
	}

	if m := re24Hour.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		return checkRange(hour, minute)
	}

	return ClockTime{}, false
}

func checkRange(hour, minute int) (ClockTime, bool) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, false
	}
	return ClockTime{Hour: hour, Minute: minute}, true
}

// MinutesSinceMidnight returns the time of day in whole minutes.
func (c ClockTime) MinutesSinceMidnight() int {
	return c.Hour*60 + c.Minute
}

// To12Hour converts a 24-hour "HH:MM" string to zero-padded "HH:MM AM/PM".
// Strings that already carry an AM/PM marker are returned unchanged, as are
// strings without a colon (best effort, no validation beyond the split).
func To12Hour(s string) string {
	upper := strings.ToUpper(s)
	if strings.Contains(upper, "AM") || strings.Contains(upper, "PM") {
		return s
	}

	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return s
	}
	hour, _ := strconv.Atoi(strings.TrimSpace(parts[0]))
	minute, _ := strconv.Atoi(strings.TrimSpace(parts[1]))

	meridiem := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		meridiem = "PM"
	case hour > 12:
		hour -= 12
		meridiem = "PM"
	}
	return fmt.Sprintf("%02d:%02d %s", hour, minute, meridiem)
}
