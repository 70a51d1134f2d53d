package prayer

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const minutesPerDay = 24 * 60

// DailyTimes holds one day's prayer times as the raw strings they were
// configured with. Empty fields mean that prayer has no configured time and
// is excluded from scheduling.
type DailyTimes struct {
	Fajr    string
	Dhuhr   string
	Asr     string
	Maghrib string
	Isha    string
	Jummah  string
}

// NextPrayer is the soonest upcoming prayer relative to a reference instant.
type NextPrayer struct {
	Name             string
	Time             string // the original configured string
	SecondsRemaining int
}

type candidate struct {
	name string
	raw  string
}

// ComputeNextPrayer returns the nearest future prayer occurrence, or nil when
// no configured time parses. On Fridays Jummah takes Dhuhr's slot in the
// candidate list; a blank Jummah is simply dropped, it never falls back to
// Dhuhr. Times at or before now wrap to tomorrow. The weekday used for the
// Jummah substitution is always now's weekday, even for wrapped candidates.
func ComputeNextPrayer(times DailyTimes, now time.Time) *NextPrayer {
	isFriday := now.Weekday() == time.Friday

	candidates := make([]candidate, 0, 5)
	candidates = append(candidates, candidate{"Fajr", times.Fajr})
	if isFriday {
		candidates = append(candidates, candidate{"Jummah", times.Jummah})
	} else {
		candidates = append(candidates, candidate{"Dhuhr", times.Dhuhr})
	}
	candidates = append(candidates,
		candidate{"Asr", times.Asr},
		candidate{"Maghrib", times.Maghrib},
		candidate{"Isha", times.Isha},
	)

	currentMinutes := now.Hour()*60 + now.Minute()

	var best *NextPrayer
	bestDiff := 0
	for _, c := range candidates {
		if strings.TrimSpace(c.raw) == "" {
			continue
		}
		clock, ok := ParseClock(c.raw)
		if !ok {
			log.Debug().Str("prayer", c.name).Str("time", c.raw).Msg("skipping unparseable prayer time")
			continue
		}

		minutes := clock.MinutesSinceMidnight()
		if minutes <= currentMinutes {
			minutes += minutesPerDay
		}
		diff := minutes - currentMinutes

		// First-seen wins on ties: only a strictly smaller diff replaces the
		// current best, in fixed candidate order.
		if best == nil || diff < bestDiff {
			best = &NextPrayer{Name: c.name, Time: c.raw}
			bestDiff = diff
		}
	}

	if best == nil {
		return nil
	}
	best.SecondsRemaining = bestDiff*60 - now.Second()
	return best
}
