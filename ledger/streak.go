package ledger

import (
	"time"

	"github.com/HSellappan/RailFocus-sub001/internal/timeutil"
	"github.com/HSellappan/RailFocus-sub001/journey"
)

// currentStreak counts the consecutive local calendar days, ending today
// or yesterday, that each contain at least one completed journey. A day
// with no session yet does not break an active streak until a full day has
// been skipped: if today is empty but yesterday is not, the streak still
// counts up to yesterday.
func (l *Ledger) currentStreak(now time.Time) int {
	days := make(map[int]struct{})

	for i := range l.journeys {
		j := l.journeys[i]

		if j.Outcome != journey.OutcomeCompleted {
			continue
		}

		days[timeutil.DayKey(j.CompletedAt)] = struct{}{}
	}

	day := timeutil.RoundToStart(now)

	// grace day: an empty today falls back to yesterday
	if _, ok := days[timeutil.DayKey(day)]; !ok {
		day = day.AddDate(0, 0, -1)
	}

	var streak int

	for {
		if _, ok := days[timeutil.DayKey(day)]; !ok {
			return streak
		}

		streak++

		day = day.AddDate(0, 0, -1)
	}
}
