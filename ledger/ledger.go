// Package ledger keeps the durable record of finalized journeys and
// derives aggregate progress statistics from it.
package ledger

import (
	"iter"
	"log/slog"
	"time"

	"github.com/HSellappan/RailFocus-sub001/journey"
	"github.com/HSellappan/RailFocus-sub001/store"
)

// Policy controls how interrupted journeys count toward the focus totals.
// They never count toward the streak.
type Policy struct {
	CountInterrupted bool
}

// UserProgress is the aggregate view of the journey history.
type UserProgress struct {
	CurrentStreak  int           `json:"current_streak"`
	TotalFocusTime time.Duration `json:"total_focus_time"`
	TotalJourneys  int           `json:"total_journeys"`
}

// Ledger is the append-only record of finalized journeys. It is the sole
// owner of the finalized history; callers get copies, never internal
// slices. Writes must be serialized by the host (single-writer).
type Ledger struct {
	db       store.DB
	policy   Policy
	logger   *slog.Logger
	journeys []journey.Journey
	ids      map[string]struct{}
}

// New loads the stored history into a ledger. An empty store (first run)
// yields an empty ledger.
func New(db store.DB, policy Policy, logger *slog.Logger) (*Ledger, error) {
	journeys, err := db.LoadJourneys()
	if err != nil {
		return nil, err
	}

	l := &Ledger{
		db:     db,
		policy: policy,
		logger: logger,
		ids:    make(map[string]struct{}, len(journeys)),
	}

	for i := range journeys {
		j := journeys[i]

		if _, ok := l.ids[j.ID]; ok {
			continue
		}

		l.journeys = append(l.journeys, j)
		l.ids[j.ID] = struct{}{}
	}

	return l, nil
}

// Append records a finalized journey. Appending is idempotent by id: a
// journey that is already recorded is a no-op, which guards against a
// duplicate terminal-state notification from the coordinator. A journey
// that is still in progress is rejected.
//
// The in-memory record always succeeds; if the backing store cannot
// persist it the returned error matches store.ErrPersistence and the
// journey is only at risk of being lost on restart.
func (l *Ledger) Append(j *journey.Journey) error {
	if !j.Outcome.Terminal() {
		return ErrNotFinalized.Fmt(j.ID)
	}

	if _, ok := l.ids[j.ID]; ok {
		return nil
	}

	l.journeys = append(l.journeys, *j)
	l.ids[j.ID] = struct{}{}

	if err := l.db.SaveJourney(j); err != nil {
		l.logger.Warn("journey not persisted",
			slog.String("journey_id", j.ID),
			slog.Any("error", err),
		)

		return err
	}

	return nil
}

// Len returns the number of recorded journeys, including interrupted ones.
func (l *Ledger) Len() int {
	return len(l.journeys)
}

// Statistics computes the aggregate progress from the full history as of
// now. Interrupted journeys count toward the totals only when the policy
// says so.
func (l *Ledger) Statistics(now time.Time) UserProgress {
	var p UserProgress

	for i := range l.journeys {
		j := l.journeys[i]

		switch j.Outcome {
		case journey.OutcomeCompleted:
			p.TotalJourneys++
			p.TotalFocusTime += j.ActualElapsed
		case journey.OutcomeInterrupted:
			if l.policy.CountInterrupted {
				p.TotalJourneys++
				p.TotalFocusTime += j.ActualElapsed
			}
		}
	}

	p.CurrentStreak = l.currentStreak(now)

	return p
}

// History yields journeys most-recent-first. A non-positive limit yields
// the entire history. The sequence is finite and restartable: re-ranging
// over it gives a fresh, stable view absent concurrent appends.
func (l *Ledger) History(limit int) iter.Seq[journey.Journey] {
	return func(yield func(journey.Journey) bool) {
		n := 0

		for i := len(l.journeys) - 1; i >= 0; i-- {
			if limit > 0 && n >= limit {
				return
			}

			if !yield(l.journeys[i]) {
				return
			}

			n++
		}
	}
}

// Close releases the backing store.
func (l *Ledger) Close() error {
	return l.db.Close()
}
