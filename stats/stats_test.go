package stats

import (
	"log/slog"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sebdah/goldie/v2"

	"github.com/HSellappan/RailFocus-sub001/journey"
	"github.com/HSellappan/RailFocus-sub001/ledger"
)

var testNow = time.Date(2024, 3, 18, 21, 0, 0, 0, time.UTC)

type memDB struct {
	journeys []journey.Journey
}

func (d *memDB) SaveJourney(j *journey.Journey) error {
	d.journeys = append(d.journeys, *j)
	return nil
}

func (d *memDB) LoadJourneys() ([]journey.Journey, error) {
	return slices.Clone(d.journeys), nil
}

func (d *memDB) Close() error {
	return nil
}

func fixtureJourney(
	outcome journey.Outcome,
	elapsed time.Duration,
	completedAt time.Time,
	tag journey.Tag,
	miles float64,
) journey.Journey {
	origin, _ := journey.StationByID("tokyo")
	dest, _ := journey.StationByID("osaka")

	return journey.Journey{
		ID:              uuid.NewString(),
		Origin:          origin,
		Destination:     dest,
		PlannedDuration: elapsed,
		ActualElapsed:   elapsed,
		Tag:             tag,
		StartedAt:       completedAt.Add(-elapsed),
		CompletedAt:     completedAt,
		Outcome:         outcome,
		DistanceMiles:   miles,
	}
}

// fixtureLedger holds two completed journeys and one interrupted journey
// inside the reporting window, plus a completed journey from before it.
func fixtureLedger(t *testing.T) *ledger.Ledger {
	t.Helper()

	db := &memDB{journeys: []journey.Journey{
		fixtureJourney(
			journey.OutcomeCompleted,
			25*time.Minute,
			time.Date(2024, 3, 1, 9, 25, 0, 0, time.UTC),
			journey.TagNone,
			250,
		),
		fixtureJourney(
			journey.OutcomeCompleted,
			50*time.Minute,
			time.Date(2024, 3, 17, 10, 50, 0, 0, time.UTC),
			journey.TagStudy,
			250,
		),
		fixtureJourney(
			journey.OutcomeCompleted,
			25*time.Minute,
			time.Date(2024, 3, 18, 9, 25, 0, 0, time.UTC),
			journey.TagWork,
			250,
		),
		fixtureJourney(
			journey.OutcomeInterrupted,
			10*time.Minute,
			time.Date(2024, 3, 18, 12, 0, 0, 0, time.UTC),
			journey.TagNone,
			250,
		),
	}}

	l, err := ledger.New(db, ledger.Policy{}, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("ledger init failed: %v", err)
	}

	return l
}

func fixtureOpts() Opts {
	return Opts{
		StartTime: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 3, 19, 0, 0, 0, 0, time.UTC),
	}
}

func TestComputeAggregates(t *testing.T) {
	s := &Stats{Opts: fixtureOpts(), Ledger: fixtureLedger(t)}

	s.Compute(testNow)

	if s.totals.completed != 2 {
		t.Errorf("expected 2 completed, got: %d", s.totals.completed)
	}

	if s.totals.interrupted != 1 {
		t.Errorf("expected 1 interrupted, got: %d", s.totals.interrupted)
	}

	if s.totals.totalTime != 75*time.Minute {
		t.Errorf("expected 75m logged, got: %v", s.totals.totalTime)
	}

	if s.totals.totalDistance != 500 {
		t.Errorf("expected 500 miles, got: %v", s.totals.totalDistance)
	}

	// lifetime totals span the whole ledger, not just the window
	if s.progress.TotalJourneys != 3 {
		t.Errorf("expected 3 lifetime journeys, got: %d", s.progress.TotalJourneys)
	}

	if s.progress.CurrentStreak != 2 {
		t.Errorf("expected streak 2, got: %d", s.progress.CurrentStreak)
	}
}

func TestComputeTagFilter(t *testing.T) {
	s := &Stats{Opts: fixtureOpts(), Ledger: fixtureLedger(t)}
	s.Opts.Tag = journey.TagStudy

	s.Compute(testNow)

	if s.totals.completed != 1 {
		t.Errorf("expected 1 completed, got: %d", s.totals.completed)
	}

	if s.totals.totalTime != 50*time.Minute {
		t.Errorf("expected 50m logged, got: %v", s.totals.totalTime)
	}
}

func TestReportJSON(t *testing.T) {
	s := &Stats{Opts: fixtureOpts(), Ledger: fixtureLedger(t)}

	s.Compute(testNow)

	b, err := s.ToJSON()
	if err != nil {
		t.Fatalf("serializing report failed: %v", err)
	}

	g := goldie.New(t, goldie.WithFixtureDir("testdata"))

	g.Assert(t, "stats_report", b)
}

func TestShowEmptyPeriod(t *testing.T) {
	s := &Stats{
		Opts:   Opts{StartTime: testNow.AddDate(1, 0, 0), EndTime: testNow.AddDate(1, 0, 1)},
		Ledger: fixtureLedger(t),
	}

	s.Compute(testNow)

	var buf strings.Builder

	if err := s.Show(&buf); err != nil {
		t.Fatalf("show failed: %v", err)
	}

	if strings.TrimSpace(buf.String()) != noJourneysMsg {
		t.Errorf("expected the empty-period message, got: %q", buf.String())
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{25 * time.Minute, "25m"},
		{60 * time.Minute, "1h 0m"},
		{95 * time.Minute, "1h 35m"},
		{25*time.Minute + 40*time.Second, "26m"},
	}

	for _, tc := range cases {
		if got := formatDuration(tc.in); got != tc.want {
			t.Errorf("formatDuration(%v): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
