package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/HSellappan/RailFocus-sub001/journey"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(filepath.Join(t.TempDir(), "railfocus.db"))
	if err != nil {
		t.Fatalf("opening database failed: %v", err)
	}

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func testJourney(startedAt time.Time) journey.Journey {
	origin, _ := journey.StationByID("london")
	dest, _ := journey.StationByID("edinburgh")

	return journey.Journey{
		ID:              uuid.NewString(),
		Origin:          origin,
		Destination:     dest,
		PlannedDuration: 25 * time.Minute,
		ActualElapsed:   25 * time.Minute,
		Tag:             journey.TagWriting,
		StartedAt:       startedAt,
		CompletedAt:     startedAt.Add(25 * time.Minute),
		Outcome:         journey.OutcomeCompleted,
		DistanceMiles:   journey.Distance(origin, dest),
	}
}

func TestFreshStoreIsEmpty(t *testing.T) {
	c := newTestClient(t)

	journeys, err := c.LoadJourneys()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(journeys) != 0 {
		t.Errorf("expected an empty store, got %d journeys", len(journeys))
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	c := newTestClient(t)

	start := time.Date(2024, 3, 18, 9, 0, 0, 0, time.UTC)

	// saved out of order to verify key-ordered iteration
	second := testJourney(start.Add(2 * time.Hour))
	first := testJourney(start)

	for _, j := range []journey.Journey{second, first} {
		if err := c.SaveJourney(&j); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	got, err := c.LoadJourneys()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	want := []journey.Journey{first, second}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveIsKeyedByStartTime(t *testing.T) {
	c := newTestClient(t)

	j := testJourney(time.Date(2024, 3, 18, 9, 0, 0, 0, time.UTC))

	if err := c.SaveJourney(&j); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// a rewrite of the same journey overwrites in place
	j.ActualElapsed = 20 * time.Minute

	if err := c.SaveJourney(&j); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := c.LoadJourneys()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("expected 1 journey, got: %d", len(got))
	}

	if got[0].ActualElapsed != 20*time.Minute {
		t.Errorf("expected the rewrite to win, got: %v", got[0].ActualElapsed)
	}
}
