package journey

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/HSellappan/RailFocus-sub001/internal/clock"
)

var testStart = time.Date(2024, 3, 18, 9, 0, 0, 0, time.UTC)

func testFactory() *Factory {
	return NewFactory(clock.NewMock(testStart))
}

func mustStation(t *testing.T, id string) Station {
	t.Helper()

	s, ok := StationByID(id)
	if !ok {
		t.Fatalf("station missing from catalog: %s", id)
	}

	return s
}

func TestCreateValidation(t *testing.T) {
	tokyo := mustStation(t, "tokyo")
	osaka := mustStation(t, "osaka")

	cases := []struct {
		name     string
		origin   Station
		dest     Station
		duration time.Duration
		tag      Tag
	}{
		{
			name:     "same origin and destination",
			origin:   tokyo,
			dest:     tokyo,
			duration: 25 * time.Minute,
		},
		{
			name:   "zero duration",
			origin: tokyo,
			dest:   osaka,
		},
		{
			name:     "negative duration",
			origin:   tokyo,
			dest:     osaka,
			duration: -time.Minute,
		},
		{
			name:     "unknown tag",
			origin:   tokyo,
			dest:     osaka,
			duration: 25 * time.Minute,
			tag:      Tag("gaming"),
		},
	}

	f := testFactory()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.Create(tc.origin, tc.dest, tc.duration, tc.tag)
			if !errors.Is(err, ErrInvalidJourney) {
				t.Fatalf("expected ErrInvalidJourney, got: %v", err)
			}
		})
	}
}

func TestCreateFreezesDistance(t *testing.T) {
	f := testFactory()

	j, err := f.Create(
		mustStation(t, "tokyo"),
		mustStation(t, "osaka"),
		25*time.Minute,
		TagWork,
	)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if j.ID == "" {
		t.Error("expected a journey id")
	}

	if j.Outcome != OutcomeInProgress {
		t.Errorf("expected in_progress, got: %v", j.Outcome)
	}

	if !j.StartedAt.Equal(testStart) {
		t.Errorf("expected start %v, got: %v", testStart, j.StartedAt)
	}

	// Tokyo–Osaka is roughly 249 miles great-circle
	if math.Abs(j.DistanceMiles-249) > 5 {
		t.Errorf("unexpected Tokyo–Osaka distance: %.1f", j.DistanceMiles)
	}

	if j.DistanceMiles != Distance(j.Origin, j.Destination) {
		t.Error("frozen distance must match the catalog computation")
	}
}

func TestDistanceSymmetry(t *testing.T) {
	london := mustStation(t, "london")
	paris := mustStation(t, "paris")

	if Distance(london, paris) != Distance(paris, london) {
		t.Error("distance must be symmetric")
	}

	if got := Distance(london, london); got != 0 {
		t.Errorf("distance to self must be zero, got: %v", got)
	}
}

func TestConclude(t *testing.T) {
	f := testFactory()

	j, err := f.Create(
		mustStation(t, "berlin"),
		mustStation(t, "zurich"),
		25*time.Minute,
		TagNone,
	)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	end := testStart.Add(25 * time.Minute)

	err = j.Conclude(OutcomeInProgress, 25*time.Minute, end)
	if !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("expected ErrNotTerminal, got: %v", err)
	}

	if err = j.Conclude(OutcomeCompleted, 25*time.Minute, end); err != nil {
		t.Fatalf("conclude failed: %v", err)
	}

	if j.ActualElapsed != 25*time.Minute {
		t.Errorf("expected 25m elapsed, got: %v", j.ActualElapsed)
	}

	if !j.CompletedAt.Equal(end) {
		t.Errorf("expected completion at %v, got: %v", end, j.CompletedAt)
	}

	err = j.Conclude(OutcomeInterrupted, time.Minute, end.Add(time.Minute))
	if !errors.Is(err, ErrAlreadyConcluded) {
		t.Fatalf("expected ErrAlreadyConcluded, got: %v", err)
	}

	if j.Outcome != OutcomeCompleted {
		t.Errorf("second conclude must not change the outcome: %v", j.Outcome)
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	c := Catalog()
	c[0].City = "Mutated"

	if fresh := Catalog(); fresh[0].City == "Mutated" {
		t.Error("catalog must not be mutable through the returned slice")
	}
}

func TestTagValid(t *testing.T) {
	for _, tag := range Tags() {
		if !tag.Valid() {
			t.Errorf("tag %q must be valid", tag)
		}
	}

	if !TagNone.Valid() {
		t.Error("the empty tag must be valid")
	}

	if Tag("gaming").Valid() {
		t.Error("unknown tags must be invalid")
	}
}
