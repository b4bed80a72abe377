package journey

import (
	"time"

	"github.com/google/uuid"

	"github.com/HSellappan/RailFocus-sub001/internal/clock"
)

// Factory validates and constructs journeys. It holds no state beyond the
// injected clock.
type Factory struct {
	clock clock.Clock
}

func NewFactory(c clock.Clock) *Factory {
	return &Factory{clock: c}
}

// Create builds a new in-progress journey. The origin and destination must
// differ, the planned duration must be positive, and the tag must belong to
// the fixed set. The great-circle distance is computed once here and frozen
// into the journey.
func (f *Factory) Create(
	origin, destination Station,
	duration time.Duration,
	tag Tag,
) (*Journey, error) {
	if origin.ID == destination.ID {
		return nil, ErrInvalidJourney.Fmt(
			"origin and destination must differ",
		)
	}

	if duration <= 0 {
		return nil, ErrInvalidJourney.Fmt("duration must be positive")
	}

	if !tag.Valid() {
		return nil, ErrInvalidJourney.Fmt("unknown tag: " + string(tag))
	}

	return &Journey{
		ID:              uuid.NewString(),
		Origin:          origin,
		Destination:     destination,
		PlannedDuration: duration,
		Tag:             tag,
		StartedAt:       f.clock.Now(),
		Outcome:         OutcomeInProgress,
		DistanceMiles:   Distance(origin, destination),
	}, nil
}
