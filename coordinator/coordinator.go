// Package coordinator mediates between user intent, the session timer, and
// the journey ledger. It is the only component that holds a live timer and
// a pending journey at the same time, and it enforces at most one
// in-progress journey.
package coordinator

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/HSellappan/RailFocus-sub001/internal/clock"
	"github.com/HSellappan/RailFocus-sub001/journey"
	"github.com/HSellappan/RailFocus-sub001/ledger"
	"github.com/HSellappan/RailFocus-sub001/timer"
)

// Snapshot is the read-only view published to observers. It is always
// internally consistent: observers never see a state mid-transition.
type Snapshot struct {
	Timer    timer.Snapshot
	Active   *journey.Journey
	Progress ledger.UserProgress
}

// Coordinator orchestrates one SessionTimer and one JourneyLedger. All
// methods are synchronous, bounded computations; any waiting between ticks
// belongs to the host.
type Coordinator struct {
	mu        sync.Mutex
	clock     clock.Clock
	factory   *journey.Factory
	timer     *timer.Timer
	ledger    *ledger.Ledger
	logger    *slog.Logger
	active    *journey.Journey
	observers []func(Snapshot)
	arrivals  []func(journey.Journey)
}

// New constructs a coordinator with its collaborators injected. Lifecycle
// is explicit: construct at app start, Close at app end.
func New(c clock.Clock, l *ledger.Ledger, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		clock:   c,
		factory: journey.NewFactory(c),
		timer:   timer.New(),
		ledger:  l,
		logger:  logger,
	}
}

// Subscribe registers an observer called after every state change with the
// settled snapshot. Observers must not mutate coordinator state.
func (c *Coordinator) Subscribe(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.observers = append(c.observers, fn)
}

// OnArrival registers a callback invoked exactly once per naturally
// completed journey.
func (c *Coordinator) OnArrival(fn func(journey.Journey)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.arrivals = append(c.arrivals, fn)
}

// StartJourney validates and begins a new journey between two catalog
// stations, starting the countdown with the same duration.
func (c *Coordinator) StartJourney(
	originID, destinationID string,
	duration time.Duration,
	tag journey.Tag,
) (Snapshot, error) {
	c.mu.Lock()

	if c.active != nil {
		defer c.mu.Unlock()
		return c.snapshotLocked(), ErrSessionAlreadyActive
	}

	origin, ok := journey.StationByID(originID)
	if !ok {
		defer c.mu.Unlock()
		return c.snapshotLocked(), journey.ErrUnknownStation.Fmt(originID)
	}

	destination, ok := journey.StationByID(destinationID)
	if !ok {
		defer c.mu.Unlock()
		return c.snapshotLocked(), journey.ErrUnknownStation.Fmt(destinationID)
	}

	j, err := c.factory.Create(origin, destination, duration, tag)
	if err != nil {
		defer c.mu.Unlock()
		return c.snapshotLocked(), err
	}

	if err := c.timer.Start(c.clock.Now(), duration); err != nil {
		defer c.mu.Unlock()
		return c.snapshotLocked(), err
	}

	c.active = j

	c.logger.Info("journey started",
		slog.String("journey_id", j.ID),
		slog.String("route", j.Route()),
		slog.Duration("duration", duration),
	)

	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.publish(snap)

	return snap, nil
}

// Pause delegates to the timer; coordinator state does not change when the
// timer rejects the transition.
func (c *Coordinator) Pause() error {
	c.mu.Lock()

	if err := c.timer.Pause(c.clock.Now()); err != nil {
		c.mu.Unlock()
		return err
	}

	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.publish(snap)

	return nil
}

// Resume delegates to the timer; coordinator state does not change when
// the timer rejects the transition.
func (c *Coordinator) Resume() error {
	c.mu.Lock()

	if err := c.timer.Resume(c.clock.Now()); err != nil {
		c.mu.Unlock()
		return err
	}

	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.publish(snap)

	return nil
}

// InterruptJourney ends the active journey early and records it. The
// interruption itself always succeeds when a journey is active; a non-nil
// error after a successful interruption matches store.ErrPersistence and
// should be surfaced as a non-blocking warning.
func (c *Coordinator) InterruptJourney() (journey.Journey, error) {
	c.mu.Lock()

	if c.active == nil {
		c.mu.Unlock()
		return journey.Journey{}, ErrNoActiveSession
	}

	now := c.clock.Now()

	if err := c.timer.Interrupt(now); err != nil {
		c.mu.Unlock()
		return journey.Journey{}, err
	}

	j, persistErr := c.finalizeLocked(journey.OutcomeInterrupted, now)

	c.logger.Info("journey interrupted",
		slog.String("journey_id", j.ID),
		slog.Duration("elapsed", j.ActualElapsed),
	)

	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.publish(snap)

	return j, persistErr
}

// OnTick drives the countdown; the host invokes it on a regular cadence,
// nominally once per second. When the timer reaches its planned duration
// the active journey is finalized exactly once, appended to the ledger,
// and the arrival callbacks fire. The returned snapshot still shows the
// completed timer and journey so the observer can render the arrival.
func (c *Coordinator) OnTick(now time.Time) Snapshot {
	c.mu.Lock()

	ts := c.timer.Tick(now)

	if ts.State != timer.StateCompleted || c.active == nil {
		snap := c.snapshotLocked()
		c.mu.Unlock()

		return snap
	}

	j, _ := c.finalizeLocked(journey.OutcomeCompleted, now)

	c.logger.Info("journey completed",
		slog.String("journey_id", j.ID),
		slog.String("route", j.Route()),
	)

	// arrival snapshot: terminal timer state plus the finished journey
	snap := Snapshot{
		Timer:    ts,
		Active:   &j,
		Progress: c.ledger.Statistics(now),
	}
	arrivals := c.arrivals
	c.mu.Unlock()

	c.publish(snap)

	for _, fn := range arrivals {
		fn(j)
	}

	return snap
}

// Snapshot returns the current consistent view without advancing state.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshotLocked()
}

// Active reports whether a journey is in progress.
func (c *Coordinator) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.active != nil
}

// Close flushes and releases the ledger's backing store.
func (c *Coordinator) Close() error {
	return c.ledger.Close()
}

// finalizeLocked concludes the active journey with a terminal outcome,
// appends it to the ledger, clears the active slot, and resets the timer
// so a new journey can start. The caller holds the mutex.
func (c *Coordinator) finalizeLocked(
	outcome journey.Outcome,
	now time.Time,
) (journey.Journey, error) {
	elapsed := c.timer.Elapsed(now)

	if err := c.active.Conclude(outcome, elapsed, now); err != nil {
		// the sole caller guards against double finalization
		c.logger.Error("conclude failed", slog.Any("error", err))
	}

	j := *c.active

	persistErr := c.ledger.Append(&j)

	c.active = nil
	c.timer.Reset()

	return j, persistErr
}

func (c *Coordinator) snapshotLocked() Snapshot {
	now := c.clock.Now()

	snap := Snapshot{
		Timer:    c.timer.SnapshotAt(now),
		Progress: c.ledger.Statistics(now),
	}

	if c.active != nil {
		j := *c.active
		snap.Active = &j
	}

	return snap
}

func (c *Coordinator) publish(snap Snapshot) {
	c.mu.Lock()
	observers := slices.Clone(c.observers)
	c.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
}
