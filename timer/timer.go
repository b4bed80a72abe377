// Package timer implements the countdown state machine for a single focus
// session. It tracks elapsed time from an externally supplied clock and
// never reads the wall clock itself.
package timer

import "time"

// State is the lifecycle state of the timer.
type State string

const (
	StateIdle        State = "idle"
	StateRunning     State = "running"
	StatePaused      State = "paused"
	StateCompleted   State = "completed"
	StateInterrupted State = "interrupted"
)

// Terminal reports whether no operation except Reset is valid from s.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateInterrupted
}

// Timer counts down a single session. Elapsed time accumulates only while
// running; paused intervals contribute nothing. Completed and interrupted
// are terminal and can only be left through Reset.
type Timer struct {
	state       State
	planned     time.Duration
	accumulated time.Duration
	lastResume  time.Time
}

// Snapshot is a consistent read of the timer at a single instant. Progress
// is always recomputed from elapsed/planned, never stored independently.
type Snapshot struct {
	State     State
	Planned   time.Duration
	Elapsed   time.Duration
	Remaining time.Duration
	Progress  float64
}

// New returns an idle timer.
func New() *Timer {
	return &Timer{state: StateIdle}
}

func (t *Timer) State() State {
	return t.state
}

func (t *Timer) Planned() time.Duration {
	return t.planned
}

// Start begins a countdown of the given duration. Valid only from idle.
func (t *Timer) Start(now time.Time, duration time.Duration) error {
	if t.state != StateIdle {
		return ErrInvalidTransition.Fmt(t.state, StateRunning)
	}

	t.planned = duration
	t.accumulated = 0
	t.lastResume = now
	t.state = StateRunning

	return nil
}

// Pause freezes the elapsed time. Valid only from running; a double pause
// fails and changes nothing.
func (t *Timer) Pause(now time.Time) error {
	if t.state != StateRunning {
		return ErrInvalidTransition.Fmt(t.state, StatePaused)
	}

	t.accumulated += now.Sub(t.lastResume)
	t.state = StatePaused

	return nil
}

// Resume continues a paused countdown. Time spent paused does not count
// toward the elapsed total.
func (t *Timer) Resume(now time.Time) error {
	if t.state != StatePaused {
		return ErrInvalidTransition.Fmt(t.state, StateRunning)
	}

	t.lastResume = now
	t.state = StateRunning

	return nil
}

// Interrupt ends the session early, freezing the elapsed time at its
// current value. Valid from running or paused.
func (t *Timer) Interrupt(now time.Time) error {
	if t.state != StateRunning && t.state != StatePaused {
		return ErrInvalidTransition.Fmt(t.state, StateInterrupted)
	}

	t.accumulated = t.elapsedAt(now)
	t.state = StateInterrupted

	return nil
}

// Reset returns the timer to idle from any state.
func (t *Timer) Reset() {
	*t = Timer{state: StateIdle}
}

// Tick recomputes the elapsed time at now. When the planned duration has
// been reached while running, the timer self-transitions to completed with
// the elapsed time clamped to the planned duration; this is the sole path
// to natural completion. Ticks after completion return the same terminal
// snapshot.
func (t *Timer) Tick(now time.Time) Snapshot {
	if t.state == StateRunning && t.elapsedAt(now) >= t.planned {
		t.accumulated = t.planned
		t.state = StateCompleted
	}

	return t.snapshot(now)
}

// SnapshotAt is a pure read of the timer at now. Unlike Tick it never
// transitions state, so a timer that has run past its planned duration
// still reads as running until the next Tick completes it.
func (t *Timer) SnapshotAt(now time.Time) Snapshot {
	return t.snapshot(now)
}

// Elapsed returns the time counted so far, excluding paused intervals and
// clamped to the planned duration.
func (t *Timer) Elapsed(now time.Time) time.Duration {
	return t.elapsedAt(now)
}

// Remaining returns the time left until natural completion.
func (t *Timer) Remaining(now time.Time) time.Duration {
	r := t.planned - t.elapsedAt(now)
	if r < 0 {
		r = 0
	}

	return r
}

// Progress returns the fraction of the planned duration elapsed, in [0,1].
func (t *Timer) Progress(now time.Time) float64 {
	if t.planned <= 0 {
		return 0
	}

	p := float64(t.elapsedAt(now)) / float64(t.planned)
	if p > 1 {
		p = 1
	}

	return p
}

func (t *Timer) elapsedAt(now time.Time) time.Duration {
	e := t.accumulated

	if t.state == StateRunning {
		e += now.Sub(t.lastResume)
	}

	if t.planned > 0 && e > t.planned {
		e = t.planned
	}

	return e
}

func (t *Timer) snapshot(now time.Time) Snapshot {
	return Snapshot{
		State:     t.state,
		Planned:   t.planned,
		Elapsed:   t.elapsedAt(now),
		Remaining: t.Remaining(now),
		Progress:  t.Progress(now),
	}
}
