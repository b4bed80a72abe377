// Package journey defines focus journeys and the stations they run between.
// A journey is a single focus session themed as a train trip with a planned
// duration and, once finished, a terminal outcome.
package journey

import (
	"time"
)

// Outcome is the lifecycle classification of a journey.
type Outcome string

const (
	OutcomeInProgress  Outcome = "in_progress"
	OutcomeCompleted   Outcome = "completed"
	OutcomeInterrupted Outcome = "interrupted"
)

// Terminal reports whether the outcome is final.
func (o Outcome) Terminal() bool {
	return o == OutcomeCompleted || o == OutcomeInterrupted
}

// Tag classifies what a journey was spent on.
type Tag string

const (
	TagNone    Tag = ""
	TagWork    Tag = "work"
	TagStudy   Tag = "study"
	TagReading Tag = "reading"
	TagWriting Tag = "writing"
	TagRest    Tag = "rest"
)

// Tags returns the fixed set of selectable tags, excluding TagNone.
func Tags() []Tag {
	return []Tag{TagWork, TagStudy, TagReading, TagWriting, TagRest}
}

// Valid reports whether t is TagNone or a member of the fixed tag set.
func (t Tag) Valid() bool {
	if t == TagNone {
		return true
	}

	for _, v := range Tags() {
		if t == v {
			return true
		}
	}

	return false
}

// Journey is one focus session. DistanceMiles is frozen at creation time
// and never recomputed; ActualElapsed is the focused time recorded when the
// journey concludes.
type Journey struct {
	ID              string        `json:"id"`
	Origin          Station       `json:"origin"`
	Destination     Station       `json:"destination"`
	PlannedDuration time.Duration `json:"planned_duration"`
	ActualElapsed   time.Duration `json:"actual_elapsed"`
	Tag             Tag           `json:"tag,omitempty"`
	StartedAt       time.Time     `json:"started_at"`
	CompletedAt     time.Time     `json:"completed_at"`
	Outcome         Outcome       `json:"outcome"`
	DistanceMiles   float64       `json:"distance_miles"`
}

// Route describes the journey as "Origin → Destination".
func (j *Journey) Route() string {
	return j.Origin.City + " → " + j.Destination.City
}

// Conclude moves the journey to a terminal outcome, recording the focused
// time and the finish timestamp. A journey concludes exactly once: calling
// Conclude on an already finished journey, or with a non-terminal outcome,
// fails and changes nothing.
func (j *Journey) Conclude(
	outcome Outcome,
	elapsed time.Duration,
	at time.Time,
) error {
	if !outcome.Terminal() {
		return ErrNotTerminal.Fmt(outcome)
	}

	if j.Outcome != OutcomeInProgress {
		return ErrAlreadyConcluded.Fmt(j.ID, j.Outcome)
	}

	j.Outcome = outcome
	j.ActualElapsed = elapsed
	j.CompletedAt = at

	return nil
}
