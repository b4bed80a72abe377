package coordinator

import "github.com/HSellappan/RailFocus-sub001/internal/apperr"

var (
	// ErrSessionAlreadyActive rejects starting a journey while another is
	// in progress. The caller retries after the active journey ends.
	ErrSessionAlreadyActive = &apperr.Error{
		Message: "a journey is already in progress",
	}

	// ErrNoActiveSession rejects operating on a journey when none is in
	// progress.
	ErrNoActiveSession = &apperr.Error{
		Message: "no journey is in progress",
	}
)
