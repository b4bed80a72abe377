package journey

import "github.com/HSellappan/RailFocus-sub001/internal/apperr"

var (
	// ErrInvalidJourney rejects a malformed journey request before any
	// state is created.
	ErrInvalidJourney = &apperr.Error{
		Message: "invalid journey: %s",
	}

	// ErrUnknownStation indicates that a station id is not in the catalog.
	ErrUnknownStation = &apperr.Error{
		Message: "unknown station: %s",
	}

	ErrNotTerminal = &apperr.Error{
		Message: "cannot conclude a journey with non-terminal outcome %q",
	}

	ErrAlreadyConcluded = &apperr.Error{
		Message: "journey %s already concluded as %s",
	}
)
