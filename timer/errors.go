package timer

import "github.com/HSellappan/RailFocus-sub001/internal/apperr"

// ErrInvalidTransition rejects an operation that is not legal in the
// timer's current state. The operation has no side effect.
var ErrInvalidTransition = &apperr.Error{
	Message: "invalid timer transition: %s -> %s",
}
