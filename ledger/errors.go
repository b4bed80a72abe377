package ledger

import "github.com/HSellappan/RailFocus-sub001/internal/apperr"

// ErrNotFinalized rejects an append of a journey that is still in
// progress. Only terminal journeys enter the ledger.
var ErrNotFinalized = &apperr.Error{
	Message: "journey %s is not finalized",
}
