package store

import "github.com/HSellappan/RailFocus-sub001/journey"

// DB is the persistence collaborator for the journey ledger. The storage
// medium and layout are the implementation's concern; it must round-trip
// every journey field losslessly.
type DB interface {
	// SaveJourney durably stores a finalized journey.
	SaveJourney(j *journey.Journey) error
	// LoadJourneys returns every stored journey in chronological order.
	// A fresh store returns an empty slice, not an error.
	LoadJourneys() ([]journey.Journey, error)
	// Close ends the database connection.
	Close() error
}
