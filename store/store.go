// Package store connects to the journeys datastore.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/HSellappan/RailFocus-sub001/internal/apperr"
	"github.com/HSellappan/RailFocus-sub001/internal/timeutil"
	"github.com/HSellappan/RailFocus-sub001/journey"
)

const journeysBucket = "journeys"

var (
	// ErrPersistence signals that a ledger update could not be durably
	// stored. It is surfaced as a warning, never as a fatal failure: the
	// in-memory ledger remains authoritative for the current run.
	ErrPersistence = &apperr.Error{
		Message: "unable to persist ledger update",
	}

	errAlreadyRunning = &apperr.Error{
		Message: "is RailFocus already running? Only one instance can be active at a time",
	}
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// NewClient opens or creates the journeys database at dbPath.
func NewClient(dbPath string) (*Client, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		dbPath,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(journeysBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{db}, nil
}

// SaveJourney stores a journey keyed by its departure time so that cursor
// iteration yields chronological order.
func (c *Client) SaveJourney(j *journey.Journey) error {
	value, err := json.Marshal(j)
	if err != nil {
		return ErrPersistence.Wrap(err)
	}

	err = c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(journeysBucket)).
			Put(timeutil.ToKey(j.StartedAt), value)
	})
	if err != nil {
		return ErrPersistence.Wrap(err)
	}

	return nil
}

// LoadJourneys returns all stored journeys, oldest first.
func (c *Client) LoadJourneys() ([]journey.Journey, error) {
	var journeys []journey.Journey

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(journeysBucket)).Cursor()

		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			var j journey.Journey

			if err := json.Unmarshal(v, &j); err != nil {
				return err
			}

			journeys = append(journeys, j)
		}

		return nil
	})
	if err != nil {
		return nil, ErrPersistence.Wrap(err)
	}

	return journeys, nil
}
