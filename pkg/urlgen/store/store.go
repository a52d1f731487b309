// Package store persists expansion batches so a generated URL list can be
// listed, reloaded and deleted later.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Store persists batches.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores a batch. Overwrites any batch with the same ID.
	Save(ctx context.Context, b Batch) error

	// Load retrieves a batch with its URLs in their original order.
	// Returns ErrNotFound if the batch doesn't exist.
	Load(ctx context.Context, id string) (Batch, error)

	// List returns metadata for every batch, ordered by save sequence.
	// Returns an empty slice (not error) if nothing is stored.
	List(ctx context.Context) ([]Info, error)

	// Delete removes a batch. Returns nil if the batch doesn't exist.
	Delete(ctx context.Context, id string) error

	// Close releases any resources. Safe to call more than once.
	Close() error
}

// Batch is the result set of one template expansion.
type Batch struct {
	ID        string
	Template  string
	URLs      []string
	CreatedAt time.Time
}

// Info describes a batch without its URLs.
type Info struct {
	ID        string
	Template  string
	Count     int
	Sequence  int
	CreatedAt time.Time
}

// NewBatch returns a batch with a fresh random ID and the current UTC time.
func NewBatch(template string, urls []string) Batch {
	return Batch{
		ID:        uuid.NewString(),
		Template:  template,
		URLs:      urls,
		CreatedAt: time.Now().UTC(),
	}
}

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates a batch doesn't exist.
	ErrNotFound = errors.New("batch not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("batch store closed")

	// ErrEmptyID indicates Save was called with a batch that has no ID.
	ErrEmptyID = errors.New("batch ID required")
)
