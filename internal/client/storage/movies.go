package storage

import (
	"context"

	"github.com/iudanet/moviekeeper/internal/models"
)

//go:generate moq -out movies_mock.go . MovieStorage

// MovieStorage defines interface for the local movie mirror on client.
// The mirror is the fallback read/write path when the device is offline;
// one record is stored per key (movie ID).
type MovieStorage interface {
	// SaveMovie stores or updates a movie record by its ID.
	// Idempotent: repeated calls with the same ID converge to the same value.
	SaveMovie(ctx context.Context, movie *models.Movie) error

	// GetMovie retrieves a movie by ID
	// Returns ErrMovieNotFound if the movie doesn't exist
	GetMovie(ctx context.Context, id string) (*models.Movie, error)

	// DeleteMovie removes a movie by ID.
	// Idempotent: deleting an absent ID is not an error.
	DeleteMovie(ctx context.Context, id string) error

	// ListByOwner returns all movies whose OwnerID equals ownerID.
	// pred, when non-nil, additionally filters the result.
	// Entries under reserved legacy keys and entries that fail to decode
	// are silently skipped.
	ListByOwner(ctx context.Context, ownerID string, pred func(*models.Movie) bool) ([]*models.Movie, error)

	// MigrateMovie re-keys a record: removes the entry stored under oldID
	// and stores movie under its current (server-assigned) ID.
	// Used when a temporary offline ID is replaced after a successful sync.
	MigrateMovie(ctx context.Context, oldID string, movie *models.Movie) error
}
