package storage

import (
	"context"

	"github.com/iudanet/moviekeeper/internal/models"
)

// MovieFilter описывает серверную пагинацию и фильтрацию списка
type MovieFilter struct {
	Is3D        *bool  // nil — без фильтра по 3D
	TitlePrefix string // пустая строка — без фильтра по названию
	Offset      int
	Limit       int
}

// MovieStorage defines interface for catalog record persistence
type MovieStorage interface {
	// CreateMovie inserts a new record. The caller assigns ID and the
	// initial version.
	CreateMovie(ctx context.Context, movie *models.Movie) error

	// GetMovie retrieves a record by ID
	// Returns ErrMovieNotFound if record doesn't exist
	GetMovie(ctx context.Context, id string) (*models.Movie, error)

	// ListMovies retrieves a page of records for an owner
	// Returns empty slice if nothing matches
	ListMovies(ctx context.Context, ownerID string, filter MovieFilter) ([]*models.Movie, error)

	// UpdateMovie applies the edit only when the submitted version
	// matches the stored one, incrementing the version atomically.
	// Returns ErrVersionMismatch on a stale version and
	// ErrMovieNotFound for an unknown ID. On success movie.Version
	// holds the new version.
	UpdateMovie(ctx context.Context, movie *models.Movie) error

	// DeleteMovie removes a record; deleting an absent ID is not an error
	DeleteMovie(ctx context.Context, id string) error
}
