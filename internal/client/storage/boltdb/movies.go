package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.etcd.io/bbolt"

	"github.com/iudanet/moviekeeper/internal/client/storage"
	"github.com/iudanet/moviekeeper/internal/models"
)

// reservedKeyPrefixes ключи, оставшиеся от старых версий схемы хранилища.
// Записи под такими ключами не являются фильмами и пропускаются при листинге.
var reservedKeyPrefixes = []string{"_id", "user", "undefined"}

// isReservedKey проверяет, относится ли ключ к зарезервированным
func isReservedKey(key []byte) bool {
	k := string(key)
	for _, prefix := range reservedKeyPrefixes {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// SaveMovie stores or updates a movie record by its ID
func (s *Storage) SaveMovie(ctx context.Context, movie *models.Movie) error {
	if movie.ID == "" {
		return fmt.Errorf("movie id is empty")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMovies)
		if bucket == nil {
			return fmt.Errorf("movies bucket not found")
		}

		// Сериализуем запись в JSON
		data, err := json.Marshal(movie)
		if err != nil {
			return fmt.Errorf("failed to marshal movie: %w", err)
		}

		// Сохраняем по ID
		if err := bucket.Put([]byte(movie.ID), data); err != nil {
			return fmt.Errorf("failed to save movie: %w", err)
		}

		return nil
	})
}

// GetMovie retrieves a movie by ID
func (s *Storage) GetMovie(ctx context.Context, id string) (*models.Movie, error) {
	var movie *models.Movie

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMovies)
		if bucket == nil {
			return fmt.Errorf("movies bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrMovieNotFound
		}

		movie = &models.Movie{}
		if err := json.Unmarshal(data, movie); err != nil {
			return fmt.Errorf("failed to unmarshal movie: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return movie, nil
}

// DeleteMovie removes a movie by ID.
// Deleting an absent ID is not an error.
func (s *Storage) DeleteMovie(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMovies)
		if bucket == nil {
			return fmt.Errorf("movies bucket not found")
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete movie: %w", err)
		}

		return nil
	})
}

// ListByOwner returns all movies of the given owner.
// Reserved legacy keys and entries that fail to decode are silently skipped.
func (s *Storage) ListByOwner(ctx context.Context, ownerID string, pred func(*models.Movie) bool) ([]*models.Movie, error) {
	var movies []*models.Movie

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMovies)
		if bucket == nil {
			return fmt.Errorf("movies bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			// Пропускаем ключи старых версий схемы
			if isReservedKey(k) {
				return nil
			}

			movie := &models.Movie{}
			if err := json.Unmarshal(v, movie); err != nil {
				// Нечитаемые записи пропускаем молча
				return nil
			}

			if movie.OwnerID != ownerID {
				return nil
			}
			if pred != nil && !pred(movie) {
				return nil
			}

			movies = append(movies, movie)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return movies, nil
}

// MigrateMovie re-keys a record after the server assigned a permanent ID.
// The old entry is removed and the record is stored under movie.ID
// within a single transaction.
func (s *Storage) MigrateMovie(ctx context.Context, oldID string, movie *models.Movie) error {
	if movie.ID == "" {
		return fmt.Errorf("movie id is empty")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMovies)
		if bucket == nil {
			return fmt.Errorf("movies bucket not found")
		}

		if err := bucket.Delete([]byte(oldID)); err != nil {
			return fmt.Errorf("failed to delete old key: %w", err)
		}

		data, err := json.Marshal(movie)
		if err != nil {
			return fmt.Errorf("failed to marshal movie: %w", err)
		}

		if err := bucket.Put([]byte(movie.ID), data); err != nil {
			return fmt.Errorf("failed to save movie: %w", err)
		}

		return nil
	})
}
