package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/moviekeeper/internal/models"
	"github.com/iudanet/moviekeeper/internal/server/storage"
)

// CreateMovie inserts a new catalog record
func (s *Storage) CreateMovie(ctx context.Context, movie *models.Movie) error {
	query := `
		INSERT INTO movies (id, owner_id, title, director, release_date,
			image_path, price, lat, lng, version, is_3d, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now()

	_, err := s.db.ExecContext(ctx, query,
		movie.ID,
		movie.OwnerID,
		movie.Title,
		movie.Director,
		movie.ReleaseDate,
		movie.ImagePath,
		movie.Price,
		movie.Lat,
		movie.Lng,
		movie.Version,
		movie.Is3D,
		now,
		now,
	)

	if err != nil {
		return fmt.Errorf("failed to insert movie: %w", err)
	}

	return nil
}

// GetMovie retrieves a catalog record by ID
func (s *Storage) GetMovie(ctx context.Context, id string) (*models.Movie, error) {
	query := `
		SELECT id, owner_id, title, director, release_date,
			image_path, price, lat, lng, version, is_3d
		FROM movies
		WHERE id = ?
	`

	movie := &models.Movie{}

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&movie.ID,
		&movie.OwnerID,
		&movie.Title,
		&movie.Director,
		&movie.ReleaseDate,
		&movie.ImagePath,
		&movie.Price,
		&movie.Lat,
		&movie.Lng,
		&movie.Version,
		&movie.Is3D,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}

	return movie, nil
}

// ListMovies retrieves a page of an owner's records ordered by title
func (s *Storage) ListMovies(ctx context.Context, ownerID string, filter storage.MovieFilter) ([]*models.Movie, error) {
	query := `
		SELECT id, owner_id, title, director, release_date,
			image_path, price, lat, lng, version, is_3d
		FROM movies
		WHERE owner_id = ?
	`
	args := []any{ownerID}

	if filter.Is3D != nil {
		query += " AND is_3d = ?"
		args = append(args, *filter.Is3D)
	}

	if filter.TitlePrefix != "" {
		// Экранируем спецсимволы LIKE, чтобы префикс сравнивался буквально
		query += " AND title LIKE ? ESCAPE '\\'"
		args = append(args, escapeLikePrefix(filter.TitlePrefix)+"%")
	}

	query += " ORDER BY title, id"

	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var movies []*models.Movie

	for rows.Next() {
		movie := &models.Movie{}
		if err := rows.Scan(
			&movie.ID,
			&movie.OwnerID,
			&movie.Title,
			&movie.Director,
			&movie.ReleaseDate,
			&movie.ImagePath,
			&movie.Price,
			&movie.Lat,
			&movie.Lng,
			&movie.Version,
			&movie.Is3D,
		); err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return movies, nil
}

// UpdateMovie applies an edit guarded by the record's version.
// Проверка и инкремент версии выполняются одним UPDATE, поэтому
// конкурирующие редактирования не могут пройти с одной и той же версией.
func (s *Storage) UpdateMovie(ctx context.Context, movie *models.Movie) error {
	query := `
		UPDATE movies
		SET title = ?, director = ?, release_date = ?, image_path = ?,
			price = ?, lat = ?, lng = ?, is_3d = ?,
			version = version + 1, updated_at = ?
		WHERE id = ? AND version = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		movie.Title,
		movie.Director,
		movie.ReleaseDate,
		movie.ImagePath,
		movie.Price,
		movie.Lat,
		movie.Lng,
		movie.Is3D,
		time.Now(),
		movie.ID,
		movie.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update movie: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		// Либо записи нет, либо версия устарела
		if _, err := s.GetMovie(ctx, movie.ID); err != nil {
			if errors.Is(err, storage.ErrMovieNotFound) {
				return storage.ErrMovieNotFound
			}
			return fmt.Errorf("failed to check movie existence: %w", err)
		}
		return storage.ErrVersionMismatch
	}

	movie.Version++

	return nil
}

// DeleteMovie removes a record; deleting an absent ID is a no-op
func (s *Storage) DeleteMovie(ctx context.Context, id string) error {
	query := `DELETE FROM movies WHERE id = ?`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	return nil
}

// escapeLikePrefix экранирует %, _ и \ в пользовательском префиксе
func escapeLikePrefix(prefix string) string {
	out := make([]byte, 0, len(prefix))
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		if c == '%' || c == '_' || c == '\\' {
			out = append(out, '\\')
		}
		out = append(out, c)
	}
	return string(out)
}
