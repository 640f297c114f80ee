package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/moviekeeper/internal/models"
	"github.com/iudanet/moviekeeper/internal/server/storage"
)

func createTestMovie(t *testing.T, ctx context.Context, s *Storage, ownerID, title string, is3D bool) *models.Movie {
	movie := &models.Movie{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Title:       title,
		Director:    "Test Director",
		ReleaseDate: time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC),
		Price:       9.99,
		Lat:         34.05,
		Lng:         -118.24,
		Version:     0,
		Is3D:        is3D,
	}

	err := s.CreateMovie(ctx, movie)
	require.NoError(t, err)

	return movie
}

func TestMovieStorage_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ownerID := createTestUser(t, ctx, s)
	movie := createTestMovie(t, ctx, s, ownerID, "Inception", true)

	retrieved, err := s.GetMovie(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, movie.ID, retrieved.ID)
	assert.Equal(t, movie.OwnerID, retrieved.OwnerID)
	assert.Equal(t, movie.Title, retrieved.Title)
	assert.Equal(t, movie.Director, retrieved.Director)
	assert.Equal(t, movie.Price, retrieved.Price)
	assert.Equal(t, movie.Lat, retrieved.Lat)
	assert.Equal(t, movie.Lng, retrieved.Lng)
	assert.Equal(t, int64(0), retrieved.Version)
	assert.True(t, retrieved.Is3D)
	assert.True(t, movie.ReleaseDate.Equal(retrieved.ReleaseDate))
}

func TestMovieStorage_GetMovie_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	retrieved, err := s.GetMovie(ctx, "nonexistent")
	assert.ErrorIs(t, err, storage.ErrMovieNotFound)
	assert.Nil(t, retrieved)
}

func TestMovieStorage_ListMovies(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ownerID := createTestUser(t, ctx, s)
	otherID := createTestUser(t, ctx, s)

	createTestMovie(t, ctx, s, ownerID, "Avatar", true)
	createTestMovie(t, ctx, s, ownerID, "Alien", false)
	createTestMovie(t, ctx, s, ownerID, "Blade Runner", false)
	createTestMovie(t, ctx, s, otherID, "Amelie", false) // чужая запись

	boolPtr := func(b bool) *bool { return &b }

	tests := []struct {
		filter     storage.MovieFilter
		name       string
		wantTitles []string
	}{
		{
			name:       "all records for owner ordered by title",
			filter:     storage.MovieFilter{},
			wantTitles: []string{"Alien", "Avatar", "Blade Runner"},
		},
		{
			name:       "filter by 3d",
			filter:     storage.MovieFilter{Is3D: boolPtr(true)},
			wantTitles: []string{"Avatar"},
		},
		{
			name:       "filter by 2d",
			filter:     storage.MovieFilter{Is3D: boolPtr(false)},
			wantTitles: []string{"Alien", "Blade Runner"},
		},
		{
			name:       "filter by title prefix",
			filter:     storage.MovieFilter{TitlePrefix: "A"},
			wantTitles: []string{"Alien", "Avatar"},
		},
		{
			name:       "prefix matches nothing",
			filter:     storage.MovieFilter{TitlePrefix: "Zzz"},
			wantTitles: []string{},
		},
		{
			name:       "pagination first page",
			filter:     storage.MovieFilter{Offset: 0, Limit: 2},
			wantTitles: []string{"Alien", "Avatar"},
		},
		{
			name:       "pagination second page",
			filter:     storage.MovieFilter{Offset: 2, Limit: 2},
			wantTitles: []string{"Blade Runner"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movies, err := s.ListMovies(ctx, ownerID, tt.filter)
			require.NoError(t, err)

			titles := make([]string, 0, len(movies))
			for _, m := range movies {
				titles = append(titles, m.Title)
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestMovieStorage_ListMovies_LikeEscaping(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ownerID := createTestUser(t, ctx, s)
	createTestMovie(t, ctx, s, ownerID, "100% Wolf", false)
	createTestMovie(t, ctx, s, ownerID, "1001 Nights", false)

	// Символ % в префиксе должен сравниваться буквально
	movies, err := s.ListMovies(ctx, ownerID, storage.MovieFilter{TitlePrefix: "100%"})
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "100% Wolf", movies[0].Title)
}

func TestMovieStorage_UpdateMovie(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ownerID := createTestUser(t, ctx, s)
	movie := createTestMovie(t, ctx, s, ownerID, "Original", false)

	movie.Title = "Updated"
	movie.Price = 19.99
	err := s.UpdateMovie(ctx, movie)
	require.NoError(t, err)
	assert.Equal(t, int64(1), movie.Version)

	retrieved, err := s.GetMovie(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated", retrieved.Title)
	assert.Equal(t, 19.99, retrieved.Price)
	assert.Equal(t, int64(1), retrieved.Version)
}

func TestMovieStorage_UpdateMovie_VersionMismatch(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ownerID := createTestUser(t, ctx, s)
	movie := createTestMovie(t, ctx, s, ownerID, "Contested", false)

	// Первое редактирование проходит и поднимает версию до 1
	first := movie.Clone()
	first.Title = "First Edit"
	require.NoError(t, s.UpdateMovie(ctx, first))

	// Второе редактирование с устаревшей версией 0 отклоняется
	stale := movie.Clone()
	stale.Title = "Stale Edit"
	assert.ErrorIs(t, s.UpdateMovie(ctx, stale), storage.ErrVersionMismatch)

	retrieved, getErr := s.GetMovie(ctx, movie.ID)
	require.NoError(t, getErr)
	assert.Equal(t, "First Edit", retrieved.Title)
	assert.Equal(t, int64(1), retrieved.Version)
}

func TestMovieStorage_UpdateMovie_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	movie := &models.Movie{
		ID:          "nonexistent",
		Title:       "Ghost",
		ReleaseDate: time.Now(),
	}
	assert.ErrorIs(t, s.UpdateMovie(ctx, movie), storage.ErrMovieNotFound)
}

func TestMovieStorage_DeleteMovie(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ownerID := createTestUser(t, ctx, s)
	movie := createTestMovie(t, ctx, s, ownerID, "Doomed", false)

	require.NoError(t, s.DeleteMovie(ctx, movie.ID))

	_, getErr := s.GetMovie(ctx, movie.ID)
	assert.ErrorIs(t, getErr, storage.ErrMovieNotFound)

	// Повторное удаление не является ошибкой
	require.NoError(t, s.DeleteMovie(ctx, movie.ID))
}

func TestMovieStorage_ConcurrentVersioning(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ownerID := createTestUser(t, ctx, s)
	movie := createTestMovie(t, ctx, s, ownerID, "Race", false)

	// Последовательные редактирования с актуальной версией всегда проходят
	for i := 0; i < 5; i++ {
		current, getErr := s.GetMovie(ctx, movie.ID)
		require.NoError(t, getErr)
		current.Title = fmt.Sprintf("Edit %d", i)
		require.NoError(t, s.UpdateMovie(ctx, current))
		assert.Equal(t, int64(i+1), current.Version)
	}
}
