package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/moviekeeper/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

// TestClient_Register проверяет успешную регистрацию
func TestClient_Register(t *testing.T) {
	// Создаем mock сервер
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Проверяем метод и путь
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/auth/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		// Декодируем запрос
		var req api.RegisterRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)

		assert.Equal(t, "testuser", req.Username)
		assert.NotEmpty(t, req.Password)

		// Возвращаем успешный ответ
		w.WriteHeader(http.StatusCreated)
		resp := api.RegisterResponse{
			UserID:  "user-123",
			Message: "Registration successful",
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	ctx := context.Background()
	resp, err := client.Register(ctx, api.RegisterRequest{
		Username: "testuser",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "user-123", resp.UserID)
}

// TestClient_Login_Error проверяет обработку ошибок при аутентификации
func TestClient_Login_Error(t *testing.T) {
	tests := []struct {
		responseBody   interface{}
		name           string
		expectedErrMsg string
		statusCode     int
	}{
		{
			name:       "Invalid credentials",
			statusCode: http.StatusUnauthorized,
			responseBody: api.ErrorResponse{
				Message: "invalid username or password",
			},
			expectedErrMsg: "server error (401): invalid username or password",
		},
		{
			name:       "Invalid request",
			statusCode: http.StatusBadRequest,
			responseBody: api.ErrorResponse{
				Message: "invalid username",
			},
			expectedErrMsg: "server error (400): invalid username",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_ = json.NewEncoder(w).Encode(tt.responseBody)
			}))
			defer server.Close()

			client := NewClient(server.URL)

			_, err := client.Login(context.Background(), api.LoginRequest{
				Username: "testuser",
				Password: "wrong",
			})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErrMsg)
		})
	}
}

// TestClient_ListMovies проверяет запрос страницы каталога с фильтрами
func TestClient_ListMovies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/v1/movies", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		// Проверяем query-параметры пагинации и фильтров
		q := r.URL.Query()
		assert.Equal(t, "20", q.Get("offset"))
		assert.Equal(t, "10", q.Get("size"))
		assert.Equal(t, "true", q.Get("is3d"))
		assert.Equal(t, "Du", q.Get("name_filter"))

		movies := []api.Movie{
			{ID: "m1", Title: "Dune", Version: 3},
			{ID: "m2", Title: "Dune 2", Version: 1},
		}
		_ = json.NewEncoder(w).Encode(movies)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	is3D := true
	movies, err := client.ListMovies(context.Background(), "token-1", 20, 10, &is3D, "Du")
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "m1", movies[0].ID)
	assert.Equal(t, int64(3), movies[0].Version)
}

// TestClient_ListMovies_NoFilters проверяет, что неустановленные фильтры
// не попадают в query string
func TestClient_ListMovies_NoFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.False(t, q.Has("is3d"))
		assert.False(t, q.Has("name_filter"))
		_ = json.NewEncoder(w).Encode([]api.Movie{})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	movies, err := client.ListMovies(context.Background(), "token-1", 0, 20, nil, "")
	require.NoError(t, err)
	assert.Empty(t, movies)
}

// TestClient_CreateMovie проверяет создание записи
func TestClient_CreateMovie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/movies", r.URL.Path)

		var req api.Movie
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Dune", req.Title)

		// Сервер присваивает ID и первую версию
		req.ID = "server-id-1"
		req.Version = 0
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(req)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	created, err := client.CreateMovie(context.Background(), "token-1", api.Movie{Title: "Dune"})
	require.NoError(t, err)
	assert.Equal(t, "server-id-1", created.ID)
	assert.Equal(t, int64(0), created.Version)
}

// TestClient_UpdateMovie_Conflict проверяет, что конфликтный ответ сервера
// доходит до вызывающего с установленным HasConflict
func TestClient_UpdateMovie_Conflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/api/v1/movies/m1", r.URL.Path)

		// Версия не совпала: сервер возвращает свою копию с флагом конфликта
		_ = json.NewEncoder(w).Encode(api.Movie{
			ID:          "m1",
			Title:       "Dune (директорская версия)",
			Version:     4,
			HasConflict: true,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	updated, err := client.UpdateMovie(context.Background(), "token-1", api.Movie{
		ID:      "m1",
		Title:   "Dune",
		Version: 3,
	})
	require.NoError(t, err)
	assert.True(t, updated.HasConflict)
	assert.Equal(t, int64(4), updated.Version)
}

// TestClient_DeleteMovie проверяет удаление записи
func TestClient_DeleteMovie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/api/v1/movies/m1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.DeleteMovie(context.Background(), "token-1", "m1")
	assert.NoError(t, err)
}

// TestClient_Reconcile проверяет пакетную сверку офлайн-записей
func TestClient_Reconcile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/movies/reconcile", r.URL.Path)

		var req api.ReconcileRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Movies, 2)

		// Одна запись конфликтует, одна применилась молча
		_ = json.NewEncoder(w).Encode(api.ReconcileResponse{
			Conflicts: []api.Movie{
				{ID: "m1", Version: 4, HasConflict: true},
			},
			Applied: []api.Movie{
				{ID: "m2", Version: 2},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.Reconcile(context.Background(), "token-1", []api.Movie{
		{ID: "m1", Version: 3},
		{ID: "m2", Version: 1},
	})
	require.NoError(t, err)
	require.Len(t, resp.Applied, 1)
	assert.Equal(t, "m2", resp.Applied[0].ID)
	require.Len(t, resp.Conflicts, 1)
	assert.True(t, resp.Conflicts[0].HasConflict)
}

// TestClient_NetworkError проверяет, что недоступность сервера
// возвращается как ошибка (движок синхронизации переключится в офлайн)
func TestClient_NetworkError(t *testing.T) {
	// Адрес без слушателя
	client := NewClient("http://127.0.0.1:1")

	_, err := client.ListMovies(context.Background(), "token-1", 0, 20, nil, "")
	assert.Error(t, err)
}
