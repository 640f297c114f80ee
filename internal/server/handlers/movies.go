package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/iudanet/moviekeeper/internal/models"
	"github.com/iudanet/moviekeeper/internal/server/storage"
	"github.com/iudanet/moviekeeper/internal/validation"
	"github.com/iudanet/moviekeeper/pkg/api"
)

// Broadcaster рассылает push-события подключенным клиентам владельца записи
type Broadcaster interface {
	Broadcast(ownerID string, event api.PushEvent)
}

// MoviesHandler обрабатывает CRUD запросы каталога
type MoviesHandler struct {
	logger      *slog.Logger
	storage     storage.MovieStorage
	broadcaster Broadcaster
}

// NewMoviesHandler создает новый handler каталога.
// broadcaster может быть nil, тогда push-события не рассылаются.
func NewMoviesHandler(logger *slog.Logger, movieStorage storage.MovieStorage, broadcaster Broadcaster) *MoviesHandler {
	return &MoviesHandler{
		logger:      logger,
		storage:     movieStorage,
		broadcaster: broadcaster,
	}
}

// List обрабатывает GET /api/v1/movies
// Возвращает страницу записей владельца с серверной фильтрацией
func (h *MoviesHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	filter, err := parseMovieFilter(r)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid list query", slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	movies, err := h.storage.ListMovies(ctx, userID, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list movies", slog.Any("error", err), slog.String("user_id", userID))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "movies listed",
		slog.String("user_id", userID),
		slog.Int("count", len(movies)))

	h.sendJSON(w, models.MoviesToAPI(movies), http.StatusOK)
}

// Create обрабатывает POST /api/v1/movies
// Создает запись: сервер присваивает UUID и версию 0
func (h *MoviesHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.Movie
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode create request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validateMovie(&req); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	movie := models.MovieFromAPI(req)
	movie.ID = uuid.New().String()
	movie.OwnerID = userID
	movie.Version = 0
	movie.HasConflict = false

	if err := h.storage.CreateMovie(ctx, movie); err != nil {
		h.logger.ErrorContext(ctx, "failed to create movie", slog.Any("error", err), slog.String("user_id", userID))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "movie created",
		slog.String("user_id", userID),
		slog.String("movie_id", movie.ID))

	h.broadcast(userID, api.EventCreated, movie)
	h.sendJSON(w, movie.ToAPI(), http.StatusCreated)
}

// Update обрабатывает PUT /api/v1/movies/{id}
// Правка применяется только при совпадении версии. При несовпадении
// возвращается текущая серверная копия с has_conflict=true, а правка
// отбрасывается.
func (h *MoviesHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	movieID := r.PathValue("id")
	if movieID == "" {
		h.sendError(w, "movie id is required", http.StatusBadRequest)
		return
	}

	var req api.Movie
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode update request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validateMovie(&req); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Проверяем существование и владельца
	current, err := h.storage.GetMovie(ctx, movieID)
	if err != nil {
		if errors.Is(err, storage.ErrMovieNotFound) {
			h.sendError(w, "movie not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get movie", slog.Any("error", err), slog.String("movie_id", movieID))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if current.OwnerID != userID {
		// Не раскрываем существование чужой записи
		h.sendError(w, "movie not found", http.StatusNotFound)
		return
	}

	movie := models.MovieFromAPI(req)
	movie.ID = movieID
	movie.OwnerID = userID
	movie.HasConflict = false

	if err := h.storage.UpdateMovie(ctx, movie); err != nil {
		if errors.Is(err, storage.ErrVersionMismatch) {
			// Клиент получает серверную копию и разрешает конфликт сам
			server, getErr := h.storage.GetMovie(ctx, movieID)
			if getErr != nil {
				h.logger.ErrorContext(ctx, "failed to get movie after version mismatch", slog.Any("error", getErr))
				h.sendError(w, "internal server error", http.StatusInternalServerError)
				return
			}
			server.HasConflict = true

			h.logger.WarnContext(ctx, "movie version mismatch",
				slog.String("movie_id", movieID),
				slog.Int64("submitted_version", movie.Version),
				slog.Int64("current_version", server.Version))

			h.sendJSON(w, server.ToAPI(), http.StatusOK)
			return
		}
		if errors.Is(err, storage.ErrMovieNotFound) {
			h.sendError(w, "movie not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update movie", slog.Any("error", err), slog.String("movie_id", movieID))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "movie updated",
		slog.String("user_id", userID),
		slog.String("movie_id", movieID),
		slog.Int64("version", movie.Version))

	h.broadcast(userID, api.EventUpdated, movie)
	h.sendJSON(w, movie.ToAPI(), http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/movies/{id}
// Удаление отсутствующей записи не является ошибкой
func (h *MoviesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	movieID := r.PathValue("id")
	if movieID == "" {
		h.sendError(w, "movie id is required", http.StatusBadRequest)
		return
	}

	movie, err := h.storage.GetMovie(ctx, movieID)
	if err != nil {
		if errors.Is(err, storage.ErrMovieNotFound) {
			// Идемпотентное удаление
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get movie", slog.Any("error", err), slog.String("movie_id", movieID))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if movie.OwnerID != userID {
		h.sendError(w, "movie not found", http.StatusNotFound)
		return
	}

	if err := h.storage.DeleteMovie(ctx, movieID); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete movie", slog.Any("error", err), slog.String("movie_id", movieID))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "movie deleted",
		slog.String("user_id", userID),
		slog.String("movie_id", movieID))

	h.broadcast(userID, api.EventDeleted, movie)
	w.WriteHeader(http.StatusNoContent)
}

// Reconcile обрабатывает POST /api/v1/movies/reconcile
// Принимает пакет записей, накопленных клиентом в офлайне. Каждая запись
// запроса попадает ровно в один из списков ответа: applied (в порядке
// запроса, с серверными id и версиями) или conflicts (серверные копии
// записей с несовпавшей версией).
func (h *MoviesHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.ReconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode reconcile request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp := api.ReconcileResponse{
		Applied:   make([]api.Movie, 0, len(req.Movies)),
		Conflicts: []api.Movie{},
	}

	for i := range req.Movies {
		movie := models.MovieFromAPI(req.Movies[i])
		movie.OwnerID = userID
		movie.HasConflict = false

		applied, conflict, err := h.reconcileOne(ctx, movie)
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to reconcile movie",
				slog.Any("error", err),
				slog.String("movie_id", req.Movies[i].ID))
			h.sendError(w, "internal server error", http.StatusInternalServerError)
			return
		}

		if conflict != nil {
			resp.Conflicts = append(resp.Conflicts, conflict.ToAPI())
			continue
		}
		resp.Applied = append(resp.Applied, applied.ToAPI())
	}

	h.logger.InfoContext(ctx, "reconcile completed",
		slog.String("user_id", userID),
		slog.Int("received", len(req.Movies)),
		slog.Int("applied", len(resp.Applied)),
		slog.Int("conflicts", len(resp.Conflicts)))

	h.sendJSON(w, resp, http.StatusOK)
}

// reconcileOne применяет одну запись пакета. Возвращает примененную
// запись либо серверную копию при конфликте версий.
func (h *MoviesHandler) reconcileOne(ctx context.Context, movie *models.Movie) (applied, conflict *models.Movie, err error) {
	// Записи, созданные в офлайне, получают серверный id и версию 0
	if movie.IsLocal() {
		movie.ID = uuid.New().String()
		movie.Version = 0
		if err := h.storage.CreateMovie(ctx, movie); err != nil {
			return nil, nil, err
		}
		h.broadcast(movie.OwnerID, api.EventCreated, movie)
		return movie, nil, nil
	}

	err = h.storage.UpdateMovie(ctx, movie)
	switch {
	case err == nil:
		h.broadcast(movie.OwnerID, api.EventUpdated, movie)
		return movie, nil, nil

	case errors.Is(err, storage.ErrVersionMismatch):
		server, getErr := h.storage.GetMovie(ctx, movie.ID)
		if getErr != nil {
			return nil, nil, getErr
		}
		server.HasConflict = true
		return nil, server, nil

	case errors.Is(err, storage.ErrMovieNotFound):
		// Запись удалена на сервере, пока клиент редактировал в офлайне.
		// Восстанавливаем правку клиента как новую версию записи.
		movie.Version = 0
		if createErr := h.storage.CreateMovie(ctx, movie); createErr != nil {
			return nil, nil, createErr
		}
		h.broadcast(movie.OwnerID, api.EventCreated, movie)
		return movie, nil, nil

	default:
		return nil, nil, err
	}
}

// broadcast отправляет push-событие, если hub подключен
func (h *MoviesHandler) broadcast(ownerID string, kind api.EventKind, movie *models.Movie) {
	if h.broadcaster == nil {
		return
	}
	h.broadcaster.Broadcast(ownerID, api.PushEvent{
		Type:    kind,
		Payload: api.PushPayload{Movie: movie.ToAPI()},
	})
}

// parseMovieFilter разбирает query-параметры offset, size, is3d, name_filter
func parseMovieFilter(r *http.Request) (storage.MovieFilter, error) {
	var filter storage.MovieFilter

	query := r.URL.Query()

	if v := query.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			return filter, errors.New("invalid offset parameter")
		}
		filter.Offset = offset
	}

	if v := query.Get("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 0 {
			return filter, errors.New("invalid size parameter")
		}
		filter.Limit = size
	}

	if v := query.Get("is3d"); v != "" {
		is3D, err := strconv.ParseBool(v)
		if err != nil {
			return filter, errors.New("invalid is3d parameter")
		}
		filter.Is3D = &is3D
	}

	filter.TitlePrefix = query.Get("name_filter")

	return filter, nil
}

// validateMovie проверяет обязательные поля записи
func validateMovie(movie *api.Movie) error {
	if err := validation.ValidateMovieTitle(movie.Title); err != nil {
		return err
	}
	if err := validation.ValidateMoviePrice(movie.Price); err != nil {
		return err
	}
	if movie.ReleaseDate.IsZero() {
		return errors.New("release_date is required")
	}
	return nil
}

// sendJSON отправляет JSON ответ
func (h *MoviesHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *MoviesHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
