// Package sync реализует движок офлайн-синхронизации каталога:
// выбор онлайн/офлайн пути для записи и удаления, постраничную
// загрузку с локальным фолбэком и сверку накопленных офлайн-правок
// при восстановлении связи.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	gosync "sync"

	httpClient "github.com/iudanet/moviekeeper/internal/client/api"
	"github.com/iudanet/moviekeeper/internal/client/catalog"
	"github.com/iudanet/moviekeeper/internal/client/connectivity"
	"github.com/iudanet/moviekeeper/internal/client/storage"
	"github.com/iudanet/moviekeeper/internal/models"
	"github.com/iudanet/moviekeeper/pkg/api"
)

// DefaultPageSize — размер страницы каталога по умолчанию
const DefaultPageSize = 20

// ErrVersionConflict сигнализирует о несовпадении версии при записи.
// Конфликт не повторяется автоматически, а уходит на ручное разрешение.
var ErrVersionConflict = errors.New("version conflict")

// Presenter receives conflicting record pairs discovered by the engine.
// Pairs are flattened: the client's attempted copy at even indices, the
// server's copy right after it.
type Presenter interface {
	Present(pairs []*models.Movie)
}

// Engine orchestrates saves, deletes and fetches between the remote
// gateway and the local mirror, driven by the connectivity flag.
// Every remote failure falls back to the local path, never to the UI.
type Engine struct {
	apiClient httpClient.ClientAPI
	store     storage.MovieStorage
	catalog   *catalog.Store
	monitor   connectivity.Monitor
	conflicts Presenter
	logger    *slog.Logger
	closePush func()

	token  string
	userID string

	cursor PageCursor

	mu       gosync.Mutex
	canceled bool
}

// NewEngine создает движок синхронизации для одной пользовательской сессии
func NewEngine(
	apiClient httpClient.ClientAPI,
	store storage.MovieStorage,
	catalogStore *catalog.Store,
	monitor connectivity.Monitor,
	conflicts Presenter,
	token, userID string,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		apiClient: apiClient,
		store:     store,
		catalog:   catalogStore,
		monitor:   monitor,
		conflicts: conflicts,
		token:     token,
		userID:    userID,
		logger:    logger,
		cursor:    PageCursor{Size: DefaultPageSize},
	}
}

// Start подписывается на события связности и открывает push-канал.
// Переход офлайн→онлайн запускает фоновую сверку офлайн-правок.
func (e *Engine) Start(ctx context.Context) {
	online := e.monitor.Current()
	e.dispatch(catalog.Action{Type: catalog.ConnectivityChanged, Flag: online})

	e.monitor.OnChange(func(online bool) {
		e.dispatch(catalog.Action{Type: catalog.ConnectivityChanged, Flag: online})
		if online {
			e.openPush(ctx)
			// fire-and-forget: сверка не блокирует save/delete/fetch
			go func() {
				if err := e.Reconcile(ctx); err != nil {
					e.logger.Warn("reconciliation failed", "error", err)
				}
			}()
		} else {
			e.stopPush()
		}
	})

	if online {
		e.openPush(ctx)
	}
}

// Close помечает движок отмененным и освобождает push-канал.
// Завершения операций, пришедшие после Close, отбрасываются.
func (e *Engine) Close() {
	e.mu.Lock()
	e.canceled = true
	e.mu.Unlock()
	e.stopPush()
}

// Save сохраняет запись: онлайн через удаленный шлюз, офлайн или при
// ошибке транспорта — в локальное зеркало с временным id и version=-1.
func (e *Engine) Save(ctx context.Context, movie *models.Movie) error {
	e.dispatch(catalog.Action{Type: catalog.SaveStarted})

	if e.monitor.Current() {
		err := e.saveRemote(ctx, movie)
		if err == nil {
			return nil
		}
		e.logger.Warn("remote save failed, falling back to local mirror",
			"movie_id", movie.ID, "error", err)
	}

	return e.saveLocal(ctx, movie)
}

// saveRemote выполняет create/update на сервере.
// Запись без серверного id (пустой или временный) создается заново.
func (e *Engine) saveRemote(ctx context.Context, movie *models.Movie) error {
	if movie.ID == "" || movie.IsLocal() {
		return e.createRemote(ctx, movie)
	}
	return e.updateRemote(ctx, movie)
}

func (e *Engine) createRemote(ctx context.Context, movie *models.Movie) error {
	wire := movie.ToAPI()
	tempID := wire.ID
	wire.ID = ""
	wire.OwnerID = e.userID

	created, err := e.apiClient.CreateMovie(ctx, e.token, wire)
	if err != nil {
		return fmt.Errorf("remote create failed: %w", err)
	}

	result := models.MovieFromAPI(*created)

	// Временный ключ зеркала мигрирует на серверный id
	if tempID != "" {
		if err := e.store.MigrateMovie(ctx, tempID, result); err != nil {
			e.logger.Warn("failed to migrate local mirror key",
				"old_id", tempID, "new_id", result.ID, "error", err)
		}
		// В состоянии запись лежит под временным id — убираем ее,
		// иначе upsert по новому id даст дубликат
		e.dispatch(catalog.Action{Type: catalog.DeleteSucceeded, Movie: &models.Movie{ID: tempID}})
	} else if err := e.store.SaveMovie(ctx, result); err != nil {
		e.logger.Warn("failed to mirror created record", "movie_id", result.ID, "error", err)
	}

	e.dispatch(catalog.Action{Type: catalog.SaveSucceeded, Movie: result})
	return nil
}

func (e *Engine) updateRemote(ctx context.Context, movie *models.Movie) error {
	wire := movie.ToAPI()
	wire.OwnerID = e.userID

	updated, err := e.apiClient.UpdateMovie(ctx, e.token, wire)
	if err != nil {
		return fmt.Errorf("remote update failed: %w", err)
	}

	result := models.MovieFromAPI(*updated)

	if result.HasConflict {
		// Версия разошлась: правка не применена. Оба варианта уходят
		// на ручное разрешение, состояние каталога не трогаем.
		attempted := movie.Clone()
		attempted.Version = result.Version
		e.logger.Info("version conflict detected",
			"movie_id", result.ID, "server_version", result.Version)
		e.dispatch(catalog.Action{Type: catalog.SaveFailed, Err: ErrVersionConflict})
		e.conflicts.Present([]*models.Movie{attempted, result})
		return nil
	}

	if err := e.store.SaveMovie(ctx, result); err != nil {
		e.logger.Warn("failed to mirror updated record", "movie_id", result.ID, "error", err)
	}
	e.dispatch(catalog.Action{Type: catalog.SaveSucceeded, Movie: result})
	return nil
}

// saveLocal записывает в локальное зеркало офлайн-копию
func (e *Engine) saveLocal(ctx context.Context, movie *models.Movie) error {
	local := movie.Clone()
	if local.ID == "" {
		local.ID = models.NewLocalID()
		local.Version = models.VersionUnsynced
	}
	local.OwnerID = e.userID
	local.HasConflict = false

	if err := e.store.SaveMovie(ctx, local); err != nil {
		e.dispatch(catalog.Action{Type: catalog.SaveFailed, Err: err})
		return fmt.Errorf("local save failed: %w", err)
	}

	e.dispatch(catalog.Action{Type: catalog.SaveSucceeded, Movie: local})
	e.dispatch(catalog.Action{Type: catalog.SavedOfflineSet, Flag: true})
	return nil
}

// Delete удаляет запись: онлайн на сервере и в зеркале, офлайн или при
// ошибке транспорта — только в зеркале.
func (e *Engine) Delete(ctx context.Context, id string) error {
	e.dispatch(catalog.Action{Type: catalog.DeleteStarted})

	if e.monitor.Current() {
		if err := e.apiClient.DeleteMovie(ctx, e.token, id); err == nil {
			if err := e.store.DeleteMovie(ctx, id); err != nil {
				e.logger.Warn("failed to remove mirrored record", "movie_id", id, "error", err)
			}
			e.dispatch(catalog.Action{Type: catalog.DeleteSucceeded, Movie: &models.Movie{ID: id}})
			return nil
		} else {
			e.logger.Warn("remote delete failed, falling back to local mirror",
				"movie_id", id, "error", err)
		}
	}

	if err := e.store.DeleteMovie(ctx, id); err != nil {
		e.dispatch(catalog.Action{Type: catalog.DeleteFailed, Err: err})
		return fmt.Errorf("local delete failed: %w", err)
	}

	e.dispatch(catalog.Action{Type: catalog.DeleteSucceeded, Movie: &models.Movie{ID: id}})
	e.dispatch(catalog.Action{Type: catalog.SavedOfflineSet, Flag: true})
	return nil
}

// Fetch загружает следующую страницу каталога с текущими фильтрами.
// Онлайн страница дописывается к списку; офлайн или при ошибке
// транспорта список целиком заменяется отфильтрованным зеркалом.
func (e *Engine) Fetch(ctx context.Context) error {
	e.dispatch(catalog.Action{Type: catalog.FetchStarted})

	if e.monitor.Current() {
		movies, err := e.apiClient.ListMovies(ctx, e.token,
			e.cursor.Offset, e.cursor.Size, e.cursor.Is3D, e.cursor.NamePrefix)
		if err == nil {
			e.mirrorPage(ctx, movies)
			e.cursor.Advance(len(movies))
			e.dispatch(catalog.Action{
				Type:   catalog.FetchSucceeded,
				Movies: models.MoviesFromAPI(movies),
			})
			return nil
		}
		e.logger.Warn("remote fetch failed, falling back to local mirror", "error", err)
	}

	return e.fetchLocal(ctx)
}

// Reload перезагружает список с нулевого смещения и новыми фильтрами.
// Лимит покрывает все ранее просмотренные страницы.
func (e *Engine) Reload(ctx context.Context, is3D *bool, namePrefix string) error {
	e.dispatch(catalog.Action{Type: catalog.FetchStarted})

	limit := e.cursor.ReloadLimit()
	e.cursor.Reset(is3D, namePrefix)

	if e.monitor.Current() {
		movies, err := e.apiClient.ListMovies(ctx, e.token, 0, limit, is3D, namePrefix)
		if err == nil {
			e.mirrorPage(ctx, movies)
			e.cursor.Advance(len(movies))
			e.dispatch(catalog.Action{
				Type:   catalog.ReloadSucceeded,
				Movies: models.MoviesFromAPI(movies),
			})
			return nil
		}
		e.logger.Warn("remote reload failed, falling back to local mirror", "error", err)
	}

	return e.fetchLocal(ctx)
}

// fetchLocal читает зеркало с клиентской фильтрацией и заменяет список
func (e *Engine) fetchLocal(ctx context.Context) error {
	is3D := e.cursor.Is3D
	prefix := e.cursor.NamePrefix

	movies, err := e.store.ListByOwner(ctx, e.userID, func(m *models.Movie) bool {
		if is3D != nil && m.Is3D != *is3D {
			return false
		}
		if prefix != "" && !strings.HasPrefix(m.Title, prefix) {
			return false
		}
		return true
	})
	if err != nil {
		e.dispatch(catalog.Action{Type: catalog.FetchFailed, Err: err})
		return fmt.Errorf("local fetch failed: %w", err)
	}

	e.dispatch(catalog.Action{Type: catalog.ReloadSucceeded, Movies: movies})
	return nil
}

// mirrorPage сохраняет загруженную страницу в локальное зеркало
func (e *Engine) mirrorPage(ctx context.Context, movies []api.Movie) {
	for i := range movies {
		if err := e.store.SaveMovie(ctx, models.MovieFromAPI(movies[i])); err != nil {
			e.logger.Warn("failed to mirror fetched record",
				"movie_id", movies[i].ID, "error", err)
		}
	}
}

// Reconcile отправляет все локально накопленные записи владельца на
// сверку одним запросом. Примененные записи получают серверные id и
// версии (временные ключи зеркала мигрируют), конфликтные пары уходят
// на ручное разрешение.
func (e *Engine) Reconcile(ctx context.Context) error {
	local, err := e.store.ListByOwner(ctx, e.userID, nil)
	if err != nil {
		return fmt.Errorf("failed to collect local records: %w", err)
	}
	if len(local) == 0 {
		return nil
	}

	e.logger.Info("starting reconciliation", "records", len(local))

	resp, err := e.apiClient.Reconcile(ctx, e.token, models.MoviesToAPI(local))
	if err != nil {
		return fmt.Errorf("reconcile request failed: %w", err)
	}

	conflicted := make(map[string]*models.Movie, len(resp.Conflicts))
	for i := range resp.Conflicts {
		server := models.MovieFromAPI(resp.Conflicts[i])
		conflicted[server.ID] = server
	}

	// Applied идет в порядке запроса: сопоставляем со своим пакетом,
	// пропуская конфликтные записи
	applied := resp.Applied
	pairs := make([]*models.Movie, 0, len(resp.Conflicts)*2)
	for _, l := range local {
		if server, ok := conflicted[l.ID]; ok {
			attempted := l.Clone()
			attempted.Version = server.Version
			pairs = append(pairs, attempted, server)
			continue
		}
		if len(applied) == 0 {
			break
		}
		result := models.MovieFromAPI(applied[0])
		applied = applied[1:]

		if l.IsLocal() {
			if err := e.store.MigrateMovie(ctx, l.ID, result); err != nil {
				e.logger.Warn("failed to migrate local mirror key",
					"old_id", l.ID, "new_id", result.ID, "error", err)
			}
			e.dispatch(catalog.Action{Type: catalog.DeleteSucceeded, Movie: &models.Movie{ID: l.ID}})
		} else if err := e.store.SaveMovie(ctx, result); err != nil {
			e.logger.Warn("failed to mirror reconciled record",
				"movie_id", result.ID, "error", err)
		}
		e.dispatch(catalog.Action{Type: catalog.SaveSucceeded, Movie: result})
	}

	e.logger.Info("reconciliation completed",
		"applied", len(resp.Applied), "conflicts", len(resp.Conflicts))

	if len(pairs) > 0 {
		e.conflicts.Present(pairs)
	}
	return nil
}

// openPush открывает push-канал; ошибка открытия не фатальна
func (e *Engine) openPush(ctx context.Context) {
	e.mu.Lock()
	if e.canceled || e.closePush != nil {
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()

	closeFn, err := e.apiClient.OpenPushChannel(ctx, e.token, e.handlePushEvent)
	if err != nil {
		e.logger.Warn("failed to open push channel", "error", err)
		return
	}

	e.mu.Lock()
	if e.canceled {
		e.mu.Unlock()
		closeFn()
		return
	}
	e.closePush = closeFn
	e.mu.Unlock()
}

// stopPush закрывает push-канал, если он открыт
func (e *Engine) stopPush() {
	e.mu.Lock()
	closeFn := e.closePush
	e.closePush = nil
	e.mu.Unlock()

	if closeFn != nil {
		closeFn()
	}
}

// handlePushEvent проводит серверное событие через редьюсер тем же
// путем, что и локальные операции: правки с других устройств
// вливаются в отображаемый список
func (e *Engine) handlePushEvent(event api.PushEvent) {
	movie := models.MovieFromAPI(event.Payload.Movie)

	switch event.Type {
	case api.EventCreated, api.EventUpdated:
		if err := e.store.SaveMovie(context.Background(), movie); err != nil {
			e.logger.Warn("failed to mirror pushed record", "movie_id", movie.ID, "error", err)
		}
		e.dispatch(catalog.Action{Type: catalog.SaveSucceeded, Movie: movie})
	case api.EventDeleted:
		if err := e.store.DeleteMovie(context.Background(), movie.ID); err != nil {
			e.logger.Warn("failed to remove pushed record", "movie_id", movie.ID, "error", err)
		}
		e.dispatch(catalog.Action{Type: catalog.DeleteSucceeded, Movie: movie})
	default:
		e.logger.Warn("unknown push event kind", "kind", event.Type)
	}
}

// dispatch проводит действие через редьюсер, если движок не отменен.
// Поздние завершения после Close отбрасываются молча.
func (e *Engine) dispatch(action catalog.Action) {
	e.mu.Lock()
	canceled := e.canceled
	e.mu.Unlock()

	if canceled {
		return
	}
	e.catalog.Dispatch(action)
}
