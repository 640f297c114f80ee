// Package conflict держит очередь конфликтных пар версий и разрешает
// их, принимая один из вариантов как канонический.
package conflict

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/moviekeeper/internal/models"
)

// Saver переотправляет выбранную запись через путь сохранения движка
// синхронизации. Реализуется *sync.Engine.
type Saver interface {
	Save(ctx context.Context, movie *models.Movie) error
}

// Resolver holds pending conflicting pairs awaiting a manual choice.
// Pairs are stored flattened: the client's attempted copy followed by
// the server's copy. Resolving consumes the two oldest entries.
type Resolver struct {
	saver   Saver
	logger  *slog.Logger
	onEmpty func()

	mu    sync.Mutex
	queue []*models.Movie
}

// NewResolver создает пустой резолвер конфликтов
func NewResolver(saver Saver, logger *slog.Logger) *Resolver {
	return &Resolver{
		saver:  saver,
		logger: logger,
	}
}

// BindSaver привязывает путь сохранения после создания резолвера.
// Движок синхронизации и резолвер ссылаются друг на друга, поэтому
// один из них собирается позже.
func (r *Resolver) BindSaver(saver Saver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saver = saver
}

// OnEmpty регистрирует callback, вызываемый когда очередь опустела
// после разрешения: сигнал UI вернуться к предыдущему экрану
func (r *Resolver) OnEmpty(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onEmpty = fn
}

// Present replaces any pending pairs with a new flattened list.
// An empty list is a no-op: the pending queue is left untouched.
func (r *Resolver) Present(pairs []*models.Movie) {
	if len(pairs) == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	queue := make([]*models.Movie, len(pairs))
	copy(queue, pairs)
	r.queue = queue

	r.logger.Info("conflicts pending resolution", "pairs", len(queue)/2)
}

// Current возвращает старейшую пару: попытку клиента и серверную копию
func (r *Resolver) Current() (attempted, server *models.Movie, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.queue) < 2 {
		return nil, nil, false
	}
	return r.queue[0], r.queue[1], true
}

// Pending возвращает количество неразрешенных пар
func (r *Resolver) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queue) / 2
}

// Resolve accepts one version as canonical: re-submits it through the
// save path with its server-known version, drops the oldest pair and
// surfaces the next one. When the queue drains, the OnEmpty callback
// fires.
func (r *Resolver) Resolve(ctx context.Context, chosen *models.Movie) error {
	r.mu.Lock()
	saver := r.saver
	r.mu.Unlock()

	if saver == nil {
		return fmt.Errorf("no save path bound")
	}

	if err := saver.Save(ctx, chosen); err != nil {
		return fmt.Errorf("failed to submit chosen version: %w", err)
	}

	r.mu.Lock()
	if len(r.queue) >= 2 {
		r.queue = r.queue[2:]
	}
	empty := len(r.queue) < 2
	onEmpty := r.onEmpty
	r.mu.Unlock()

	r.logger.Info("conflict resolved", "movie_id", chosen.ID, "remaining", r.Pending())

	if empty && onEmpty != nil {
		onEmpty()
	}
	return nil
}
