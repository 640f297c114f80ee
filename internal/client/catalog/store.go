package catalog

import (
	"log/slog"
	"sync"
)

// Store хранит единственный экземпляр состояния каталога и применяет
// к нему действия строго в порядке вызовов Dispatch. Подписчики
// уведомляются синхронно после каждого действия; подписчик не должен
// вызывать Dispatch из обработчика.
type Store struct {
	logger *slog.Logger
	subs   map[int]func(State)
	state  State
	nextID int
	mu     sync.Mutex
}

// NewStore создает Store с начальным состоянием
func NewStore(logger *slog.Logger) *Store {
	return &Store{
		logger: logger,
		subs:   make(map[int]func(State)),
		state:  NewState(),
	}
}

// Dispatch применяет действие через Reduce и уведомляет подписчиков.
// Мьютекс гарантирует, что порядок применения совпадает с порядком
// вызовов: два конкурентно завершившихся асинхронных результата
// сериализуются здесь, последний победит при конфликте по одному ID.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, action)
	s.logger.Debug("action dispatched",
		"type", string(action.Type),
		"movies", len(s.state.Movies))

	for _, sub := range s.subs {
		sub(s.state)
	}
}

// State возвращает снимок текущего состояния
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state
	snapshot.Movies = copyMovies(s.state.Movies)
	return snapshot
}

// Subscribe регистрирует подписчика и возвращает функцию отписки
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}
