// Package connectivity отслеживает доступность сервера для клиента.
package connectivity

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Monitor reports whether the server is currently reachable and
// notifies listeners when that changes.
type Monitor interface {
	// Current возвращает последнее известное состояние сети
	Current() bool
	// OnChange регистрирует callback, вызываемый при смене состояния
	OnChange(fn func(online bool))
}

// ProbeMonitor periodically polls the server health endpoint.
type ProbeMonitor struct {
	client    *http.Client
	logger    *slog.Logger
	cancel    context.CancelFunc
	done      chan struct{}
	baseURL   string
	listeners []func(bool)
	interval  time.Duration
	mu        sync.Mutex
	online    bool
	closed    bool
}

const defaultProbeInterval = 5 * time.Second

// NewProbeMonitor создает монитор, опрашивающий /api/v1/health
func NewProbeMonitor(baseURL string, interval time.Duration, logger *slog.Logger) *ProbeMonitor {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	return &ProbeMonitor{
		baseURL:  baseURL,
		interval: interval,
		logger:   logger,
		client: &http.Client{
			Timeout: 3 * time.Second,
		},
		done: make(chan struct{}),
	}
}

// Start probes once synchronously, so Current is meaningful right
// after the call, and then keeps polling until Stop.
func (m *ProbeMonitor) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel

	m.probe(ctx)

	go func() {
		defer close(m.done)

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.probe(ctx)
			}
		}
	}()
}

// Stop останавливает опрос и ждет завершения горутины
func (m *ProbeMonitor) Stop() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.mu.Unlock()

	if m.cancel != nil {
		m.cancel()
		<-m.done
	}
}

// Current возвращает последнее известное состояние сети
func (m *ProbeMonitor) Current() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// OnChange регистрирует callback, вызываемый при смене состояния
func (m *ProbeMonitor) OnChange(fn func(online bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

func (m *ProbeMonitor) probe(ctx context.Context) {
	online := m.check(ctx)

	m.mu.Lock()
	changed := online != m.online
	m.online = online
	listeners := make([]func(bool), len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()

	if !changed {
		return
	}

	m.logger.Info("connectivity changed", "online", online)
	for _, fn := range listeners {
		fn(online)
	}
}

func (m *ProbeMonitor) check(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"/api/v1/health", nil)
	if err != nil {
		return false
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	return resp.StatusCode == http.StatusOK
}

// StaticMonitor is a fixed-state Monitor used in tests and one-shot commands.
type StaticMonitor struct {
	mu        sync.Mutex
	listeners []func(bool)
	online    bool
}

// NewStaticMonitor создает монитор с фиксированным начальным состоянием
func NewStaticMonitor(online bool) *StaticMonitor {
	return &StaticMonitor{online: online}
}

// Current возвращает текущее состояние
func (m *StaticMonitor) Current() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// OnChange регистрирует callback
func (m *StaticMonitor) OnChange(fn func(online bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Set переключает состояние и уведомляет подписчиков при изменении
func (m *StaticMonitor) Set(online bool) {
	m.mu.Lock()
	changed := online != m.online
	m.online = online
	listeners := make([]func(bool), len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()

	if !changed {
		return
	}
	for _, fn := range listeners {
		fn(online)
	}
}
