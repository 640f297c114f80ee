package ws

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iudanet/moviekeeper/internal/server/handlers"
	"github.com/iudanet/moviekeeper/pkg/api"
)

const (
	// authWait время на получение авторизационного кадра
	authWait = 10 * time.Second
	// writeWait время на запись одного события
	writeWait = 10 * time.Second
	// sendBufferSize буфер исходящих событий на клиента
	sendBufferSize = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// client одно подключение push-канала
type client struct {
	conn    *websocket.Conn
	send    chan api.PushEvent
	ownerID string
}

// Hub ведет реестр подключенных push-клиентов по владельцам
// и рассылает им события об изменениях каталога.
type Hub struct {
	logger    *slog.Logger
	jwtConfig handlers.JWTConfig

	mu      sync.RWMutex
	clients map[string]map[*client]struct{} // ownerID -> подключения
}

// NewHub создает новый push-hub
func NewHub(logger *slog.Logger, jwtConfig handlers.JWTConfig) *Hub {
	return &Hub{
		logger:    logger,
		jwtConfig: jwtConfig,
		clients:   make(map[string]map[*client]struct{}),
	}
}

// Handle обрабатывает GET /api/v1/ws
// Апгрейдит соединение и ждет первый кадр с bearer-токеном.
// Неавторизованное соединение закрывается без регистрации.
func (h *Hub) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}

	// Первый кадр обязан быть авторизацией
	_ = conn.SetReadDeadline(time.Now().Add(authWait))

	var frame api.AuthFrame
	if err := conn.ReadJSON(&frame); err != nil {
		h.logger.Warn("push channel auth frame not received", slog.Any("error", err))
		_ = conn.Close()
		return
	}

	if frame.Type != api.AuthFrameType {
		h.logger.Warn("push channel unexpected first frame", slog.String("type", frame.Type))
		_ = conn.Close()
		return
	}

	claims, err := handlers.ValidateAccessToken(h.jwtConfig, frame.Payload.Token)
	if err != nil {
		h.logger.Warn("push channel auth failed", slog.Any("error", err))
		_ = conn.Close()
		return
	}

	// Дальше канал только пишет; дедлайн чтения снимаем
	_ = conn.SetReadDeadline(time.Time{})

	c := &client{
		conn:    conn,
		send:    make(chan api.PushEvent, sendBufferSize),
		ownerID: claims.UserID,
	}
	h.register(c)

	h.logger.Info("push client connected", slog.String("user_id", claims.UserID))

	go h.writePump(c)
	go h.readPump(c)
}

// Broadcast отправляет событие всем подключениям владельца.
// Медленные клиенты пропускают событие, рассылка не блокируется.
func (h *Hub) Broadcast(ownerID string, event api.PushEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients[ownerID] {
		select {
		case c.send <- event:
		default:
			// Буфер клиента переполнен, событие пропущено
			h.logger.Warn("push client send buffer full, dropping event",
				slog.String("user_id", ownerID))
		}
	}
}

// Close закрывает все подключения
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, conns := range h.clients {
		for c := range conns {
			close(c.send)
		}
	}
	h.clients = make(map[string]map[*client]struct{})
}

// ClientCount возвращает число подключений владельца
func (h *Hub) ClientCount(ownerID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[ownerID])
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[c.ownerID] == nil {
		h.clients[c.ownerID] = make(map[*client]struct{})
	}
	h.clients[c.ownerID][c] = struct{}{}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.clients[c.ownerID]
	if !ok {
		return
	}
	if _, ok := conns[c]; !ok {
		return
	}
	delete(conns, c)
	if len(conns) == 0 {
		delete(h.clients, c.ownerID)
	}
	close(c.send)
}

// writePump пишет события из канала клиента в соединение
func (h *Hub) writePump(c *client) {
	defer func() {
		_ = c.conn.Close()
	}()

	for event := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(event); err != nil {
			h.unregister(c)
			return
		}
	}

	// Канал закрыт хабом
	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump следит за закрытием соединения клиентом
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		_ = c.conn.Close()
		h.logger.Info("push client disconnected", slog.String("user_id", c.ownerID))
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
