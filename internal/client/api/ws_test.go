package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/moviekeeper/pkg/api"
)

// newPushTestServer поднимает тестовый WebSocket сервер, который проверяет
// кадр авторизации и затем шлет клиенту подготовленные события
func newPushTestServer(t *testing.T, events []api.PushEvent) *httptest.Server {
	upgrader := websocket.Upgrader{}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, wsPath, r.URL.Path)

		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		// Первый кадр — авторизация
		var frame api.AuthFrame
		require.NoError(t, conn.ReadJSON(&frame))
		assert.Equal(t, api.AuthFrameType, frame.Type)
		assert.Equal(t, "token-1", frame.Payload.Token)

		for _, event := range events {
			require.NoError(t, conn.WriteJSON(event))
		}

		// Держим соединение, пока клиент не закроет
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
}

func TestOpenPushChannel_DeliversEvents(t *testing.T) {
	events := []api.PushEvent{
		{Type: api.EventCreated, Payload: api.PushPayload{Movie: api.Movie{ID: "m1", Title: "Dune"}}},
		{Type: api.EventDeleted, Payload: api.PushPayload{Movie: api.Movie{ID: "m9"}}},
	}

	server := newPushTestServer(t, events)
	defer server.Close()

	received := make(chan api.PushEvent, len(events))

	client := NewClient(server.URL)
	closeFn, err := client.OpenPushChannel(context.Background(), "token-1", func(e api.PushEvent) {
		received <- e
	})
	require.NoError(t, err)
	defer closeFn()

	for i := range events {
		select {
		case got := <-received:
			assert.Equal(t, events[i].Type, got.Type)
			assert.Equal(t, events[i].Payload.Movie.ID, got.Payload.Movie.ID)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for push event")
		}
	}
}

func TestOpenPushChannel_CloseIdempotent(t *testing.T) {
	server := newPushTestServer(t, nil)
	defer server.Close()

	client := NewClient(server.URL)
	closeFn, err := client.OpenPushChannel(context.Background(), "token-1", func(api.PushEvent) {})
	require.NoError(t, err)

	// Повторное закрытие не должно паниковать
	closeFn()
	closeFn()
}

func TestOpenPushChannel_DialError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")

	closeFn, err := client.OpenPushChannel(context.Background(), "token-1", func(api.PushEvent) {})
	assert.Error(t, err)
	assert.Nil(t, closeFn)
}

func TestWSURL(t *testing.T) {
	assert.Equal(t, "ws://host:8080"+wsPath, NewClient("http://host:8080").wsURL())
	assert.Equal(t, "wss://host"+wsPath, NewClient("https://host").wsURL())
}
