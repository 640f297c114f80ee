package api

import (
	"context"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/iudanet/moviekeeper/pkg/api"
)

// wsPath путь push-канала на сервере
const wsPath = "/api/v1/ws"

// OpenPushChannel открывает WebSocket push-канал к серверу.
// Первым исходящим кадром отправляется авторизация bearer-токеном,
// дальше канал только читает события и передает их в onEvent.
// Ошибки транспорта не фатальны: канал молча завершает чтение,
// политика переподключения остается за вызывающим.
// Возвращаемая функция закрытия идемпотентна.
func (c *Client) OpenPushChannel(ctx context.Context, token string, onEvent func(api.PushEvent)) (func(), error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.wsURL(), nil)
	if err != nil {
		return nil, err
	}

	// Авторизуемся первым кадром
	frame := api.AuthFrame{
		Type:    api.AuthFrameType,
		Payload: api.AuthPayload{Token: token},
	}
	if err := conn.WriteJSON(frame); err != nil {
		_ = conn.Close()
		return nil, err
	}

	var once sync.Once
	closeFn := func() {
		once.Do(func() {
			_ = conn.Close()
		})
	}

	go func() {
		defer closeFn()
		for {
			var event api.PushEvent
			if err := conn.ReadJSON(&event); err != nil {
				// Транспортная ошибка или закрытие канала: выходим молча
				return
			}
			onEvent(event)
		}
	}()

	return closeFn, nil
}

// wsURL переводит базовый HTTP URL в WebSocket URL push-канала
func (c *Client) wsURL() string {
	wsBase := c.baseURL
	switch {
	case strings.HasPrefix(wsBase, "https://"):
		wsBase = "wss://" + strings.TrimPrefix(wsBase, "https://")
	case strings.HasPrefix(wsBase, "http://"):
		wsBase = "ws://" + strings.TrimPrefix(wsBase, "http://")
	}
	return wsBase + wsPath
}
