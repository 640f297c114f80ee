package api

// EventKind тип push-события об изменении записи
type EventKind string

const (
	EventCreated EventKind = "created" // запись создана
	EventUpdated EventKind = "updated" // запись обновлена
	EventDeleted EventKind = "deleted" // запись удалена
)

// PushPayload полезная нагрузка push-события
type PushPayload struct {
	Movie Movie `json:"movie"`
}

// PushEvent представляет одно событие push-канала.
// Сервер рассылает событие всем подключенным клиентам владельца записи.
type PushEvent struct {
	Type    EventKind   `json:"type"`
	Payload PushPayload `json:"payload"`
}

// AuthPayload полезная нагрузка кадра авторизации
type AuthPayload struct {
	Token string `json:"token"`
}

// AuthFrame первый кадр push-канала: клиент авторизуется bearer-токеном
type AuthFrame struct {
	Type    string      `json:"type"` // всегда "authorization"
	Payload AuthPayload `json:"payload"`
}

// AuthFrameType значение поля Type для кадра авторизации
const AuthFrameType = "authorization"
