package api

import "time"

// Movie представляет одну запись каталога в wire-формате
type Movie struct {
	ReleaseDate time.Time `json:"release_date"`          // дата выхода фильма
	ID          string    `json:"id,omitempty"`          // UUID записи (присваивается сервером)
	Title       string    `json:"title"`                 // название фильма
	Director    string    `json:"director"`              // режиссер
	OwnerID     string    `json:"owner_id"`              // UUID владельца записи
	ImagePath   string    `json:"image_path,omitempty"`  // путь к постеру (опционально)
	Price       float64   `json:"price"`                 // цена
	Lat         float64   `json:"lat,omitempty"`         // широта места съемки (опционально)
	Lng         float64   `json:"lng,omitempty"`         // долгота места съемки (опционально)
	Version     int64     `json:"version"`               // счетчик версий сервера, -1 для офлайн-записей
	Is3D        bool      `json:"is_3d"`                 // флаг 3D-фильма
	HasConflict bool      `json:"has_conflict,omitempty"` // установлен сервером при конфликте версий
}

// ReconcileRequest представляет пакет локальных записей,
// накопленных клиентом в офлайне
type ReconcileRequest struct {
	Movies []Movie `json:"movies"`
}

// ReconcileResponse представляет ответ сервера на reconcile.
// Applied содержит примененные записи в порядке запроса (с серверными
// id и версиями), Conflicts — записи с несовпавшей версией в серверном
// варианте. Каждая запись запроса попадает ровно в один из списков.
type ReconcileResponse struct {
	Applied   []Movie `json:"applied"`   // примененные записи в порядке запроса
	Conflicts []Movie `json:"conflicts"` // серверные копии конфликтных записей
}
