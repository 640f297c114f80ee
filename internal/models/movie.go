package models

import (
	"fmt"
	"time"

	"github.com/iudanet/moviekeeper/pkg/api"
)

// VersionUnsynced значение версии для записей, созданных в офлайне
// и еще не получивших серверную версию
const VersionUnsynced int64 = -1

// Movie представляет одну запись каталога фильмов.
// ID присваивается сервером (UUID) при первом успешном create;
// для записей, созданных в офлайне, клиент выдает временный ID
// на основе timestamp, который заменяется серверным при синхронизации.
type Movie struct {
	ReleaseDate time.Time `json:"release_date"` // дата выхода фильма
	ID          string    `json:"id"`           // идентификатор записи
	Title       string    `json:"title"`        // название фильма
	Director    string    `json:"director"`     // режиссер
	OwnerID     string    `json:"owner_id"`     // UUID владельца
	ImagePath   string    `json:"image_path"`   // путь к постеру
	Price       float64   `json:"price"`        // цена
	Lat         float64   `json:"lat"`          // широта места съемки
	Lng         float64   `json:"lng"`          // долгота места съемки
	Version     int64     `json:"version"`      // серверный счетчик версий, VersionUnsynced для офлайн-записей
	Is3D        bool      `json:"is_3d"`        // флаг 3D-фильма
	HasConflict bool      `json:"has_conflict"` // установлен сервером при несовпадении версий
}

// NewLocalID генерирует временный клиентский идентификатор для записи,
// созданной в офлайне. Идентификатор производится от текущего времени,
// чтобы не пересекаться с серверными UUID.
func NewLocalID() string {
	return fmt.Sprintf("local-%d", time.Now().UnixNano())
}

// IsLocal возвращает true, если запись еще не синхронизирована с сервером
func (m *Movie) IsLocal() bool {
	return m.Version == VersionUnsynced
}

// Clone создает копию записи
func (m *Movie) Clone() *Movie {
	c := *m
	return &c
}

// ToAPI конвертирует доменную запись в wire-формат
func (m *Movie) ToAPI() api.Movie {
	return api.Movie{
		ID:          m.ID,
		Title:       m.Title,
		Director:    m.Director,
		ReleaseDate: m.ReleaseDate,
		OwnerID:     m.OwnerID,
		ImagePath:   m.ImagePath,
		Price:       m.Price,
		Lat:         m.Lat,
		Lng:         m.Lng,
		Version:     m.Version,
		Is3D:        m.Is3D,
		HasConflict: m.HasConflict,
	}
}

// MovieFromAPI конвертирует wire-формат в доменную запись
func MovieFromAPI(w api.Movie) *Movie {
	return &Movie{
		ID:          w.ID,
		Title:       w.Title,
		Director:    w.Director,
		ReleaseDate: w.ReleaseDate,
		OwnerID:     w.OwnerID,
		ImagePath:   w.ImagePath,
		Price:       w.Price,
		Lat:         w.Lat,
		Lng:         w.Lng,
		Version:     w.Version,
		Is3D:        w.Is3D,
		HasConflict: w.HasConflict,
	}
}

// MoviesToAPI конвертирует срез доменных записей в wire-формат
func MoviesToAPI(movies []*Movie) []api.Movie {
	out := make([]api.Movie, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.ToAPI())
	}
	return out
}

// MoviesFromAPI конвертирует срез wire-записей в доменные
func MoviesFromAPI(wire []api.Movie) []*Movie {
	out := make([]*Movie, 0, len(wire))
	for i := range wire {
		out = append(out, MovieFromAPI(wire[i]))
	}
	return out
}
