package catalog

import (
	"github.com/iudanet/moviekeeper/internal/models"
)

// State представляет состояние каталога на клиенте.
// Создается один раз на сессию и изменяется только через Reduce.
type State struct {
	FetchErr     error           // последняя ошибка загрузки, сбрасывается при старте новой
	SaveErr      error           // последняя ошибка сохранения
	DeleteErr    error           // последняя ошибка удаления
	Movies       []*models.Movie // записи каталога, свежие сохранения в начале
	Fetching     bool            // true пока выполняется загрузка
	Saving       bool            // true пока выполняется сохранение
	Deleting     bool            // true пока выполняется удаление
	Connected    bool            // последняя известная доступность сети
	SavedOffline bool            // true после записи по локальному пути, сбрасывается UI
}

// NewState возвращает начальное состояние каталога
func NewState() State {
	return State{}
}

// find возвращает индекс записи с данным ID или -1
func find(movies []*models.Movie, id string) int {
	for i, m := range movies {
		if m.ID == id {
			return i
		}
	}
	return -1
}
