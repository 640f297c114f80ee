package catalog

import (
	"github.com/iudanet/moviekeeper/internal/models"
)

// ActionType тип действия над состоянием каталога
type ActionType string

// Словарь действий. Started/Succeeded/Failed покрывают три класса операций,
// ReloadSucceeded полностью заменяет список (смена фильтра или офлайн-чтение).
const (
	FetchStarted    ActionType = "FETCH_MOVIES_STARTED"
	FetchSucceeded  ActionType = "FETCH_MOVIES_SUCCEEDED"
	ReloadSucceeded ActionType = "RELOAD_MOVIES_SUCCEEDED"
	FetchFailed     ActionType = "FETCH_MOVIES_FAILED"

	SaveStarted   ActionType = "SAVE_MOVIE_STARTED"
	SaveSucceeded ActionType = "SAVE_MOVIE_SUCCEEDED"
	SaveFailed    ActionType = "SAVE_MOVIE_FAILED"

	DeleteStarted   ActionType = "DELETE_MOVIE_STARTED"
	DeleteSucceeded ActionType = "DELETE_MOVIE_SUCCEEDED"
	DeleteFailed    ActionType = "DELETE_MOVIE_FAILED"

	ConnectivityChanged ActionType = "CONNECTIVITY_CHANGED"
	SavedOfflineSet     ActionType = "SAVED_OFFLINE_SET"
)

// Action представляет одно действие с полезной нагрузкой.
// Заполняются только поля, осмысленные для данного типа.
type Action struct {
	Err    error           // payload для *_FAILED
	Movie  *models.Movie   // payload для save/delete succeeded
	Movies []*models.Movie // payload для fetch/reload succeeded
	Type   ActionType
	Flag   bool // payload для ConnectivityChanged и SavedOfflineSet
}
