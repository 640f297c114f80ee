package catalog

import (
	"github.com/iudanet/moviekeeper/internal/models"
)

// Reduce чистая функция перехода состояния.
// Тотальна над словарем действий: нераспознанное действие
// возвращает состояние без изменений и никогда не падает.
func Reduce(state State, action Action) State {
	switch action.Type {
	case FetchStarted:
		state.Fetching = true
		state.FetchErr = nil
		return state

	case FetchSucceeded:
		// Страница дописывается к уже загруженным записям
		state.Movies = append(copyMovies(state.Movies), action.Movies...)
		state.Fetching = false
		return state

	case ReloadSucceeded:
		// Полная замена списка
		state.Movies = copyMovies(action.Movies)
		state.Fetching = false
		return state

	case FetchFailed:
		state.FetchErr = action.Err
		state.Fetching = false
		return state

	case SaveStarted:
		state.Saving = true
		state.SaveErr = nil
		return state

	case SaveSucceeded:
		if action.Movie != nil {
			state.Movies = upsert(state.Movies, action.Movie)
		}
		state.Saving = false
		return state

	case SaveFailed:
		state.SaveErr = action.Err
		state.Saving = false
		return state

	case DeleteStarted:
		state.Deleting = true
		state.DeleteErr = nil
		return state

	case DeleteSucceeded:
		if action.Movie != nil {
			state.Movies = remove(state.Movies, action.Movie.ID)
		}
		state.Deleting = false
		return state

	case DeleteFailed:
		state.DeleteErr = action.Err
		state.Deleting = false
		return state

	case ConnectivityChanged:
		state.Connected = action.Flag
		return state

	case SavedOfflineSet:
		state.SavedOffline = action.Flag
		return state

	default:
		return state
	}
}

// upsert вставляет запись по ID: новая запись встает в начало списка,
// существующая заменяется на месте. Идентичность только по ID.
func upsert(movies []*models.Movie, movie *models.Movie) []*models.Movie {
	idx := find(movies, movie.ID)
	if idx == -1 {
		out := make([]*models.Movie, 0, len(movies)+1)
		out = append(out, movie)
		return append(out, movies...)
	}
	out := copyMovies(movies)
	out[idx] = movie
	return out
}

// remove удаляет запись по ID, отсутствие записи не ошибка
func remove(movies []*models.Movie, id string) []*models.Movie {
	idx := find(movies, id)
	if idx == -1 {
		return movies
	}
	out := copyMovies(movies)
	return append(out[:idx], out[idx+1:]...)
}

// copyMovies копирует срез, чтобы предыдущие снимки состояния
// не менялись под руками у подписчиков
func copyMovies(movies []*models.Movie) []*models.Movie {
	out := make([]*models.Movie, len(movies))
	copy(out, movies)
	return out
}
