package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/iudanet/moviekeeper/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс удаленного шлюза каталога.
// Все операции принимают bearer-токен; любая ошибка трактуется движком
// синхронизации как недоступность сети и включает офлайн-путь.
type ClientAPI interface {
	// Register регистрирует нового пользователя
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)

	// Login выполняет аутентификацию пользователя
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// ListMovies возвращает страницу каталога с серверной фильтрацией.
	// is3D == nil означает отсутствие фильтра по этому полю,
	// namePrefix фильтрует по префиксу названия.
	ListMovies(ctx context.Context, token string, offset, limit int, is3D *bool, namePrefix string) ([]api.Movie, error)

	// CreateMovie создает запись; сервер присваивает ID и version 0
	CreateMovie(ctx context.Context, token string, movie api.Movie) (*api.Movie, error)

	// UpdateMovie обновляет запись. При несовпадении версии сервер
	// возвращает свою текущую копию с HasConflict=true, правка не применяется.
	UpdateMovie(ctx context.Context, token string, movie api.Movie) (*api.Movie, error)

	// DeleteMovie удаляет запись; удаление отсутствующего ID не ошибка
	DeleteMovie(ctx context.Context, token string, id string) error

	// Reconcile отправляет пакет накопленных в офлайне записей
	// и возвращает подмножество с конфликтом версий
	Reconcile(ctx context.Context, token string, movies []api.Movie) (*api.ReconcileResponse, error)

	// OpenPushChannel открывает push-канал; первый кадр авторизует
	// соединение токеном. Возвращает идемпотентную функцию закрытия.
	OpenPushChannel(ctx context.Context, token string, onEvent func(api.PushEvent)) (func(), error)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, "POST", "/api/v1/auth/register", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, "POST", "/api/v1/auth/login", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// ListMovies возвращает страницу каталога с серверной фильтрацией
func (c *Client) ListMovies(ctx context.Context, token string, offset, limit int, is3D *bool, namePrefix string) ([]api.Movie, error) {
	query := url.Values{}
	query.Set("offset", strconv.Itoa(offset))
	query.Set("size", strconv.Itoa(limit))
	if is3D != nil {
		query.Set("is3d", strconv.FormatBool(*is3D))
	}
	if namePrefix != "" {
		query.Set("name_filter", namePrefix)
	}

	var movies []api.Movie
	err := c.doRequest(ctx, "GET", "/api/v1/movies?"+query.Encode(), token, nil, &movies)
	if err != nil {
		return nil, fmt.Errorf("list movies request failed: %w", err)
	}
	return movies, nil
}

// CreateMovie создает новую запись каталога
func (c *Client) CreateMovie(ctx context.Context, token string, movie api.Movie) (*api.Movie, error) {
	var resp api.Movie
	err := c.doRequest(ctx, "POST", "/api/v1/movies", token, movie, &resp)
	if err != nil {
		return nil, fmt.Errorf("create movie request failed: %w", err)
	}
	return &resp, nil
}

// UpdateMovie обновляет запись каталога
func (c *Client) UpdateMovie(ctx context.Context, token string, movie api.Movie) (*api.Movie, error) {
	var resp api.Movie
	path := "/api/v1/movies/" + url.PathEscape(movie.ID)
	err := c.doRequest(ctx, "PUT", path, token, movie, &resp)
	if err != nil {
		return nil, fmt.Errorf("update movie request failed: %w", err)
	}
	return &resp, nil
}

// DeleteMovie удаляет запись каталога
func (c *Client) DeleteMovie(ctx context.Context, token string, id string) error {
	path := "/api/v1/movies/" + url.PathEscape(id)
	if err := c.doRequest(ctx, "DELETE", path, token, nil, nil); err != nil {
		return fmt.Errorf("delete movie request failed: %w", err)
	}
	return nil
}

// Reconcile отправляет пакет офлайн-записей на сверку версий
func (c *Client) Reconcile(ctx context.Context, token string, movies []api.Movie) (*api.ReconcileResponse, error) {
	req := api.ReconcileRequest{Movies: movies}
	var resp api.ReconcileResponse
	err := c.doRequest(ctx, "POST", "/api/v1/movies/reconcile", token, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("reconcile request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
