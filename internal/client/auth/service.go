// Package auth управляет пользовательской сессией клиента: регистрация,
// вход, хранение токенов в локальном хранилище.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	httpClient "github.com/iudanet/moviekeeper/internal/client/api"
	"github.com/iudanet/moviekeeper/internal/client/storage"
	"github.com/iudanet/moviekeeper/internal/validation"
	pkgapi "github.com/iudanet/moviekeeper/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service defines the interface for authentication and session management
type Service interface {
	// Register регистрирует нового пользователя
	Register(ctx context.Context, username, password string) (*RegisterResult, error)

	// Login выполняет аутентификацию и сохраняет сессию в хранилище
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// Logout удаляет локальные данные сессии
	Logout(ctx context.Context) error

	// Session возвращает сохраненную сессию
	Session(ctx context.Context) (*storage.AuthData, error)

	// IsAuthenticated проверяет наличие действующей сессии
	IsAuthenticated(ctx context.Context) (bool, error)
}

type service struct {
	apiClient   httpClient.ClientAPI
	authStorage storage.AuthStorage
	logger      *slog.Logger
}

// NewService создает новый сервис сессии
func NewService(apiClient httpClient.ClientAPI, authStorage storage.AuthStorage, logger *slog.Logger) Service {
	return &service{
		apiClient:   apiClient,
		authStorage: authStorage,
		logger:      logger,
	}
}

// RegisterResult содержит результат регистрации
type RegisterResult struct {
	UserID   string // UUID пользователя
	Username string
}

// LoginResult содержит результат авторизации
type LoginResult struct {
	UserID       string
	Username     string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // время жизни access token в секундах
}

// Register регистрирует нового пользователя
func (s *service) Register(ctx context.Context, username, password string) (*RegisterResult, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	s.logger.Info("user registered", "username", username)

	return &RegisterResult{
		UserID:   resp.UserID,
		Username: username,
	}, nil
}

// Login выполняет аутентификацию и сохраняет сессию в хранилище
func (s *service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	authData := &storage.AuthData{
		Username:     username,
		UserID:       resp.UserID,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    time.Now().Unix() + resp.ExpiresIn,
	}
	if err := s.authStorage.SaveAuth(ctx, authData); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("user logged in", "username", username)

	return &LoginResult{
		UserID:       resp.UserID,
		Username:     username,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
	}, nil
}

// Logout удаляет локальные данные сессии.
// Сервер не уведомляется: access token просто истечет.
func (s *service) Logout(ctx context.Context) error {
	if err := s.authStorage.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.logger.Info("user logged out")
	return nil
}

// Session возвращает сохраненную сессию
func (s *service) Session(ctx context.Context) (*storage.AuthData, error) {
	auth, err := s.authStorage.GetAuth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return auth, nil
}

// IsAuthenticated проверяет наличие действующей сессии
func (s *service) IsAuthenticated(ctx context.Context) (bool, error) {
	return s.authStorage.IsAuthenticated(ctx)
}
