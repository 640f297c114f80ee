package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/moviekeeper/internal/models"
	"github.com/iudanet/moviekeeper/internal/server/storage"
	"github.com/iudanet/moviekeeper/pkg/api"
)

// mockUserStorage is a mock implementation of UserStorage for testing
type mockUserStorage struct {
	users        map[string]*models.User // username -> User
	createError  error
	getUserError error
	lastLogins   map[string]time.Time
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{
		users:      make(map[string]*models.User),
		lastLogins: make(map[string]time.Time),
	}
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.users[user.Username]; exists {
		return storage.ErrUserAlreadyExists
	}
	m.users[user.Username] = user
	return nil
}

func (m *mockUserStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.getUserError != nil {
		return nil, m.getUserError
	}
	user, ok := m.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (m *mockUserStorage) UpdateUser(ctx context.Context, user *models.User) error {
	return nil
}

func (m *mockUserStorage) DeleteUser(ctx context.Context, id string) error {
	return nil
}

func (m *mockUserStorage) UpdateLastLogin(ctx context.Context, userID string, loginTime time.Time) error {
	m.lastLogins[userID] = loginTime
	return nil
}

// mockTokenStorage is a mock implementation of TokenStorage for testing
type mockTokenStorage struct {
	tokens    map[string]*models.RefreshToken // token -> RefreshToken
	saveError error
}

func newMockTokenStorage() *mockTokenStorage {
	return &mockTokenStorage{tokens: make(map[string]*models.RefreshToken)}
}

func (m *mockTokenStorage) SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	if m.saveError != nil {
		return m.saveError
	}
	m.tokens[token.Token] = token
	return nil
}

func (m *mockTokenStorage) GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	rt, ok := m.tokens[token]
	if !ok {
		return nil, storage.ErrTokenNotFound
	}
	return rt, nil
}

func (m *mockTokenStorage) GetUserTokens(ctx context.Context, userID string) ([]*models.RefreshToken, error) {
	var result []*models.RefreshToken
	for _, token := range m.tokens {
		if token.UserID == userID {
			result = append(result, token)
		}
	}
	return result, nil
}

func (m *mockTokenStorage) DeleteRefreshToken(ctx context.Context, token string) error {
	if _, ok := m.tokens[token]; !ok {
		return storage.ErrTokenNotFound
	}
	delete(m.tokens, token)
	return nil
}

func (m *mockTokenStorage) DeleteUserTokens(ctx context.Context, userID string) (int, error) {
	count := 0
	for value, token := range m.tokens {
		if token.UserID == userID {
			delete(m.tokens, value)
			count++
		}
	}
	return count, nil
}

func (m *mockTokenStorage) DeleteExpiredTokens(ctx context.Context) (int, error) {
	return 0, nil
}

func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError,
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:          []byte("test-secret"),
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	}
}

func newTestAuthHandler() (*AuthHandler, *mockUserStorage, *mockTokenStorage) {
	users := newMockUserStorage()
	tokens := newMockTokenStorage()
	handler := NewAuthHandler(setupTestLogger(), users, tokens, testJWTConfig())
	return handler, users, tokens
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	handler, users, _ := newTestAuthHandler()

	rec := postJSON(t, handler.Register, "/api/v1/auth/register", api.RegisterRequest{
		Username: "newuser",
		Password: "password123",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp api.RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.UserID)

	// Пользователь сохранен с bcrypt хешем, не с паролем
	user, ok := users.users["newuser"]
	require.True(t, ok)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	handler, _, _ := newTestAuthHandler()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "empty username", username: "", password: "password123"},
		{name: "short username", username: "ab", password: "password123"},
		{name: "short password", username: "validuser", password: "short"},
		{name: "invalid characters", username: "bad user!", password: "password123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, handler.Register, "/api/v1/auth/register", api.RegisterRequest{
				Username: tt.username,
				Password: tt.password,
			})
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAuthHandler_Register_DuplicateUsername(t *testing.T) {
	handler, _, _ := newTestAuthHandler()

	req := api.RegisterRequest{Username: "duplicate", Password: "password123"}

	rec := postJSON(t, handler.Register, "/api/v1/auth/register", req)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, handler.Register, "/api/v1/auth/register", req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func registerTestUser(t *testing.T, users *mockUserStorage, username, password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		ID:           "user-" + username,
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	require.NoError(t, users.CreateUser(context.Background(), user))
	return user
}

func TestAuthHandler_Login(t *testing.T) {
	handler, users, tokens := newTestAuthHandler()
	user := registerTestUser(t, users, "loginuser", "password123")

	rec := postJSON(t, handler.Login, "/api/v1/auth/login", api.LoginRequest{
		Username: "loginuser",
		Password: "password123",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, user.ID, resp.UserID)
	assert.Equal(t, int64((15 * time.Minute).Seconds()), resp.ExpiresIn)

	// Access token валиден и содержит user_id
	claims, err := ValidateAccessToken(testJWTConfig(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "loginuser", claims.Username)

	// Refresh token сохранен в хранилище
	_, ok := tokens.tokens[resp.RefreshToken]
	assert.True(t, ok)

	// last_login обновлен
	_, ok = users.lastLogins[user.ID]
	assert.True(t, ok)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	handler, users, _ := newTestAuthHandler()
	registerTestUser(t, users, "loginuser", "password123")

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "loginuser", password: "wrongpassword"},
		{name: "unknown user", username: "ghostuser", password: "password123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, handler.Login, "/api/v1/auth/login", api.LoginRequest{
				Username: tt.username,
				Password: tt.password,
			})
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			var resp api.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			// Ответ не раскрывает, что именно не совпало
			assert.Equal(t, "invalid credentials", resp.Message)
		})
	}
}

func TestAuthHandler_Refresh(t *testing.T) {
	handler, users, tokens := newTestAuthHandler()
	user := registerTestUser(t, users, "refreshuser", "password123")

	old := &models.RefreshToken{
		Token:     "old-refresh-token",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	require.NoError(t, tokens.SaveRefreshToken(context.Background(), old))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.Header.Set("Authorization", "Bearer old-refresh-token")
	rec := httptest.NewRecorder()
	handler.Refresh(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEqual(t, "old-refresh-token", resp.RefreshToken)

	// Старый токен отозван, новый сохранен
	_, oldExists := tokens.tokens["old-refresh-token"]
	assert.False(t, oldExists)
	_, newExists := tokens.tokens[resp.RefreshToken]
	assert.True(t, newExists)
}

func TestAuthHandler_Refresh_Expired(t *testing.T) {
	handler, users, tokens := newTestAuthHandler()
	user := registerTestUser(t, users, "expireduser", "password123")

	expired := &models.RefreshToken{
		Token:     "expired-token",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Hour),
		CreatedAt: time.Now().Add(-25 * time.Hour),
	}
	require.NoError(t, tokens.SaveRefreshToken(context.Background(), expired))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()
	handler.Refresh(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	handler, users, tokens := newTestAuthHandler()
	user := registerTestUser(t, users, "logoutuser", "password123")

	accessToken, _, err := GenerateAccessToken(testJWTConfig(), user.ID, user.Username)
	require.NoError(t, err)

	for _, value := range []string{"token-a", "token-b"} {
		require.NoError(t, tokens.SaveRefreshToken(context.Background(), &models.RefreshToken{
			Token:     value,
			UserID:    user.ID,
			ExpiresAt: time.Now().Add(time.Hour),
			CreatedAt: time.Now(),
		}))
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	rec := httptest.NewRecorder()
	handler.Logout(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, tokens.tokens)
}

func TestAuthHandler_Logout_MissingToken(t *testing.T) {
	handler, _, _ := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	handler.Logout(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
