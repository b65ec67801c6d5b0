package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dinehub/backend/internal/infrastructure/auth"
	"github.com/dinehub/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthHandler(t *testing.T, bootstrapUser, bootstrapPassword string) *AuthHandler {
	t.Helper()

	cfg := config.JWTConfig{
		Secret:             "test-secret-key-at-least-32-chars",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
		Issuer:             "test-issuer",
	}
	if bootstrapUser != "" {
		hash, err := auth.HashPassword(bootstrapPassword)
		require.NoError(t, err)
		cfg.BootstrapUser = bootstrapUser
		cfg.BootstrapPasswordHash = hash
	}
	return NewAuthHandler(auth.NewJWTService(cfg), cfg)
}

func issueTokenRequest(username, password string) *http.Request {
	body, _ := json.Marshal(TokenRequest{Username: username, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/auth/token", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAuthHandler_IssueToken_Success(t *testing.T) {
	handler := setupAuthHandler(t, "admin", "s3cret-pass")

	router := gin.New()
	router.POST("/auth/token", handler.IssueToken)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, issueTokenRequest("admin", "s3cret-pass"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "access_token")
	assert.Contains(t, w.Body.String(), "refresh_token")
}

func TestAuthHandler_IssueToken_WrongPassword(t *testing.T) {
	handler := setupAuthHandler(t, "admin", "s3cret-pass")

	router := gin.New()
	router.POST("/auth/token", handler.IssueToken)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, issueTokenRequest("admin", "wrong"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, w.Body.String(), "access_token")
}

func TestAuthHandler_IssueToken_UnknownUser(t *testing.T) {
	handler := setupAuthHandler(t, "admin", "s3cret-pass")

	router := gin.New()
	router.POST("/auth/token", handler.IssueToken)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, issueTokenRequest("root", "s3cret-pass"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_IssueToken_NotConfigured(t *testing.T) {
	handler := setupAuthHandler(t, "", "")

	router := gin.New()
	router.POST("/auth/token", handler.IssueToken)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, issueTokenRequest("admin", "anything"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Refresh(t *testing.T) {
	handler := setupAuthHandler(t, "admin", "s3cret-pass")

	router := gin.New()
	router.POST("/auth/token", handler.IssueToken)
	router.POST("/auth/refresh", handler.Refresh)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, issueTokenRequest("admin", "s3cret-pass"))
	require.Equal(t, http.StatusOK, w.Code)

	var issued struct {
		Data auth.TokenPair `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &issued))
	require.NotEmpty(t, issued.Data.RefreshToken)

	t.Run("valid refresh token", func(t *testing.T) {
		body, _ := json.Marshal(RefreshRequest{RefreshToken: issued.Data.RefreshToken})
		req := httptest.NewRequest(http.MethodPost, "/auth/refresh", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "access_token")
	})

	t.Run("access token rejected", func(t *testing.T) {
		body, _ := json.Marshal(RefreshRequest{RefreshToken: issued.Data.AccessToken})
		req := httptest.NewRequest(http.MethodPost, "/auth/refresh", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		body, _ := json.Marshal(RefreshRequest{RefreshToken: "not-a-token"})
		req := httptest.NewRequest(http.MethodPost, "/auth/refresh", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
