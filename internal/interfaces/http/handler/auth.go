package handler

import (
	"github.com/dinehub/backend/internal/infrastructure/auth"
	"github.com/dinehub/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler issues and refreshes API tokens. Identity management lives
// outside this service; the only credential it knows is the bootstrap
// user from configuration.
type AuthHandler struct {
	BaseHandler
	jwtService *auth.JWTService
	jwtConfig  config.JWTConfig
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(jwtService *auth.JWTService, jwtConfig config.JWTConfig) *AuthHandler {
	return &AuthHandler{
		jwtService: jwtService,
		jwtConfig:  jwtConfig,
	}
}

// TokenRequest carries bootstrap credentials
type TokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// IssueToken exchanges the bootstrap credentials for a token pair
// POST /api/v1/auth/token
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	if h.jwtConfig.BootstrapUser == "" || h.jwtConfig.BootstrapPasswordHash == "" {
		h.Unauthorized(c, "Token issuing is not configured")
		return
	}
	if req.Username != h.jwtConfig.BootstrapUser ||
		!auth.VerifyPassword(h.jwtConfig.BootstrapPasswordHash, req.Password) {
		h.Unauthorized(c, "Invalid credentials")
		return
	}

	pair, err := h.jwtService.GenerateTokenPair(uuid.NewString(), req.Username, auth.RoleAdmin)
	if err != nil {
		h.InternalError(c, "Failed to issue token")
		return
	}

	h.Success(c, pair)
}

// Refresh exchanges a refresh token for a new token pair
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	pair, err := h.jwtService.RefreshAccessToken(req.RefreshToken)
	if err != nil {
		h.Unauthorized(c, "Invalid refresh token")
		return
	}

	h.Success(c, pair)
}
