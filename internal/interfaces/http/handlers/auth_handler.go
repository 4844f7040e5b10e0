package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
	"github.com/abeer2626/sami-shops/internal/interfaces/http/middleware"
	"github.com/abeer2626/sami-shops/internal/interfaces/http/response"
	"github.com/abeer2626/sami-shops/pkg/crypto"
	"github.com/abeer2626/sami-shops/pkg/jwt"
	"github.com/abeer2626/sami-shops/pkg/redis"
)

// SessionTTL is how long a server-side login session lives
const SessionTTL = 24 * time.Hour

type authService interface {
	Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error)
	Login(ctx context.Context, input *entities.LoginInput) (*entities.User, *jwt.TokenPair, error)
	GetMe(ctx context.Context, userID uuid.UUID) (*entities.User, error)
}

type sessionStore interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	DeleteSession(ctx context.Context, sessionID string) error
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase  authService
	sessionStore sessionStore
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase authService, sessionStore sessionStore) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, sessionStore: sessionStore}
}

// Register handles account registration
// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, user)
}

// Login handles login. With useSession set, the token pair is kept
// server side and only an opaque session ID goes to the client.
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	user, tokens, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	if input.UseSession && h.sessionStore != nil {
		sessionID, err := crypto.GenerateRandomToken(32)
		if err != nil {
			response.Error(c, err)
			return
		}
		data := &redis.SessionData{
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
		}
		if err := h.sessionStore.CreateSession(c.Request.Context(), sessionID, data, SessionTTL); err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, http.StatusOK, entities.AuthResponse{
			SessionID: sessionID,
			User:      user,
		})
		return
	}

	response.Success(c, http.StatusOK, entities.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         user,
	})
}

// Logout deletes the caller's server-side session if one exists
// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID != "" && h.sessionStore != nil {
		if err := h.sessionStore.DeleteSession(c.Request.Context(), sessionID); err != nil {
			response.Error(c, err)
			return
		}
	}
	response.Success(c, http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the authenticated user
// GET /me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.authUsecase.GetMe(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}
