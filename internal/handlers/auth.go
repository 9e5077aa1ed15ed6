package handlers

import (
	"errors"
	"net/http"
	"github.com/gin-gonic/gin"
	"github.com/wowbook/clarity-backend/internal/platform/logger"
	"github.com/wowbook/clarity-backend/internal/services"
)

type AuthHandler struct {
	log     *logger.Logger
	authSvc services.AuthService
}

func NewAuthHandler(log *logger.Logger, authSvc services.AuthService) *AuthHandler {
	return &AuthHandler{
		log:     log.With("handler", "AuthHandler"),
		authSvc: authSvc,
	}
}

// POST /api/session
// Mint an anonymous session token. No body required.
func (h *AuthHandler) CreateSession(c *gin.Context) {
	token, userID, err := h.authSvc.CreateSession(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"token": token, "userId": userID.String()})
}

// POST /api/admin/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var body struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	token, err := h.authSvc.AdminLogin(c.Request.Context(), body.Password)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("invalid credentials"))
		return
	}
	RespondOK(c, gin.H{"token": token})
}
