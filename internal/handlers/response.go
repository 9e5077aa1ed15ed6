package handlers

import (
	"errors"
	"net/http"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"github.com/wowbook/clarity-backend/internal/engine"
	"github.com/wowbook/clarity-backend/internal/platform/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondServiceError maps domain errors onto HTTP statuses.
func RespondServiceError(c *gin.Context, err error) {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		RespondError(c, apiErr.Status, apiErr.Code, apiErr.Err)
		return
	}
	var malformed *engine.MalformedAnswerError
	if errors.As(err, &malformed) {
		RespondError(c, http.StatusBadRequest, "malformed_answer", err)
		return
	}
	var insufficient *engine.InsufficientCatalogError
	if errors.As(err, &insufficient) {
		RespondError(c, http.StatusInternalServerError, "insufficient_catalog", err)
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		RespondError(c, http.StatusNotFound, "not_found", errors.New("not found"))
		return
	}
	RespondError(c, http.StatusInternalServerError, "internal", err)
}
