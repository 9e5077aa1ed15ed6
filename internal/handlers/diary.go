package handlers

import (
	"errors"
	"net/http"
	"github.com/gin-gonic/gin"
	"github.com/wowbook/clarity-backend/internal/platform/logger"
	"github.com/wowbook/clarity-backend/internal/requestdata"
	"github.com/wowbook/clarity-backend/internal/services"
	"github.com/wowbook/clarity-backend/internal/types"
)

type DiaryHandler struct {
	log      *logger.Logger
	diarySvc services.DiaryService
}

func NewDiaryHandler(log *logger.Logger, diarySvc services.DiaryService) *DiaryHandler {
	return &DiaryHandler{
		log:      log.With("handler", "DiaryHandler"),
		diarySvc: diarySvc,
	}
}

// POST /api/diary
func (h *DiaryHandler) Create(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("missing session"))
		return
	}

	var body struct {
		ProgramID string            `json:"programId"`
		Mood      types.WeatherMood `json:"mood"`
		Content   string            `json:"content"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	entry, err := h.diarySvc.Create(c.Request.Context(), rd.UserID, body.ProgramID, body.Mood, body.Content)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, entry)
}

// GET /api/diary
func (h *DiaryHandler) ListMine(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("missing session"))
		return
	}
	entries, err := h.diarySvc.ListByUser(c.Request.Context(), rd.UserID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"entries": entries})
}
