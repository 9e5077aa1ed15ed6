package handlers

import (
	"errors"
	"net/http"
	"github.com/gin-gonic/gin"
	"github.com/wowbook/clarity-backend/internal/platform/logger"
	"github.com/wowbook/clarity-backend/internal/services"
)

type AdminHandler struct {
	log        *logger.Logger
	diarySvc   services.DiaryService
	keywordSvc services.KeywordService
}

func NewAdminHandler(log *logger.Logger, diarySvc services.DiaryService, keywordSvc services.KeywordService) *AdminHandler {
	return &AdminHandler{
		log:        log.With("handler", "AdminHandler"),
		diarySvc:   diarySvc,
		keywordSvc: keywordSvc,
	}
}

// GET /api/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.diarySvc.Stats(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, stats)
}

// POST /api/admin/keywords
func (h *AdminHandler) Keywords(c *gin.Context) {
	var body struct {
		ProgramID string `json:"programId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if body.ProgramID == "" {
		RespondError(c, http.StatusBadRequest, "bad_request", errors.New("programId required"))
		return
	}
	analysis, err := h.keywordSvc.Extract(c.Request.Context(), body.ProgramID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, analysis)
}
