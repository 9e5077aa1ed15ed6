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

type AnalyzeHandler struct {
	log         *logger.Logger
	analysisSvc services.AnalysisService
}

func NewAnalyzeHandler(log *logger.Logger, analysisSvc services.AnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{
		log:         log.With("handler", "AnalyzeHandler"),
		analysisSvc: analysisSvc,
	}
}

// POST /api/analyze
// Run the full quiz analysis for the session user.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("missing session"))
		return
	}

	var body struct {
		Answers []types.Answer `json:"answers"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if len(body.Answers) == 0 {
		RespondError(c, http.StatusBadRequest, "bad_request", errors.New("answers required"))
		return
	}

	result, err := h.analysisSvc.Analyze(c.Request.Context(), rd.UserID, body.Answers)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}
