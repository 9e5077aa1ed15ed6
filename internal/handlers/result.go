package handlers

import (
	"errors"
	"net/http"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wowbook/clarity-backend/internal/platform/logger"
	"github.com/wowbook/clarity-backend/internal/requestdata"
	"github.com/wowbook/clarity-backend/internal/services"
	"github.com/wowbook/clarity-backend/internal/types"
)

type ResultHandler struct {
	log          *logger.Logger
	resultSvc    services.ResultService
	shareCardSvc services.ShareCardService
}

// NewResultHandler takes a nil shareCardSvc when no card font is configured.
func NewResultHandler(log *logger.Logger, resultSvc services.ResultService, shareCardSvc services.ShareCardService) *ResultHandler {
	return &ResultHandler{
		log:          log.With("handler", "ResultHandler"),
		resultSvc:    resultSvc,
		shareCardSvc: shareCardSvc,
	}
}

// POST /api/results
// Persist an analysis result for the session user.
func (h *ResultHandler) Save(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("missing session"))
		return
	}

	var body struct {
		Result  *types.RecommendationResult `json:"result"`
		Answers []types.Answer              `json:"answers"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if body.Result == nil {
		RespondError(c, http.StatusBadRequest, "bad_request", errors.New("result required"))
		return
	}

	saved, err := h.resultSvc.Save(c.Request.Context(), rd.UserID, body.Result, body.Answers)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, saved)
}

// GET /api/results/:id
// Public: saved results are shareable by link.
func (h *ResultHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", errors.New("invalid result id"))
		return
	}
	row, err := h.resultSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, row)
}

// GET /api/results
// List the session user's saved results.
func (h *ResultHandler) ListMine(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("missing session"))
		return
	}
	rows, err := h.resultSvc.ListByUser(c.Request.Context(), rd.UserID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"results": rows})
}

// GET /api/results/:id/card.png
// Public share card image for a saved result.
func (h *ResultHandler) Card(c *gin.Context) {
	if h.shareCardSvc == nil {
		RespondError(c, http.StatusServiceUnavailable, "share_card_disabled", errors.New("share card rendering is not configured"))
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", errors.New("invalid result id"))
		return
	}
	row, err := h.resultSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	png, err := h.shareCardSvc.Render(c.Request.Context(), row)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
