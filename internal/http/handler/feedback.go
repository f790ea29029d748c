package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"critic.app/backend/internal/http/dto"
	"critic.app/backend/internal/model"
	"critic.app/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// Feedback serves POST /api/feedback; the body's type picks the mode.
func (h *FeedbackHandler) Feedback(c *gin.Context) {
	var req dto.FeedbackRequest
	if !bindJSON(c, &req) {
		return
	}
	h.respond(c, req, model.ParseMode(req.Type))
}

// Progress serves POST /api/progress, always in draft mode.
func (h *FeedbackHandler) Progress(c *gin.Context) {
	var req dto.FeedbackRequest
	if !bindJSON(c, &req) {
		return
	}
	h.respond(c, req, model.ModeProgress)
}

func (h *FeedbackHandler) respond(c *gin.Context, req dto.FeedbackRequest, mode model.Mode) {
	ctx := c.Request.Context()

	set, err := h.feedbackService.Feedback(ctx, model.FeedbackRequest{
		Document: req.Text,
		Purpose:  req.Purpose,
		Mode:     mode,
	})
	if err != nil {
		writeServiceError(c, err, "Failed to generate feedback")
		return
	}

	c.JSON(http.StatusOK, dto.ToFeedbackResponse(set))
}

// bindJSON decodes the body into req. A missing body binds as an empty
// request so validation reports the missing text.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	slog.WarnContext(c.Request.Context(), "invalid request body", "error", err)
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	return false
}

func writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrTextRequired):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Text is required"})
	case errors.Is(err, service.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "API key not configured"})
	default:
		slog.ErrorContext(c.Request.Context(), fallback, "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fallback})
	}
}
