package handler

import (
	"net/http"

	"critic.app/backend/internal/http/dto"
	"critic.app/backend/internal/model"
	"critic.app/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type InspireHandler struct {
	inspireService service.InspireService
}

func NewInspireHandler(inspireService service.InspireService) *InspireHandler {
	return &InspireHandler{inspireService: inspireService}
}

func (h *InspireHandler) Inspire(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.InspireRequest
	if !bindJSON(c, &req) {
		return
	}

	suggestion, err := h.inspireService.NextSentence(ctx, model.InspireRequest{
		Document: req.Text,
		Purpose:  req.Purpose,
	})
	if err != nil {
		writeServiceError(c, err, "Failed to generate suggestion")
		return
	}

	c.JSON(http.StatusOK, dto.InspireResponse{Success: true, Suggestion: suggestion})
}
