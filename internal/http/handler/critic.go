package handler

import (
	"net/http"

	"critic.app/backend/internal/http/dto"
	"critic.app/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type CriticHandler struct {
	personaService service.PersonaService
}

func NewCriticHandler(personaService service.PersonaService) *CriticHandler {
	return &CriticHandler{personaService: personaService}
}

func (h *CriticHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"critics": dto.ToCriticResponses(h.personaService.List())})
}
