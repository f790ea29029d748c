package router

import (
	"critic.app/backend/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func FeedbackRouter(rg *gin.RouterGroup, h *handler.FeedbackHandler) {
	rg.POST("/feedback", h.Feedback)
	rg.POST("/progress", h.Progress)
}

func InspireRouter(rg *gin.RouterGroup, h *handler.InspireHandler) {
	rg.POST("/inspire", h.Inspire)
}

func CriticRouter(rg *gin.RouterGroup, h *handler.CriticHandler) {
	rg.GET("", h.List)
}
