package router

import (
	"net/http"
	"time"

	"critic.app/backend/internal/http/handler"
	"critic.app/backend/internal/service"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, services *service.Services) {
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	criticHandler := handler.NewCriticHandler(services.Personas())
	CriticRouter(api.Group("/critics"), criticHandler)

	feedbackHandler := handler.NewFeedbackHandler(services.Feedback())
	FeedbackRouter(api, feedbackHandler)

	inspireHandler := handler.NewInspireHandler(services.Inspire())
	InspireRouter(api, inspireHandler)
}
