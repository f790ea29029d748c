package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"critic.app/backend/common/logger"
	"critic.app/backend/internal/http/dto"
	"github.com/gin-gonic/gin"
)

const maxPanicValueLen = 200

// Recovery turns a handler panic into a 500 in the API's error shape. The
// panic value is truncated and the stack goes to a separate debug record;
// request bodies are never logged since they hold the user's document.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{Component: "critic.http"})

			slog.ErrorContext(ctx, "panic recovered",
				"error", logger.Truncate(fmt.Sprint(r), maxPanicValueLen),
				"method", c.Request.Method,
				"path", c.FullPath())
			slog.DebugContext(ctx, "panic stack", "stack", string(debug.Stack()))

			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: panicMessage(c.Request.URL.Path)})
		}()
		c.Next()
	}
}

// panicMessage matches the failure message the route reports for ordinary
// generation errors.
func panicMessage(path string) string {
	switch {
	case strings.HasSuffix(path, "/feedback"), strings.HasSuffix(path, "/progress"):
		return "Failed to generate feedback"
	case strings.HasSuffix(path, "/inspire"):
		return "Failed to generate suggestion"
	default:
		return "Internal server error"
	}
}
