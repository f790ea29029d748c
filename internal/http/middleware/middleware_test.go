package middleware_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"critic.app/backend/common/logger"
	"critic.app/backend/internal/http/middleware"
)

var _ = Describe("CORS", func() {
	newRouter := func(origins ...string) *gin.Engine {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.Use(middleware.CORS(origins))
		r.POST("/api/feedback", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	It("answers preflight requests without reaching the handler", func() {
		r := newRouter("*")
		req := httptest.NewRequest(http.MethodOptions, "/api/feedback", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", "POST")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(w.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
		Expect(w.Header().Get("Access-Control-Allow-Methods")).To(ContainSubstring("POST"))
	})

	It("echoes an allowed origin", func() {
		r := newRouter("http://app.test")
		req := httptest.NewRequest(http.MethodPost, "/api/feedback", nil)
		req.Header.Set("Origin", "http://app.test")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Access-Control-Allow-Origin")).To(Equal("http://app.test"))
	})

	It("rejects other origins", func() {
		r := newRouter("http://app.test")
		req := httptest.NewRequest(http.MethodPost, "/api/feedback", nil)
		req.Header.Set("Origin", "http://evil.test")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusForbidden))
		Expect(w.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
	})

	It("leaves requests alone when no origins are configured", func() {
		r := newRouter()
		req := httptest.NewRequest(http.MethodPost, "/api/feedback", nil)
		req.Header.Set("Origin", "http://app.test")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
	})
})

var _ = Describe("Recovery", func() {
	It("turns a panic into a 500", func() {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.Use(middleware.Recovery(), middleware.Logger())
		r.GET("/boom", func(*gin.Context) { panic("boom") })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).To(MatchJSON(`{"error":"Internal server error"}`))
	})

	It("answers with the route's failure message and keeps the document out of the log", func() {
		var buf bytes.Buffer
		previous := slog.Default()
		slog.SetDefault(slog.New(logger.NewTraceHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))))
		DeferCleanup(func() { slog.SetDefault(previous) })

		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.Use(middleware.Recovery())
		r.POST("/api/feedback", func(c *gin.Context) {
			body, _ := io.ReadAll(c.Request.Body)
			panic(strings.Repeat("x", 500) + string(body))
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(`{"text":"my private draft"}`)))

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).To(MatchJSON(`{"error":"Failed to generate feedback"}`))
		Expect(buf.String()).To(ContainSubstring(`"component":"critic.http"`))
		Expect(buf.String()).To(ContainSubstring(`"path":"/api/feedback"`))
		Expect(buf.String()).NotTo(ContainSubstring("my private draft"))
		Expect(buf.String()).NotTo(ContainSubstring("goroutine"))
	})
})

var _ = Describe("BodyLimit", func() {
	It("stops reading past the limit", func() {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.Use(middleware.BodyLimit(8))
		r.POST("/echo", func(c *gin.Context) {
			if _, err := io.ReadAll(c.Request.Body); err != nil {
				c.Status(http.StatusRequestEntityTooLarge)
				return
			}
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("0123456789")))
		Expect(w.Code).To(Equal(http.StatusRequestEntityTooLarge))

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("0123")))
		Expect(w.Code).To(Equal(http.StatusOK))
	})
})
