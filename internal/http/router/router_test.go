package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"critic.app/backend/internal/http/router"
	"critic.app/backend/internal/service"
)

var _ = Describe("SetupRoutes", func() {
	var engine *gin.Engine

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		engine = gin.New()
		router.SetupRoutes(engine, service.NewServices(service.ServicesConfig{}))
	})

	It("serves the health check", func() {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]string
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["status"]).To(Equal("healthy"))
		Expect(resp["timestamp"]).NotTo(BeEmpty())
	})

	It("lists the four critics", func() {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/critics", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"enthusiastic"`))
		Expect(w.Body.String()).To(ContainSubstring(`"creative"`))
	})

	DescribeTable("refuses generation without a provider",
		func(path string) {
			req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(`{"text":"Some writing."}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			engine.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).To(ContainSubstring("API key not configured"))
		},
		Entry("feedback", "/api/feedback"),
		Entry("progress", "/api/progress"),
		Entry("inspire", "/api/inspire"),
	)

	DescribeTable("reports missing text for an empty body",
		func(path string) {
			req := httptest.NewRequest(http.MethodPost, path, nil)
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			engine.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(MatchJSON(`{"error":"Text is required"}`))
		},
		Entry("feedback", "/api/feedback"),
		Entry("progress", "/api/progress"),
		Entry("inspire", "/api/inspire"),
	)

	It("validates text before configuration", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/feedback", bytes.NewBufferString(`{"text":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		engine.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})
})
