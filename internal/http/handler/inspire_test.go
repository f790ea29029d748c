package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"critic.app/backend/internal/http/dto"
	"critic.app/backend/internal/http/handler"
	"critic.app/backend/internal/model"
	"critic.app/backend/internal/service"
)

var _ = Describe("InspireHandler", func() {
	var (
		router *gin.Engine
		svc    *mockInspireService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockInspireService{}
		router.POST("/inspire", handler.NewInspireHandler(svc).Inspire)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/inspire", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("returns the suggestion", func() {
		svc.nextSentenceFn = func(_ context.Context, req model.InspireRequest) (string, error) {
			Expect(req.Purpose).To(Equal("story"))
			return "The door creaked open.", nil
		}

		w := post(`{"text":"It was late.","purpose":"story"}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp dto.InspireResponse
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(Equal(dto.InspireResponse{Success: true, Suggestion: "The door creaked open."}))
	})

	It("returns 400 when text is missing", func() {
		svc.nextSentenceFn = func(context.Context, model.InspireRequest) (string, error) {
			return "", service.ErrTextRequired
		}

		Expect(post(`{"text":"   "}`).Code).To(Equal(http.StatusBadRequest))
	})
})

var _ = Describe("CriticHandler", func() {
	It("lists critics in registration order", func() {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		svc := &mockPersonaService{personas: []model.Persona{
			{ID: model.PersonaEnthusiastic, DisplayName: "Maya Chen", Role: "Enthusiastic Supporter", Avatar: "M", Instructions: "secret prompt"},
			{ID: model.PersonaCreative, DisplayName: "Alex Turner", Role: "Creative Visionary", Avatar: "A"},
		}}
		router.GET("/critics", handler.NewCriticHandler(svc).List)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/critics", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).NotTo(ContainSubstring("secret prompt"))
		var resp struct {
			Critics []dto.CriticResponse `json:"critics"`
		}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Critics).To(HaveLen(2))
		Expect(resp.Critics[0]).To(Equal(dto.CriticResponse{ID: "enthusiastic", Name: "Maya Chen", Role: "Enthusiastic Supporter", Avatar: "M"}))
	})
})
