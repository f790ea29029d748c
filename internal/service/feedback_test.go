package service_test

import (
	"context"

	"critic.app/backend/core/config"
	"critic.app/backend/internal/model"
	"critic.app/backend/internal/service"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FeedbackService", func() {
	var (
		ctx    context.Context
		runner *mockRunner
		svc    service.FeedbackService
	)

	BeforeEach(func() {
		ctx = context.Background()
		runner = &mockRunner{}
		svc = service.NewFeedbackService(runner)
	})

	DescribeTable("rejects empty text before generating anything",
		func(text string) {
			_, err := svc.Feedback(ctx, model.FeedbackRequest{Document: text})

			Expect(err).To(MatchError(service.ErrTextRequired))
			Expect(runner.calls).To(Equal(0))
		},
		Entry("empty", ""),
		Entry("whitespace", "  \n\t "),
	)

	It("reports a missing provider as a configuration failure", func() {
		svc = service.NewFeedbackService(nil)

		_, err := svc.Feedback(ctx, model.FeedbackRequest{Document: "Some text."})

		Expect(err).To(MatchError(service.ErrNotConfigured))
	})

	It("checks the text before the configuration", func() {
		svc = service.NewFeedbackService(nil)

		_, err := svc.Feedback(ctx, model.FeedbackRequest{Document: " "})

		Expect(err).To(MatchError(service.ErrTextRequired))
	})

	It("defaults the mode and tags the request", func() {
		runner.feedbackFn = func(context.Context, model.FeedbackRequest) model.AnnotationSet {
			return model.AnnotationSet{{ID: "creative:0-4", PersonaID: model.PersonaCreative, End: 4}}
		}

		set, err := svc.Feedback(ctx, model.FeedbackRequest{Document: "Some text."})

		Expect(err).NotTo(HaveOccurred())
		Expect(set).To(HaveLen(1))
		Expect(runner.lastReq.Mode).To(Equal(model.ModeComplete))
		Expect(runner.lastFields.RequestID).NotTo(BeNil())
	})
})

var _ = Describe("InspireService", func() {
	It("validates text and configuration", func() {
		ctx := context.Background()

		_, err := service.NewInspireService(&mockWriter{}).NextSentence(ctx, model.InspireRequest{})
		Expect(err).To(MatchError(service.ErrTextRequired))

		_, err = service.NewInspireService(nil).NextSentence(ctx, model.InspireRequest{Document: "Hi."})
		Expect(err).To(MatchError(service.ErrNotConfigured))

		writer := &mockWriter{}
		got, err := service.NewInspireService(writer).NextSentence(ctx, model.InspireRequest{Document: "Hi."})
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal("Next."))
		Expect(writer.calls).To(Equal(1))
	})
})

var _ = Describe("Services", func() {
	It("refuses feedback when no LLM client is configured", func() {
		services := service.NewServices(service.ServicesConfig{})

		_, err := services.Feedback().Feedback(context.Background(), model.FeedbackRequest{Document: "Text."})
		Expect(err).To(MatchError(service.ErrNotConfigured))
		Expect(services.Personas().List()).To(HaveLen(4))
	})

	It("wires the orchestrator to the LLM client", func() {
		services := service.NewServices(service.ServicesConfig{
			LLM:      &stubLLM{content: `[{"selectedText":"quiet","comment":"Nice."}]`},
			Feedback: config.FeedbackConfig{CompleteMaxTokens: 400, ProgressMaxTokens: 300, MaxParallelPersonas: 2},
		})

		set, err := services.Feedback().Feedback(context.Background(), model.FeedbackRequest{Document: "A quiet morning."})

		Expect(err).NotTo(HaveOccurred())
		Expect(set).To(HaveLen(4))
		for _, a := range set {
			Expect(a.Start).To(Equal(2))
			Expect(a.End).To(Equal(7))
		}
	})
})
