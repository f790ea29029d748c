package service

import (
	"critic.app/backend/common/llm"
	"critic.app/backend/core/config"
	"critic.app/backend/internal/brain"
	"critic.app/backend/internal/persona"
)

type ServicesConfig struct {
	// LLM is nil when no provider credential is configured.
	LLM      llm.Client
	Feedback config.FeedbackConfig
}

type Services struct {
	feedback FeedbackService
	inspire  InspireService
	personas PersonaService
}

func NewServices(cfg ServicesConfig) *Services {
	var (
		runner FeedbackRunner
		writer SentenceWriter
	)
	if cfg.LLM != nil {
		runner = brain.NewOrchestrator(brain.OrchestratorConfig{
			CompleteMaxTokens: cfg.Feedback.CompleteMaxTokens,
			ProgressMaxTokens: cfg.Feedback.ProgressMaxTokens,
			MaxParallel:       cfg.Feedback.MaxParallelPersonas,
		}, brain.NewLLMGenerator(cfg.LLM), persona.All())
		writer = brain.NewInspirer(cfg.LLM, cfg.Feedback.InspireMaxTokens)
	}

	return &Services{
		feedback: NewFeedbackService(runner),
		inspire:  NewInspireService(writer),
		personas: NewPersonaService(),
	}
}

func (s *Services) Feedback() FeedbackService {
	return s.feedback
}

func (s *Services) Inspire() InspireService {
	return s.inspire
}

func (s *Services) Personas() PersonaService {
	return s.personas
}
