package brain

import (
	"context"
	"fmt"

	"critic.app/backend/common/llm"
	"critic.app/backend/internal/model"
)

// GenerationRequest is what one persona is asked to comment on.
type GenerationRequest struct {
	Persona   model.Persona
	Document  string
	Purpose   string
	Mode      model.Mode
	MaxTokens int
}

// Generator returns a persona's raw reply. The reply content is untrusted
// text; parsing and anchoring happen in the caller.
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) (*llm.Response, error)
}

type llmGenerator struct {
	llm llm.Client
}

func NewLLMGenerator(client llm.Client) Generator {
	return &llmGenerator{llm: client}
}

func (g *llmGenerator) Generate(ctx context.Context, req GenerationRequest) (*llm.Response, error) {
	resp, err := g.llm.Complete(ctx, llm.Request{
		SystemPrompt: feedbackSystemPrompt(req.Persona, req.Mode),
		UserPrompt:   feedbackUserPrompt(req.Document, req.Purpose),
		MaxTokens:    req.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate %s feedback: %w", req.Persona.ID, err)
	}
	return resp, nil
}
