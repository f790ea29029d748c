package brain

import (
	"context"
	"log/slog"

	"critic.app/backend/common/llm"
	"critic.app/backend/common/logger"
	"critic.app/backend/internal/model"
)

const (
	defaultInspireMaxTokens = 100
	InspireApology          = " I'm having trouble generating a suggestion right now."
)

// Inspirer continues a text with one sentence. There is no anchoring: the
// model's text is passed through after light cleanup.
type Inspirer struct {
	llm       llm.Client
	maxTokens int
}

func NewInspirer(client llm.Client, maxTokens int) *Inspirer {
	if maxTokens <= 0 {
		maxTokens = defaultInspireMaxTokens
	}
	return &Inspirer{llm: client, maxTokens: maxTokens}
}

// NextSentence never fails: a generation error yields a fixed apology.
func (i *Inspirer) NextSentence(ctx context.Context, req model.InspireRequest) string {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "critic.brain.inspire"})

	resp, err := i.llm.Complete(ctx, llm.Request{
		SystemPrompt: inspireSystemPrompt,
		UserPrompt:   inspireUserPrompt(req.Document, req.Purpose),
		MaxTokens:    i.maxTokens,
	})
	if err != nil {
		slog.WarnContext(ctx, "next sentence generation failed", "error", err)
		return InspireApology
	}
	suggestion, edits := SanitizeSuggestion(resp.Content)
	if edits > 0 {
		slog.DebugContext(ctx, "sanitized suggestion", "edits", edits)
	}
	return suggestion
}
