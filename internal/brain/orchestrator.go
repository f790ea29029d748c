package brain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"critic.app/backend/common/llm"
	"critic.app/backend/common/logger"
	"critic.app/backend/internal/anchor"
	"critic.app/backend/internal/model"
)

const (
	defaultCompleteMaxTokens = 400
	defaultProgressMaxTokens = 300
)

type personaOutcome string

const (
	outcomeDone       personaOutcome = "done"
	outcomeFallenBack personaOutcome = "fallen_back"
)

type OrchestratorConfig struct {
	CompleteMaxTokens int
	ProgressMaxTokens int
	MaxParallel       int // 0 = one goroutine per persona
}

// Orchestrator asks every persona for feedback concurrently and merges the
// anchored results. A persona that errors, panics, or replies with garbage
// contributes a fallback annotation instead of failing the request.
type Orchestrator struct {
	cfg       OrchestratorConfig
	generator Generator
	personas  []model.Persona
}

func NewOrchestrator(cfg OrchestratorConfig, generator Generator, personas []model.Persona) *Orchestrator {
	if cfg.CompleteMaxTokens <= 0 {
		cfg.CompleteMaxTokens = defaultCompleteMaxTokens
	}
	if cfg.ProgressMaxTokens <= 0 {
		cfg.ProgressMaxTokens = defaultProgressMaxTokens
	}
	return &Orchestrator{
		cfg:       cfg,
		generator: generator,
		personas:  personas,
	}
}

// Feedback runs every persona's pipeline and returns the merged set. The
// document must be non-empty; validation is the caller's job.
func (o *Orchestrator) Feedback(ctx context.Context, req model.FeedbackRequest) model.AnnotationSet {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Mode:      logger.Ptr(string(req.Mode)),
		Component: "critic.brain.orchestrator",
	})

	sc := logger.StartSpan(ctx, "feedback.request", attribute.Int("personas", len(o.personas)))
	defer sc.End()
	ctx = sc.Context()

	start := time.Now()
	slog.InfoContext(ctx, "dispatching feedback",
		"personas", len(o.personas),
		"document_chars", len([]rune(req.Document)))

	// Plain Group, not WithContext: one persona's failure must not cancel its siblings.
	results := make([][]model.ResolvedAnnotation, len(o.personas))
	var g errgroup.Group
	if o.cfg.MaxParallel > 0 {
		g.SetLimit(o.cfg.MaxParallel)
	}
	for i, p := range o.personas {
		g.Go(func() error {
			results[i] = o.runPersona(ctx, p, req)
			return nil
		})
	}
	_ = g.Wait()

	set := anchor.Build(results...)

	slog.InfoContext(ctx, "feedback aggregated",
		"annotations", len(set),
		"duration_ms", time.Since(start).Milliseconds())

	return set
}

// runPersona is the isolation boundary for one persona: generate, normalize,
// resolve. It never returns an error.
func (o *Orchestrator) runPersona(ctx context.Context, p model.Persona, req model.FeedbackRequest) (annotations []model.ResolvedAnnotation) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Persona: logger.Ptr(string(p.ID)),
	})
	sc := logger.StartSpan(ctx, "feedback.persona")
	defer sc.End()
	ctx = sc.Context()

	start := time.Now()
	outcome := outcomeDone

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("persona pipeline panic: %v", r)
			sc.Fail(err)
			slog.ErrorContext(ctx, "persona pipeline panicked", "error", err)
			annotations = transportFallback(p.ID, req.Document)
			outcome = outcomeFallenBack
		}
		sc.SetAttributes(
			attribute.String("outcome", string(outcome)),
			attribute.Int("annotations", len(annotations)),
		)
		slog.InfoContext(ctx, "persona finished",
			"outcome", outcome,
			"annotations", len(annotations),
			"duration_ms", time.Since(start).Milliseconds())
	}()

	resp, err := o.generator.Generate(ctx, GenerationRequest{
		Persona:   p,
		Document:  req.Document,
		Purpose:   req.Purpose,
		Mode:      req.Mode,
		MaxTokens: o.maxTokens(req.Mode),
	})
	if err != nil {
		sc.Fail(err)
		slog.WarnContext(ctx, "persona generation failed", "error", err)
		outcome = outcomeFallenBack
		return transportFallback(p.ID, req.Document)
	}
	sc.SetAttributes(
		attribute.String("finish_reason", resp.FinishReason),
		attribute.Int("completion_tokens", resp.CompletionTokens),
	)

	normalized := anchor.Normalize(resp.Content, req.Document)
	if normalized.Malformed {
		if resp.FinishReason == llm.FinishReasonLength {
			slog.WarnContext(ctx, "persona reply truncated at token budget",
				"max_tokens", o.maxTokens(req.Mode),
				"completion_tokens", resp.CompletionTokens)
		}
		slog.WarnContext(ctx, "persona reply not parseable",
			"finish_reason", resp.FinishReason,
			"raw", logger.Truncate(resp.Content, 200))
		outcome = outcomeFallenBack
		return []model.ResolvedAnnotation{anchor.AnchorFallback(p.ID, normalized.Candidates[0])}
	}

	resolved := anchor.Resolve(p.ID, req.Document, normalized.Candidates)
	if dropped := len(normalized.Candidates) - len(resolved); dropped > 0 {
		slog.DebugContext(ctx, "dropped unresolvable quotes",
			"candidates", len(normalized.Candidates),
			"dropped", dropped)
	}
	return resolved
}

func (o *Orchestrator) maxTokens(mode model.Mode) int {
	if mode == model.ModeProgress {
		return o.cfg.ProgressMaxTokens
	}
	return o.cfg.CompleteMaxTokens
}

func transportFallback(persona model.PersonaID, document string) []model.ResolvedAnnotation {
	return []model.ResolvedAnnotation{anchor.AnchorFallback(persona, anchor.TransportFallback(document))}
}
