package service

import (
	"context"
	"log/slog"
	"strings"

	"critic.app/backend/common/id"
	"critic.app/backend/common/logger"
	"critic.app/backend/internal/model"
)

type FeedbackService interface {
	Feedback(ctx context.Context, req model.FeedbackRequest) (model.AnnotationSet, error)
}

// FeedbackRunner is the orchestrator as seen by the service.
type FeedbackRunner interface {
	Feedback(ctx context.Context, req model.FeedbackRequest) model.AnnotationSet
}

type feedbackService struct {
	runner FeedbackRunner
}

// NewFeedbackService wraps runner with request validation. A nil runner means
// no provider credential is configured.
func NewFeedbackService(runner FeedbackRunner) FeedbackService {
	return &feedbackService{runner: runner}
}

// Feedback validates the request and runs every persona. Only validation and
// configuration problems are returned as errors; persona failures show up as
// fallback annotations in the set.
func (s *feedbackService) Feedback(ctx context.Context, req model.FeedbackRequest) (model.AnnotationSet, error) {
	if strings.TrimSpace(req.Document) == "" {
		return nil, ErrTextRequired
	}
	if s.runner == nil {
		slog.ErrorContext(ctx, "feedback requested without a configured provider")
		return nil, ErrNotConfigured
	}
	if req.Mode == "" {
		req.Mode = model.ModeComplete
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		RequestID: logger.Ptr(id.New()),
		Component: "critic.service.feedback",
	})

	return s.runner.Feedback(ctx, req), nil
}
