package service

import (
	"context"
	"strings"

	"critic.app/backend/common/id"
	"critic.app/backend/common/logger"
	"critic.app/backend/internal/model"
)

type InspireService interface {
	NextSentence(ctx context.Context, req model.InspireRequest) (string, error)
}

type SentenceWriter interface {
	NextSentence(ctx context.Context, req model.InspireRequest) string
}

type inspireService struct {
	writer SentenceWriter
}

func NewInspireService(writer SentenceWriter) InspireService {
	return &inspireService{writer: writer}
}

func (s *inspireService) NextSentence(ctx context.Context, req model.InspireRequest) (string, error) {
	if strings.TrimSpace(req.Document) == "" {
		return "", ErrTextRequired
	}
	if s.writer == nil {
		return "", ErrNotConfigured
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		RequestID: logger.Ptr(id.New()),
		Component: "critic.service.inspire",
	})
	return s.writer.NextSentence(ctx, req), nil
}
