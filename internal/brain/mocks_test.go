package brain_test

import (
	"context"
	"sync"

	"critic.app/backend/common/llm"
	"critic.app/backend/internal/brain"
	"critic.app/backend/internal/model"
)

type mockGenerator struct {
	mu           sync.Mutex
	generateFn   func(ctx context.Context, req brain.GenerationRequest) (string, error)
	finishReason string
	requests     []brain.GenerationRequest
}

func (m *mockGenerator) Generate(ctx context.Context, req brain.GenerationRequest) (*llm.Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	content := "[]"
	if m.generateFn != nil {
		var err error
		content, err = m.generateFn(ctx, req)
		if err != nil {
			return nil, err
		}
	}
	reason := m.finishReason
	if reason == "" {
		reason = llm.FinishReasonStop
	}
	return &llm.Response{Content: content, FinishReason: reason}, nil
}

func (m *mockGenerator) requestFor(id model.PersonaID) (brain.GenerationRequest, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.requests {
		if r.Persona.ID == id {
			return r, true
		}
	}
	return brain.GenerationRequest{}, false
}

type mockLLMClient struct {
	mu         sync.Mutex
	completeFn func(ctx context.Context, req llm.Request) (*llm.Response, error)
	requests   []llm.Request
}

func (m *mockLLMClient) Complete(ctx context.Context, req llm.Request) (*llm.Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.completeFn != nil {
		return m.completeFn(ctx, req)
	}
	return &llm.Response{Content: "[]"}, nil
}

func (m *mockLLMClient) Model() string {
	return "mock"
}
