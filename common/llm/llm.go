package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/invopop/jsonschema"
)

// Provider constants for LLM provider selection.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Normalized finish reasons. Provider-specific reasons pass through as-is.
const (
	FinishReasonStop   = "stop"
	FinishReasonLength = "length"
)

var ErrAPIKeyRequired = errors.New("API key is required")

// Config holds LLM client configuration.
type Config struct {
	Provider string // "openai" or "anthropic"
	APIKey   string // Required: API key for the provider
	BaseURL  string // Optional: custom API endpoint
	Model    string // Optional: provider default when empty
}

// Client sends a single system+user turn and returns the model's raw text.
// No response format is enforced: callers parse and validate the text themselves.
type Client interface {
	Complete(ctx context.Context, req Request) (*Response, error)
	Model() string
}

type Request struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  *float64 // nil = model default, explicit 0 = deterministic
}

type Response struct {
	Content          string
	FinishReason     string // FinishReasonStop, FinishReasonLength, or provider-specific
	PromptTokens     int
	CompletionTokens int
}

// New creates a Client for cfg.Provider. Defaults to OpenAI if no provider is specified.
func New(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}

	provider := cfg.Provider
	if provider == "" {
		provider = ProviderOpenAI
	}

	switch provider {
	case ProviderOpenAI:
		return newOpenAIClient(cfg), nil
	case ProviderAnthropic:
		return newAnthropicClient(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}

// GenerateSchema reflects a JSON schema for T, inlined without $ref.
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

func Temp(t float64) *float64 {
	return &t
}

type temperatureClient struct {
	Client
	temperature float64
}

// WithTemperature applies temperature to every request that does not set
// its own.
func WithTemperature(client Client, temperature float64) Client {
	return &temperatureClient{Client: client, temperature: temperature}
}

func (c *temperatureClient) Complete(ctx context.Context, req Request) (*Response, error) {
	if req.Temperature == nil {
		req.Temperature = Temp(c.temperature)
	}
	return c.Client.Complete(ctx, req)
}

type timeoutClient struct {
	Client
	timeout time.Duration
}

// WithTimeout bounds every Complete call on client by timeout. A zero or
// negative timeout returns client unchanged.
func WithTimeout(client Client, timeout time.Duration) Client {
	if timeout <= 0 {
		return client
	}
	return &timeoutClient{Client: client, timeout: timeout}
}

func (c *timeoutClient) Complete(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.Client.Complete(ctx, req)
}
