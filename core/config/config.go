package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	OTel     OTelConfig
	LLM      LLMConfig
	Feedback FeedbackConfig
	HTTP     HTTPConfig
	Env      string
	Port     string
	NodeID   int64
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
	SampleRatio    float64
}

type LLMConfig struct {
	Provider    string        // "openai" or "anthropic"
	APIKey      string
	BaseURL     string        // Optional: for custom endpoints
	Model       string        // Optional: provider default when empty
	Timeout     time.Duration
	Temperature *float64      // nil when LLM_TEMPERATURE is unset: model default
}

// FeedbackConfig holds the response-length budgets and fan-out width used
// when asking personas for comments.
type FeedbackConfig struct {
	CompleteMaxTokens   int
	ProgressMaxTokens   int
	InspireMaxTokens    int
	MaxParallelPersonas int
}

type HTTPConfig struct {
	AllowedOrigins []string
	MaxBodyBytes   int64
}

const writeTimeoutHeadroom = 15 * time.Second

type ServiceType string

const (
	ServiceTypeServer ServiceType = "server"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Load loads configuration from environment variables.
// In development, it loads .env.server first and falls back to .env.
//
// A missing provider credential is not a load error: the server still comes
// up for health checks, and LLM.Enabled() reports false so feedback requests
// are refused with a configuration failure.
func Load(serviceType ServiceType) (Config, error) {
	if getEnv("CRITIC_ENV", "development") == "development" {
		if err := godotenv.Load(".env." + string(serviceType)); err != nil {
			_ = godotenv.Load(".env")
		}
	}

	provider := strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenAI))

	cfg := Config{
		Env:    getEnv("CRITIC_ENV", "development"),
		Port:   getEnv("PORT", "3001"),
		NodeID: int64(getEnvInt("NODE_ID", 1)),
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "critic"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
			SampleRatio:    getEnvFloat("OTEL_TRACES_SAMPLER_RATIO", 1),
		},
		LLM: LLMConfig{
			Provider:    provider,
			APIKey:      providerAPIKey(provider),
			BaseURL:     getEnv("LLM_BASE_URL", ""),
			Model:       getEnv("LLM_MODEL", ""),
			Timeout:     time.Duration(getEnvInt("LLM_TIMEOUT_SECONDS", 60)) * time.Second,
			Temperature: getEnvFloatPtr("LLM_TEMPERATURE"),
		},
		Feedback: FeedbackConfig{
			CompleteMaxTokens:   getEnvInt("FEEDBACK_COMPLETE_MAX_TOKENS", 400),
			ProgressMaxTokens:   getEnvInt("FEEDBACK_PROGRESS_MAX_TOKENS", 300),
			InspireMaxTokens:    getEnvInt("INSPIRE_MAX_TOKENS", 100),
			MaxParallelPersonas: getEnvInt("MAX_PARALLEL_PERSONAS", 4),
		},
		HTTP: HTTPConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
			MaxBodyBytes:   int64(getEnvInt("MAX_BODY_BYTES", 10<<20)),
		},
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

// WriteTimeout bounds one HTTP response for a feedback pass over personas
// persona calls. Calls run in waves of MaxParallelPersonas, each wave bounded
// by the LLM timeout, plus headroom for parsing and encoding. Zero means no
// LLM timeout is configured, so the response is not bounded either.
func (c Config) WriteTimeout(personas int) time.Duration {
	if c.LLM.Timeout <= 0 {
		return 0
	}
	waves := 1
	if limit := c.Feedback.MaxParallelPersonas; limit > 0 && personas > limit {
		waves = (personas + limit - 1) / limit
	}
	return time.Duration(waves)*c.LLM.Timeout + writeTimeoutHeadroom
}

func (c LLMConfig) Enabled() bool {
	return c.APIKey != "" && (c.Provider == ProviderOpenAI || c.Provider == ProviderAnthropic)
}

// providerAPIKey prefers LLM_API_KEY and otherwise reads the provider's
// conventional variable.
func providerAPIKey(provider string) string {
	if key := getEnv("LLM_API_KEY", ""); key != "" {
		return key
	}
	switch provider {
	case ProviderAnthropic:
		return getEnv("ANTHROPIC_API_KEY", "")
	default:
		return getEnv("OPENAI_API_KEY", "")
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvFloatPtr(key string) *float64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return nil
	}
	return &f
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
