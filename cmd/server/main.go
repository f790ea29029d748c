package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"critic.app/backend/common/id"
	"critic.app/backend/common/llm"
	"critic.app/backend/common/logger"
	"critic.app/backend/common/otel"
	"critic.app/backend/core/config"
	"critic.app/backend/internal/http/middleware"
	httprouter "critic.app/backend/internal/http/router"
	"critic.app/backend/internal/persona"
	"critic.app/backend/internal/service"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		// slog is not configured yet: OTel failed before logger setup
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "critic starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(cfg.NodeID); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	llmClient, err := newLLMClient(cfg.LLM)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create llm client", "error", err)
		os.Exit(1)
	}
	if llmClient == nil {
		slog.WarnContext(ctx, "llm provider not configured; feedback requests will be refused",
			"provider", cfg.LLM.Provider)
	} else {
		slog.InfoContext(ctx, "llm client ready", "provider", cfg.LLM.Provider, "model", llmClient.Model())
	}

	services := service.NewServices(service.ServicesConfig{
		LLM:      llmClient,
		Feedback: cfg.Feedback,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.WriteTimeout(len(persona.All())),
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

// newLLMClient returns nil, nil when no credential is configured so the
// server can still answer health checks.
func newLLMClient(cfg config.LLMConfig) (llm.Client, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	client, err := llm.New(llm.Config{
		Provider: cfg.Provider,
		APIKey:   cfg.APIKey,
		BaseURL:  cfg.BaseURL,
		Model:    cfg.Model,
	})
	if err != nil {
		return nil, err
	}
	if cfg.Temperature != nil {
		client = llm.WithTemperature(client, *cfg.Temperature)
	}
	return llm.WithTimeout(client, cfg.Timeout), nil
}

func setupRouter(cfg config.Config, services *service.Services) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.HTTP.AllowedOrigins))
	router.Use(middleware.BodyLimit(cfg.HTTP.MaxBodyBytes))

	httprouter.SetupRoutes(router, services)

	return router
}

const banner = `
  ____ ____  ___ _____ ___ ____
 / ___|  _ \|_ _|_   _|_ _/ ___|
| |   | |_) || |  | |  | | |
| |___|  _ < | |  | |  | | |___
 \____|_| \_\___| |_| |___\____|
`
