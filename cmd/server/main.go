package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"helpdesk-agent/handler"
	"helpdesk-agent/internal/faq"
	"helpdesk-agent/internal/integrations/gemini"
	"helpdesk-agent/internal/usecase"
)

// Config is the full server configuration, read once at startup. The API key
// is validated here so a missing credential fails the process instead of the
// first request.
type Config struct {
	Port         int    `envconfig:"PORT" default:"5000"`
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-pro"`
	GeminiURL    string `envconfig:"GEMINI_BASE_URL"`
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		slog.Error("failed to process environment configuration", "err", err)
		os.Exit(1)
	}
	if cfg.GeminiAPIKey == "" {
		slog.Error("required environment variable is not set", "key", "GEMINI_API_KEY")
		os.Exit(1)
	}

	client, err := gemini.NewClient(
		gemini.StaticKey(cfg.GeminiAPIKey),
		gemini.WithModel(cfg.GeminiModel),
		gemini.WithBaseURL(cfg.GeminiURL),
	)
	if err != nil {
		slog.Error("failed to create gemini client", "err", err)
		os.Exit(1)
	}

	resolver, err := usecase.NewResolveService(faq.DefaultStore(), client)
	if err != nil {
		slog.Error("failed to create resolve service", "err", err)
		os.Exit(1)
	}

	h, err := handler.New(resolver, slog.Default())
	if err != nil {
		slog.Error("failed to create handler", "err", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("server listening", "addr", addr)
	if err := http.ListenAndServe(addr, h.Router()); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
