package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"

	"helpdesk-agent/handler"
	"helpdesk-agent/internal/faq"
	"helpdesk-agent/internal/integrations/gemini"
	"helpdesk-agent/internal/integrations/paramstore"
	"helpdesk-agent/internal/usecase"
)

func main() {
	ctx := context.Background()

	// ---- Configuration (read only here) ----
	keyParam := mustEnv("GEMINI_API_KEY_PARAM")
	model := os.Getenv("GEMINI_MODEL")

	// ---- AWS SDK config ----
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		slog.Error("failed to load AWS config", "err", err)
		os.Exit(1)
	}

	// ---- Clients ----
	keySource, err := paramstore.NewKeySource(awsssm.NewFromConfig(cfg), keyParam)
	if err != nil {
		slog.Error("failed to create key source", "err", err)
		os.Exit(1)
	}

	client, err := gemini.NewClient(keySource, gemini.WithModel(model))
	if err != nil {
		slog.Error("failed to create gemini client", "err", err)
		os.Exit(1)
	}

	// ---- Handler ----
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

	lambda.Start(h.HandleAPIGateway)
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		slog.Error("required environment variable is not set", "key", key)
		os.Exit(1)
	}
	return v
}
