// Package handler exposes the resolution service over HTTP and AWS Lambda.
// Both adapters only marshal input and output; all resolution logic lives in
// the usecase package.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"helpdesk-agent/internal/domain"
	"helpdesk-agent/internal/usecase"
)

const (
	msgInvalidBody   = "Invalid request body"
	msgInternalError = "Something went wrong"
)

// Resolver answers one conversation. *usecase.ResolveService satisfies it.
type Resolver interface {
	Resolve(ctx context.Context, messages []domain.ChatMessage) (string, error)
}

type chatRequest struct {
	Messages []domain.ChatMessage `json:"messages"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler adapts a Resolver to HTTP.
type Handler struct {
	resolver Resolver
	logger   *slog.Logger
}

// New creates a Handler. A nil logger falls back to slog.Default.
func New(resolver Resolver, logger *slog.Logger) (*Handler, error) {
	if resolver == nil {
		return nil, errors.New("handler: resolver must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{resolver: resolver, logger: logger}, nil
}

// Router returns the HTTP surface: POST /api/chat plus a health endpoint.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(allowCORS)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Post("/api/chat", h.Chat)
	return r
}

// Chat handles POST /api/chat. A body without a messages array is a 400; any
// resolution failure is logged with a correlation ID and reported as a
// generic 500 so upstream detail never reaches the end user.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidBody})
		return
	}
	if req.Messages == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidBody})
		return
	}

	reply, err := h.resolver.Resolve(r.Context(), req.Messages)
	if err != nil {
		resolutionID := uuid.NewString()
		h.logger.Error("resolution failed",
			"resolution_id", resolutionID,
			"code", errorCode(err),
			"err", err,
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgInternalError})
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}

func errorCode(err error) string {
	var usecaseErr *usecase.Error
	if errors.As(err, &usecaseErr) {
		return string(usecaseErr.Code)
	}
	return "UNKNOWN"
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// allowCORS mirrors the permissive policy of the original deployment, where
// the UI is served from a different origin.
func allowCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
