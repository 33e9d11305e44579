// Package usecase implements the hybrid answer-resolution pipeline: canned
// FAQ answers first, Gemini fallback second.
package usecase

import (
	"context"
	"errors"

	"helpdesk-agent/internal/domain"
	"helpdesk-agent/internal/faq"
	"helpdesk-agent/internal/integrations/gemini"
)

// ReplyGenerator is the remote answer service consumed by the resolver.
// *gemini.Client satisfies it.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, contents []gemini.Content) (string, error)
}

type httpStatusCoder interface {
	HTTPStatusCode() int
}

// ResolveService answers one conversation turn. FAQ hits are pure local
// computation and never touch the network; everything else is delegated to
// the remote model with the persona block and full history.
type ResolveService struct {
	matcher *faq.Matcher
	llm     ReplyGenerator
}

// NewResolveService wires a matcher over the given store to a reply
// generator. The store must not change after construction; the service holds
// no other state, so one instance serves concurrent resolutions.
func NewResolveService(store *faq.Store, llm ReplyGenerator) (*ResolveService, error) {
	if store == nil {
		return nil, errors.New("usecase: faq store must not be nil")
	}
	if llm == nil {
		return nil, errors.New("usecase: reply generator must not be nil")
	}
	return &ResolveService{
		matcher: faq.NewMatcher(store, faq.DefaultThreshold),
		llm:     llm,
	}, nil
}

// Resolve returns exactly one reply for the latest turn in messages. The
// latest message's content is matched against the FAQ table; on a hit the
// canned answer is returned with no network call. Otherwise the packaged
// conversation is sent upstream and the model's reply is returned.
//
// An empty history is allowed: the remote call then carries only the persona
// block, mirroring an empty latest message falling past the matcher.
func (s *ResolveService) Resolve(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	latest := ""
	if len(messages) > 0 {
		latest = messages[len(messages)-1].Content
	}

	if res := s.matcher.Match(latest); res.Matched {
		return res.Answer, nil
	}

	reply, err := s.llm.GenerateReply(ctx, buildContents(messages))
	if err != nil {
		return "", classifyRemoteError(err)
	}
	return reply, nil
}

// classifyRemoteError maps client failures onto the usecase error codes the
// adapters translate for callers.
func classifyRemoteError(err error) *Error {
	switch {
	case errors.Is(err, gemini.ErrMissingCredential):
		return newError(ErrorConfig, "missing_api_key", err)
	case errors.Is(err, gemini.ErrEmptyReply):
		return newError(ErrorUpstream, "empty_reply", err)
	}
	var statusErr httpStatusCoder
	if errors.As(err, &statusErr) {
		return newError(ErrorUpstream, "gemini_status_error", err)
	}
	return newError(ErrorTransport, "gemini_request_failed", err)
}
