package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"helpdesk-agent/internal/domain"
	"helpdesk-agent/internal/faq"
	"helpdesk-agent/internal/integrations/gemini"
)

type mockLLM struct {
	reply     string
	err       error
	callCount int
	captured  []gemini.Content
}

func (m *mockLLM) GenerateReply(_ context.Context, contents []gemini.Content) (string, error) {
	m.callCount++
	m.captured = contents
	return m.reply, m.err
}

func newTestService(t *testing.T, llm ReplyGenerator) *ResolveService {
	t.Helper()
	svc, err := NewResolveService(faq.DefaultStore(), llm)
	require.NoError(t, err)
	return svc
}

func expectResolveError(t *testing.T, err error, code ErrorCode, reason string) {
	t.Helper()
	var usecaseErr *Error
	require.ErrorAs(t, err, &usecaseErr)
	require.Equal(t, code, usecaseErr.Code)
	require.Equal(t, reason, usecaseErr.Reason)
}

func userTurn(text string) domain.ChatMessage {
	return domain.ChatMessage{Role: domain.RoleUser, Content: text}
}

func TestNewResolveService_ValidatesDependencies(t *testing.T) {
	_, err := NewResolveService(nil, &mockLLM{})
	require.Error(t, err)

	_, err = NewResolveService(faq.DefaultStore(), nil)
	require.Error(t, err)
}

func TestResolve_FAQHit_SkipsRemoteCall(t *testing.T) {
	llm := &mockLLM{}
	svc := newTestService(t, llm)

	reply, err := svc.Resolve(context.Background(), []domain.ChatMessage{
		userTurn("How do I add a new category?"),
	})
	require.NoError(t, err)
	require.Contains(t, reply, `Go to the "Categories" page`)
	require.Zero(t, llm.callCount, "FAQ hit must not reach the remote service")
}

func TestResolve_FAQHit_OnlyLatestMessageIsMatched(t *testing.T) {
	llm := &mockLLM{reply: "remote answer"}
	svc := newTestService(t, llm)

	// An earlier FAQ-shaped turn must not short-circuit the current question.
	reply, err := svc.Resolve(context.Background(), []domain.ChatMessage{
		userTurn("how do i logout"),
		{Role: domain.RoleAssistant, Content: "Use the 'Logout' link."},
		userTurn("actually, tell me a motivational quote instead"),
	})
	require.NoError(t, err)
	require.Equal(t, "remote answer", reply)
	require.Equal(t, 1, llm.callCount)
}

func TestResolve_FuzzyFAQHit(t *testing.T) {
	llm := &mockLLM{}
	svc := newTestService(t, llm)

	reply, err := svc.Resolve(context.Background(), []domain.ChatMessage{
		userTurn("how can i loogout"),
	})
	require.NoError(t, err)
	require.Contains(t, reply, "'Logout' link")
	require.Zero(t, llm.callCount)
}

func TestResolve_NoMatch_CallsRemote(t *testing.T) {
	llm := &mockLLM{reply: "You can do it!"}
	svc := newTestService(t, llm)

	reply, err := svc.Resolve(context.Background(), []domain.ChatMessage{
		userTurn("give me some motivation for today"),
	})
	require.NoError(t, err)
	require.Equal(t, "You can do it!", reply)
	require.Equal(t, 1, llm.callCount)
}

func TestResolve_EmptyHistory_CallsRemoteWithPersonaOnly(t *testing.T) {
	llm := &mockLLM{reply: "Hello!"}
	svc := newTestService(t, llm)

	reply, err := svc.Resolve(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, "Hello!", reply)
	require.Len(t, llm.captured, 1, "persona turn must be present even with no history")
}

func TestResolve_EmptyLatestMessage_DoesNotMatchFirstFAQ(t *testing.T) {
	llm := &mockLLM{reply: "Anything I can help with?"}
	svc := newTestService(t, llm)

	reply, err := svc.Resolve(context.Background(), []domain.ChatMessage{userTurn("")})
	require.NoError(t, err)
	require.Equal(t, "Anything I can help with?", reply)
	require.Equal(t, 1, llm.callCount)
}

func TestResolve_RemoteErrorClassification(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		code   ErrorCode
		reason string
	}{
		{"missing credential", gemini.ErrMissingCredential, ErrorConfig, "missing_api_key"},
		{"empty reply", gemini.ErrEmptyReply, ErrorUpstream, "empty_reply"},
		{"http status", &gemini.HTTPStatusError{StatusCode: http.StatusInternalServerError}, ErrorUpstream, "gemini_status_error"},
		{"transport", errors.New("dial tcp: connection refused"), ErrorTransport, "gemini_request_failed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(t, &mockLLM{err: tc.err})
			_, err := svc.Resolve(context.Background(), []domain.ChatMessage{userTurn("something unmatched")})
			expectResolveError(t, err, tc.code, tc.reason)
		})
	}
}

func TestResolve_WrappedClientErrorsStillClassify(t *testing.T) {
	// The client wraps failures before returning them; classification relies
	// on errors.Is/As through the chain.
	svc := newTestService(t, &mockLLM{err: fmt.Errorf("gemini: request failed: %w", gemini.ErrMissingCredential)})
	_, err := svc.Resolve(context.Background(), []domain.ChatMessage{userTurn("something unmatched")})
	expectResolveError(t, err, ErrorConfig, "missing_api_key")

	svc = newTestService(t, &mockLLM{err: fmt.Errorf("gemini: request failed: %w", &gemini.HTTPStatusError{StatusCode: http.StatusBadGateway})})
	_, err = svc.Resolve(context.Background(), []domain.ChatMessage{userTurn("something unmatched")})
	expectResolveError(t, err, ErrorUpstream, "gemini_status_error")
}

func TestBuildContents_PersonaFirstAndRolesRelabeled(t *testing.T) {
	history := []domain.ChatMessage{
		userTurn("hi"),
		{Role: domain.RoleAssistant, Content: "Hello! How can I help?"},
		userTurn("how do things work around here"),
	}

	contents := buildContents(history)
	require.Len(t, contents, 4)

	// Persona block always leads, attributed to the calling role.
	require.Equal(t, domain.RoleUser, contents[0].Role)
	require.Contains(t, contents[0].Parts[0].Text, "justaskeet!")
	require.Contains(t, contents[0].Parts[0].Text, "cannot perform these actions directly")

	// History follows in order, text untouched, assistant relabeled to model.
	require.Equal(t, domain.RoleUser, contents[1].Role)
	require.Equal(t, "hi", contents[1].Parts[0].Text)
	require.Equal(t, remoteModelRole, contents[2].Role)
	require.Equal(t, "Hello! How can I help?", contents[2].Parts[0].Text)
	require.Equal(t, domain.RoleUser, contents[3].Role)
	require.Equal(t, "how do things work around here", contents[3].Parts[0].Text)
}

func TestBuildContents_EmptyHistory(t *testing.T) {
	contents := buildContents(nil)
	require.Len(t, contents, 1)
	require.Equal(t, domain.RoleUser, contents[0].Role)
	require.True(t, strings.Contains(contents[0].Parts[0].Text, "justdoeet!"))
}

func TestPersonaPrompt_CoversSupportedTopics(t *testing.T) {
	p := personaPrompt()
	for _, topic := range []string{
		"What is justdoeet!",
		"How to add a new category",
		"How to filter To-Dos",
		"How to add a to-do",
		"How to Search for To-Do",
		"How to delete a to-do",
		"How to edit a to-do",
		"How to logout",
	} {
		require.Contains(t, p, topic)
	}
}
