// Package gemini is a focused client for the generateContent endpoint of the
// Google Generative Language API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.5-pro"
)

// ErrMissingCredential is returned when the credential source yields no API
// key. It always surfaces before any network I/O.
var ErrMissingCredential = errors.New("gemini: missing API key")

// ErrEmptyReply is returned when a successful response carries no extractable
// reply text at candidates[0].content.parts[0].text.
var ErrEmptyReply = errors.New("gemini: empty reply in response")

// Content is one turn of a generateContent request: a role plus text parts.
// The API accepts the roles "user" and "model".
type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

// generateRequest is the minimal request shape for generateContent.
type generateRequest struct {
	Contents []Content `json:"contents"`
}

// generateResponse is the minimal response shape returned by generateContent.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []Part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// CredentialSource supplies the API key. Implementations may read it from the
// environment, a secrets manager, or a parameter store.
type CredentialSource interface {
	APIKey(ctx context.Context) (string, error)
}

// StaticKey is a CredentialSource holding a fixed key, e.g. one read from an
// environment variable at startup.
type StaticKey string

func (k StaticKey) APIKey(context.Context) (string, error) {
	return string(k), nil
}

// HTTPStatusError captures non-2xx upstream responses with status-aware context.
type HTTPStatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("gemini: unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

func (e *HTTPStatusError) HTTPStatusCode() int {
	return e.StatusCode
}

// Client performs generateContent calls for a single model.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
	creds      CredentialSource

	keyOnce sync.Once
	apiKey  string
	keyErr  error
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSpace(baseURL)
	}
}

func WithModel(model string) Option {
	return func(c *Client) {
		c.model = strings.TrimSpace(model)
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a Client backed by the given credential source. The key
// is resolved on the first call to GenerateReply and reused for the lifetime
// of the process.
func NewClient(creds CredentialSource, opts ...Option) (*Client, error) {
	if creds == nil {
		return nil, errors.New("gemini: credential source must not be nil")
	}
	c := &Client{
		baseURL:    defaultBaseURL,
		model:      defaultModel,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		creds:      creds,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.model == "" {
		c.model = defaultModel
	}
	return c, nil
}

// resolveAPIKey fetches the key from the credential source on the first call
// and returns the cached result on every subsequent call.
func (c *Client) resolveAPIKey(ctx context.Context) (string, error) {
	c.keyOnce.Do(func() {
		key, err := c.creds.APIKey(ctx)
		if err != nil {
			c.keyErr = fmt.Errorf("gemini: fetch API key: %w", err)
			return
		}
		if strings.TrimSpace(key) == "" {
			c.keyErr = ErrMissingCredential
			return
		}
		c.apiKey = key
	})
	return c.apiKey, c.keyErr
}

func (c *Client) resolvedHTTPClient() *http.Client {
	if c.httpClient != nil {
		return c.httpClient
	}
	return &http.Client{Timeout: 30 * time.Second}
}

// generateURL builds the model endpoint. The v1beta API authenticates with
// the key as a query parameter, so errors must carry the key-free form only.
func generateURL(baseURL, model string) string {
	base := strings.TrimRight(baseURL, "/")
	if base == "" {
		base = defaultBaseURL
	}
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent", base, model)
}

// GenerateReply performs one synchronous generateContent call and returns the
// first candidate's first text part. There is no retry and no streaming.
func (c *Client) GenerateReply(ctx context.Context, contents []Content) (string, error) {
	apiKey, err := c.resolveAPIKey(ctx)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(generateRequest{Contents: contents})
	if err != nil {
		return "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	reqURL := generateURL(c.baseURL, c.model)

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, reqURL+"?key="+url.QueryEscape(apiKey), bytes.NewReader(body))
	if reqErr != nil {
		return "", fmt.Errorf("gemini: create request: %w", reqErr)
	}
	req.Header.Set("Content-Type", "application/json")

	raw, err := c.doJSONRequest(req, reqURL)
	if err != nil {
		return "", fmt.Errorf("gemini: request failed: %w", err)
	}

	var payload generateResponse
	if decErr := json.Unmarshal(raw, &payload); decErr != nil {
		return "", fmt.Errorf("gemini: decode response: %w", decErr)
	}
	if len(payload.Candidates) == 0 || len(payload.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyReply
	}
	reply := payload.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(reply) == "" {
		return "", ErrEmptyReply
	}
	return reply, nil
}

func (c *Client) doJSONRequest(req *http.Request, reqURL string) ([]byte, error) {
	res, doErr := c.resolvedHTTPClient().Do(req)
	if doErr != nil {
		return nil, doErr
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return nil, &HTTPStatusError{
			StatusCode: res.StatusCode,
			URL:        reqURL,
			Body:       string(buf),
		}
	}

	buf, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return buf, nil
}
