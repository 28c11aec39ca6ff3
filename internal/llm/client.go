// Package llm implements the structured completion client: it prompts
// an OpenAI-compatible chat completions backend and recovers a parsed
// JSON value of a declared kind from the unstructured text reply.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Kind is the expected top-level JSON kind of a completion.
type Kind int

const (
	KindObject Kind = iota
	KindArray
)

func (k Kind) String() string {
	if k == KindArray {
		return "array"
	}
	return "object"
}

const systemPrompt = "You are a strict JSON generator. " +
	"Return ONLY valid JSON. " +
	"No markdown, no explanation, no text outside JSON."

// Biased toward determinism; the backend stays non-deterministic anyway.
const temperature = 0.2

// Completer is the structured-completion surface pipeline stages
// depend on.
type Completer interface {
	Complete(ctx context.Context, prompt string, kind Kind, maxTokens int) (any, error)
}

// Doer is the subset of http.Client the client uses.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls a chat completions backend and extracts structured JSON
// from its replies. One fresh round trip per call: no retries, no
// backoff, no caching.
type Client struct {
	baseURL   string
	model     string
	apiKey    string
	http      Doer
	extractor Extractor
}

// New creates a client for the given backend.
func New(baseURL, model, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		model:     model,
		apiKey:    apiKey,
		http:      &http.Client{Timeout: timeout},
		extractor: DelimiterExtractor{},
	}
}

// NewWithDoer creates a client with a custom HTTP doer (for testing).
func NewWithDoer(d Doer, baseURL, model, apiKey string) *Client {
	return &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		model:     model,
		apiKey:    apiKey,
		http:      d,
		extractor: DelimiterExtractor{},
	}
}

// SetExtractor swaps the extraction strategy. The external contract of
// Complete is unchanged.
func (c *Client) SetExtractor(x Extractor) {
	c.extractor = x
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// Content is a pointer so a message missing the field entirely is
// distinguishable from one carrying an empty string.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the prompt and returns the parsed JSON value of the
// expected kind. The prompt itself must restate the JSON shape and
// forbid commentary; the system message only reinforces that.
func (c *Client) Complete(ctx context.Context, prompt string, kind Kind, maxTokens int) (any, error) {
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("llm: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("llm: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &BackendError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var envelope chatResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil || len(envelope.Choices) == 0 {
		return nil, &MalformedResponseError{Body: string(respBody)}
	}
	content := envelope.Choices[0].Message.Content
	if content == nil {
		return nil, &MalformedResponseError{Body: string(respBody)}
	}

	text := strings.TrimSpace(*content)
	span, err := c.extractor.Extract(text, kind)
	if err != nil {
		return nil, err
	}

	var value any
	if err := json.Unmarshal([]byte(span), &value); err != nil {
		return nil, &ParseError{Err: err, Extracted: span}
	}
	return value, nil
}
