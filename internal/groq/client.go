package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Gateway is the completion boundary handlers depend on. The production
// implementation is Client; tests stub it.
type Gateway interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Gateway failure taxonomy. Callers surface these as retry-able user errors
// and never retry automatically.
var (
	ErrTimeout           = errors.New("groq: request timed out")
	ErrRateLimited       = errors.New("groq: rate limited")
	ErrUpstreamMalformed = errors.New("groq: malformed upstream response")
)

type Client struct {
	apiKey  string
	model   string
	base    string
	timeout time.Duration
	http    *http.Client
}

func NewClient(apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		base:    "https://api.groq.com/openai/v1",
		timeout: timeout,
		http:    &http.Client{},
	}
}

type ChatRequest struct {
	Model       string              `json:"model"`
	Messages    []map[string]string `json:"messages"`
	MaxTokens   int                 `json:"max_tokens,omitempty"`
	Temperature float32             `json:"temperature,omitempty"`
}

type ChatResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

func (c *Client) Chat(ctx context.Context, req ChatRequest) (string, error) {
	if req.Model == "" {
		req.Model = c.model
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := c.base + "/chat/completions"
	b, _ := json.Marshal(req)
	r, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	r.Header.Set("Authorization", "Bearer "+c.apiKey)
	r.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(r)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		return "", err
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusTooManyRequests {
		return "", ErrRateLimited
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("groq api error (status %d): %w", resp.StatusCode, ErrUpstreamMalformed)
	}

	var ch ChatResponse
	if err := json.Unmarshal(bodyBytes, &ch); err != nil {
		return "", fmt.Errorf("decode error: %v: %w", err, ErrUpstreamMalformed)
	}

	if ch.Error != nil {
		return "", fmt.Errorf("api error: %s: %w", ch.Error.Message, ErrUpstreamMalformed)
	}

	if len(ch.Choices) == 0 {
		return "", fmt.Errorf("no choices returned: %w", ErrUpstreamMalformed)
	}
	return ch.Choices[0].Message.Content, nil
}

// Complete sends a single-turn prompt and returns the raw completion text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	return c.Chat(ctx, ChatRequest{
		Messages:    []map[string]string{{"role": "user", "content": prompt}},
		MaxTokens:   2000,
		Temperature: 0.7,
	})
}
