// Package llm generates comments through OpenAI-compatible chat
// completion APIs. Mistral exposes the same wire protocol, so one
// client covers both vendors via the base URL.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const mistralBaseURL = "https://api.mistral.ai/v1"

var (
	// ErrUnsupportedVendor indicates an unknown vendor tag.
	ErrUnsupportedVendor = errors.New("unsupported LLM vendor")

	// ErrEmptyCompletion indicates the model returned no usable text.
	ErrEmptyCompletion = errors.New("empty completion")
)

// TransientError marks a generation failure worth retrying: rate
// limits, upstream 5xx, network trouble.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient LLM error: %v", e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err is retryable.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// ProviderSettings is the decrypted, ready-to-use view of one stored
// LLM provider configuration.
type ProviderSettings struct {
	VendorTag   string // "openai" or "mistral"
	ModelName   string
	APIKey      string
	Temperature float64
	MaxTokens   int
	JSONMode    bool
}

// Request carries the prompts for one comment generation.
type Request struct {
	SystemPrompt string
	UserPrompt   string
}

// Completion is the result of one generation call.
type Completion struct {
	Text        string
	ModelName   string
	TotalTokens int
	Duration    time.Duration
}

// Generator produces comment text from prompts.
type Generator interface {
	Generate(ctx context.Context, settings ProviderSettings, req Request) (*Completion, error)
}

// client implements Generator on the OpenAI chat completions API.
type client struct {
	logger *slog.Logger
}

// NewGenerator creates the production Generator.
func NewGenerator() Generator {
	return &client{logger: slog.Default().With("component", "llm")}
}

func (c *client) Generate(ctx context.Context, settings ProviderSettings, req Request) (*Completion, error) {
	api, err := newAPIClient(settings)
	if err != nil {
		return nil, err
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       settings.ModelName,
		Temperature: float32(settings.Temperature),
		MaxTokens:   settings.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
	}
	if settings.JSONMode {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	start := time.Now()
	resp, err := api.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, classify(err)
	}
	duration := time.Since(start)

	if len(resp.Choices) == 0 {
		return nil, ErrEmptyCompletion
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if settings.JSONMode {
		text, err = unwrapJSONComment(text)
		if err != nil {
			return nil, err
		}
	}
	if text == "" {
		return nil, ErrEmptyCompletion
	}

	c.logger.Debug("Generated completion",
		"vendor", settings.VendorTag,
		"model", resp.Model,
		"total_tokens", resp.Usage.TotalTokens,
		"duration_ms", duration.Milliseconds())

	return &Completion{
		Text:        text,
		ModelName:   resp.Model,
		TotalTokens: resp.Usage.TotalTokens,
		Duration:    duration,
	}, nil
}

func newAPIClient(settings ProviderSettings) (*openai.Client, error) {
	cfg := openai.DefaultConfig(settings.APIKey)
	switch settings.VendorTag {
	case "openai":
		// Default base URL.
	case "mistral":
		cfg.BaseURL = mistralBaseURL
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVendor, settings.VendorTag)
	}
	return openai.NewClientWithConfig(cfg), nil
}

// unwrapJSONComment extracts the comment text from a JSON-mode
// response shaped like {"comment": "..."}.
func unwrapJSONComment(text string) (string, error) {
	var payload struct {
		Comment string `json:"comment"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return "", fmt.Errorf("JSON-mode response is not valid JSON: %w", err)
	}
	if payload.Comment == "" {
		return "", fmt.Errorf("%w: JSON-mode response has no comment field", ErrEmptyCompletion)
	}
	return strings.TrimSpace(payload.Comment), nil
}

// classify sorts API failures into retryable and terminal.
func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests,
			apiErr.HTTPStatusCode >= 500:
			return &TransientError{Err: err}
		default:
			// Bad key, bad request, quota hard-stop: retrying won't help.
			return err
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	// Anything non-API is network-level.
	return &TransientError{Err: err}
}
