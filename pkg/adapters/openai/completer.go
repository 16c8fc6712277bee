// Package openai implements the ports.Completer over an
// OpenAI-compatible chat endpoint via the eino model component.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

const systemPrompt = "You are a precise form-filling assistant. " +
	"Answer with exactly one of the allowed options, or an empty JSON object when none fit. " +
	"Never invent options."

// Config holds the connection settings. APIKey is a hard precondition:
// New fails immediately when it is missing, so a misconfigured process
// dies at startup rather than on the first turn.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string

	// Timeout bounds one model round trip. Zero means 30s.
	Timeout time.Duration
	// MaxRetries bounds retry attempts on transient failure. Zero means
	// no retries.
	MaxRetries int
}

// Completer calls a chat model and returns the raw completion text.
type Completer struct {
	chatModel  model.BaseChatModel
	timeout    time.Duration
	maxRetries int
}

// New builds a completer from config.
func New(ctx context.Context, cfg Config) (*Completer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai: api key is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("openai: model name is required")
	}

	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("openai: init chat model: %w", err)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Completer{
		chatModel:  chatModel,
		timeout:    timeout,
		maxRetries: cfg.MaxRetries,
	}, nil
}

// NewFromChatModel wraps an existing chat model, mainly for tests.
func NewFromChatModel(chatModel model.BaseChatModel, timeout time.Duration, maxRetries int) *Completer {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Completer{chatModel: chatModel, timeout: timeout, maxRetries: maxRetries}
}

// Complete sends the prompt and returns the completion text. Each
// attempt runs under its own timeout; transient failures are retried
// with linear backoff up to MaxRetries.
func (c *Completer) Complete(ctx context.Context, prompt string, allowedOptions []string) (string, error) {
	messages := []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(userMessage(prompt, allowedOptions)),
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		response, err := c.chatModel.Generate(attemptCtx, messages)
		cancel()
		if err == nil {
			return response.Content, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return "", fmt.Errorf("openai: generate failed after %d attempt(s): %w", c.maxRetries+1, lastErr)
}

func userMessage(prompt string, allowedOptions []string) string {
	if len(allowedOptions) == 0 {
		return prompt
	}
	return fmt.Sprintf("%s\n\nAllowed options: %s", prompt, strings.Join(allowedOptions, ", "))
}
