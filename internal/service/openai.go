package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/sebasotodlp/schoolar/internal/config"
	"github.com/sebasotodlp/schoolar/internal/model"
)

// AI failure modes. Callers treat all of them as recoverable and switch
// to the deterministic fallback texts.
var (
	ErrAINotConfigured  = errors.New("ai: api key not configured")
	ErrAIInvalidKey     = errors.New("ai: invalid api key")
	ErrAIQuotaExhausted = errors.New("ai: credit quota exhausted")
	ErrAIRateLimited    = errors.New("ai: rate limit exceeded")
	ErrAIUsageLimit     = errors.New("ai: usage limit exceeded")
	ErrAIAccessDenied   = errors.New("ai: access denied")
	ErrAIServerError    = errors.New("ai: upstream server error")
	ErrAITimeout        = errors.New("ai: request timed out")
	ErrAIEmptyResponse  = errors.New("ai: empty response")
	ErrAIConnection     = errors.New("ai: connection failed")
)

// OpenAIClient calls the chat completions API
type OpenAIClient struct {
	cfg        *config.AIConfig
	httpClient *http.Client
}

// NewOpenAIClient creates a new OpenAI client
func NewOpenAIClient(cfg *config.AIConfig) *OpenAIClient {
	return &OpenAIClient{
		cfg:        cfg,
		httpClient: &http.Client{},
	}
}

// IsEnabled reports whether an API key is configured.
func (c *OpenAIClient) IsEnabled() bool {
	return c.cfg.IsEnabled()
}

type chatRequest struct {
	Model       string              `json:"model"`
	Messages    []model.ChatMessage `json:"messages"`
	MaxTokens   int                 `json:"max_tokens"`
	Temperature float64             `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// Complete sends one chat completion request. Only the last 10 history
// turns are forwarded.
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt string, history []model.ChatMessage, userMessage string) (string, error) {
	if !c.cfg.IsEnabled() {
		return "", ErrAINotConfigured
	}

	if len(history) > 10 {
		history = history[len(history)-10:]
	}
	messages := make([]model.ChatMessage, 0, len(history)+2)
	messages = append(messages, model.ChatMessage{Role: "system", Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, model.ChatMessage{Role: "user", Content: userMessage})

	body, err := json.Marshal(chatRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMS)*time.Millisecond)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.ChatEndpoint(), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", ErrAITimeout
		}
		return "", fmt.Errorf("%w: %v", ErrAIConnection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.statusError(resp)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAIConnection, err)
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", ErrAIEmptyResponse
	}

	return CleanResponse(out.Choices[0].Message.Content), nil
}

func (c *OpenAIClient) statusError(resp *http.Response) error {
	var apiErr apiError
	_ = json.NewDecoder(resp.Body).Decode(&apiErr)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrAIInvalidKey
	case resp.StatusCode == http.StatusTooManyRequests:
		if apiErr.Error.Type == "insufficient_quota" {
			return ErrAIQuotaExhausted
		}
		if apiErr.Error.Code == "rate_limit_exceeded" {
			return ErrAIRateLimited
		}
		return ErrAIUsageLimit
	case resp.StatusCode == http.StatusForbidden:
		return ErrAIAccessDenied
	case resp.StatusCode >= 500:
		return ErrAIServerError
	}
	return fmt.Errorf("ai: unexpected status %d: %s", resp.StatusCode, apiErr.Error.Message)
}

var (
	boldRe    = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe  = regexp.MustCompile(`\*(.*?)\*`)
	headerRe  = regexp.MustCompile(`#{1,6}\s*`)
	breaksRe  = regexp.MustCompile(`\n{3,}`)
	bulletsRe = regexp.MustCompile(`(?m)^\s*[•\-\*]\s*`)
)

// CleanResponse strips markdown decoration and emoji so answers render
// as plain conversational text.
func CleanResponse(s string) string {
	s = boldRe.ReplaceAllString(s, "$1")
	s = italicRe.ReplaceAllString(s, "$1")
	s = headerRe.ReplaceAllString(s, "")
	s = stripEmoji(s)
	s = breaksRe.ReplaceAllString(s, "\n\n")
	s = bulletsRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func stripEmoji(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 0x1F300 && r <= 0x1F6FF,
			r >= 0x1F900 && r <= 0x1F9FF,
			r >= 0x1FA70 && r <= 0x1FAFF,
			r >= 0x1F1E0 && r <= 0x1F1FF,
			r >= 0x2600 && r <= 0x27BF:
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
