package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"voyago/internal/observability"
)

// DefaultOpenAIEndpoint is the hosted chat completions endpoint.
const DefaultOpenAIEndpoint = "https://api.openai.com/v1/chat/completions"

const tipsModel = "gpt-3.5-turbo"

// OpenAIProvider implements Provider against the OpenAI chat completions API.
// Calls are rate-limited client-side and never retried: a failed generation is
// surfaced to the caller, who may resubmit.
type OpenAIProvider struct {
	base  string
	key   string
	model string
	hc    *http.Client
	rl    *rate.Limiter
}

// NewOpenAIProvider builds a provider for the given endpoint and key.
// base may be empty to use the hosted endpoint; model is used for plan
// generation (tips always use the cheaper tips model).
func NewOpenAIProvider(base, key, model string, timeout time.Duration, rps int) (*OpenAIProvider, error) {
	if key == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if base == "" {
		base = DefaultOpenAIEndpoint
	}
	if model == "" {
		model = "gpt-4"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if rps <= 0 {
		rps = 5
	}
	return &OpenAIProvider{
		base:  base,
		key:   key,
		model: model,
		hc:    &http.Client{Timeout: timeout},
		rl:    rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GeneratePlan submits the plan prompt and parses the reply into sections.
func (p *OpenAIProvider) GeneratePlan(ctx context.Context, req PlanRequest) (*PlanSections, error) {
	text, err := p.chat(ctx, "plan", p.model, planSystemPrompt, buildPlanPrompt(req), 0.7, 2000)
	if err != nil {
		return nil, err
	}
	return ParsePlanText(text)
}

// TravelTips asks for a tip list for the destination.
func (p *OpenAIProvider) TravelTips(ctx context.Context, destination string) ([]string, error) {
	text, err := p.chat(ctx, "tips", tipsModel, tipsSystemPrompt, buildTipsPrompt(destination), 0.5, 800)
	if err != nil {
		return nil, err
	}
	return parseTips(text), nil
}

// chat performs one completion call and returns the reply text.
func (p *OpenAIProvider) chat(ctx context.Context, operation, model, system, user string, temperature float64, maxTokens int) (string, error) {
	if err := p.rl.Wait(ctx); err != nil {
		return "", err
	}

	reqBody, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.base, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("openai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.key)

	start := time.Now()
	resp, err := p.hc.Do(req)
	if err != nil {
		observability.ObserveCompletion("openai", operation, 0, time.Since(start))
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	observability.ObserveCompletion("openai", operation, resp.StatusCode, time.Since(start))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("openai: read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	case resp.StatusCode >= 500:
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("openai: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("openai: unmarshal response: %w", err)
	}
	if cr.Error != nil {
		return "", fmt.Errorf("openai: api error: %s", cr.Error.Message)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("openai: API returned empty choices array (raw: %s)", body)
	}
	return cr.Choices[0].Message.Content, nil
}
