package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.0-flash"

// GeminiProvider implements Provider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	plan   *genai.GenerativeModel
	tips   *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Plan generation forces JSON responses for structured parsing.
	plan := client.GenerativeModel(geminiModel)
	plan.ResponseMIMEType = "application/json"
	plan.SetTemperature(0.7)

	// Tips come back as a plain list, so no MIME constraint here.
	tips := client.GenerativeModel(geminiModel)
	tips.SetTemperature(0.5)

	return &GeminiProvider{client: client, plan: plan, tips: tips}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// GeneratePlan submits the plan prompt and parses the reply into sections.
func (p *GeminiProvider) GeneratePlan(ctx context.Context, req PlanRequest) (*PlanSections, error) {
	fullPrompt := fmt.Sprintf("%s\n\n%s", planSystemPrompt, buildPlanPrompt(req))

	text, err := p.generate(ctx, p.plan, fullPrompt)
	if err != nil {
		return nil, err
	}
	return ParsePlanText(text)
}

// TravelTips asks for a tip list for the destination.
func (p *GeminiProvider) TravelTips(ctx context.Context, destination string) ([]string, error) {
	fullPrompt := fmt.Sprintf("%s\n\n%s", tipsSystemPrompt, buildTipsPrompt(destination))

	text, err := p.generate(ctx, p.tips, fullPrompt)
	if err != nil {
		return nil, err
	}
	return parseTips(text), nil
}

func (p *GeminiProvider) generate(ctx context.Context, model *genai.GenerativeModel, prompt string) (string, error) {
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: gemini generation error: %v", ErrUnavailable, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: no response candidates from Gemini", ErrUnavailable)
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}
	if responseText.Len() == 0 {
		return "", fmt.Errorf("%w: gemini returned empty text parts", ErrUnavailable)
	}
	return responseText.String(), nil
}
