package crosscheck

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiProvider asks a Gemini model for a transcription
type GeminiProvider struct {
	models contentGenerator
	model  string
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		models: client.Models,
		model:  model,
	}, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return ProviderGemini
}

// Transcribe returns the model's IPA transcription of text
func (p *GeminiProvider) Transcribe(ctx context.Context, text string) (string, error) {
	temperature := float32(0)
	result, err := p.models.GenerateContent(ctx, p.model, genai.Text(prompt(text)), &genai.GenerateContentConfig{
		Temperature: &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	out := cleanReference(result.Text())
	if out == "" {
		return "", fmt.Errorf("no response from Gemini")
	}
	return out, nil
}
