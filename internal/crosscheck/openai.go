package crosscheck

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIProvider asks an OpenAI chat model for a transcription
type OpenAIProvider struct {
	client chatClient
	model  string
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return ProviderOpenAI
}

// Transcribe returns the model's IPA transcription of text
func (p *OpenAIProvider) Transcribe(ctx context.Context, text string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a Ukrainian phonetician. You answer with IPA transcriptions only.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt(text),
			},
		},
		Temperature: 0,
		MaxTokens:   200,
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	out := cleanReference(resp.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("no response from OpenAI")
	}
	return out, nil
}
