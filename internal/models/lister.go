package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

type modelClient interface {
	ListModels(ctx context.Context) (openai.ModelsList, error)
}

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client modelClient
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// Categorized holds model ids split by their use for cross-checking
type Categorized struct {
	// Chat models can produce reference transcriptions
	Chat []string
	// Other counts models that cannot, such as TTS and embeddings
	Other int
}

// Categorize sorts model ids into chat and other models
func Categorize(ids []string) Categorized {
	var c Categorized
	for _, id := range ids {
		if isChatModel(id) {
			c.Chat = append(c.Chat, id)
		} else {
			c.Other++
		}
	}
	sort.Strings(c.Chat)
	return c
}

func isChatModel(id string) bool {
	for _, skip := range []string{"tts", "audio", "dall-e", "whisper", "embedding", "moderation", "image", "realtime", "transcribe"} {
		if strings.Contains(id, skip) {
			return false
		}
	}
	return strings.HasPrefix(id, "gpt-") || strings.HasPrefix(id, "chatgpt") ||
		(len(id) > 1 && id[0] == 'o' && id[1] >= '0' && id[1] <= '9')
}

// ListAvailableModels writes the chat models available for cross-checking to w
func (l *Lister) ListAvailableModels(ctx context.Context, w io.Writer) error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .vymova.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, len(models.Models))
	for _, model := range models.Models {
		ids = append(ids, model.ID)
	}
	c := Categorize(ids)

	fmt.Fprintln(w, "Available OpenAI Models:")
	fmt.Fprintln(w, "\nChat Models (for --crosscheck openai --crosscheck-model):")
	if len(c.Chat) == 0 {
		fmt.Fprintln(w, "  No chat models found")
	}
	for _, id := range c.Chat {
		marker := ""
		if id == "gpt-4o-mini" {
			marker = " (default)"
		}
		fmt.Fprintf(w, "  %s%s\n", id, marker)
	}
	if c.Other > 0 {
		fmt.Fprintf(w, "  ... and %d models not suited for transcription\n", c.Other)
	}

	return nil
}
