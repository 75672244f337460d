package models

import (
	"bytes"
	"context"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
)

type fakeClient struct {
	ids []string
	err error
}

func (f fakeClient) ListModels(ctx context.Context) (openai.ModelsList, error) {
	var list openai.ModelsList
	for _, id := range f.ids {
		list.Models = append(list.Models, openai.Model{ID: id})
	}
	return list, f.err
}

func TestNewLister(t *testing.T) {
	lister := NewLister("test-api-key")

	if lister == nil {
		t.Fatal("NewLister returned nil")
	}

	if lister.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", lister.apiKey)
	}

	if lister.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestListAvailableModels_NoAPIKey(t *testing.T) {
	lister := NewLister("")

	err := lister.ListAvailableModels(context.Background(), &bytes.Buffer{})
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}

	expectedError := "OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .vymova.yaml"
	if err.Error() != expectedError {
		t.Errorf("Expected error '%s', got: %v", expectedError, err)
	}
}

func TestCategorize(t *testing.T) {
	got := Categorize([]string{
		"tts-1", "gpt-4o-mini", "dall-e-3", "o3-mini", "gpt-4o-audio-preview",
		"text-embedding-3-small", "gpt-4.1", "whisper-1", "omni-moderation-latest",
	})

	want := []string{"gpt-4.1", "gpt-4o-mini", "o3-mini"}
	if !reflect.DeepEqual(got.Chat, want) {
		t.Errorf("Chat = %v, want %v", got.Chat, want)
	}
	if got.Other != 6 {
		t.Errorf("Other = %d, want 6", got.Other)
	}
}

func TestListAvailableModels(t *testing.T) {
	lister := &Lister{
		apiKey: "key",
		client: fakeClient{ids: []string{"gpt-4o-mini", "tts-1", "gpt-4.1"}},
	}

	var out bytes.Buffer
	if err := lister.ListAvailableModels(context.Background(), &out); err != nil {
		t.Fatalf("ListAvailableModels failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{"  gpt-4.1\n", "  gpt-4o-mini (default)\n", "1 models not suited"} {
		if !strings.Contains(text, want) {
			t.Errorf("Output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "tts-1") {
		t.Errorf("Output lists a TTS model:\n%s", text)
	}
}

func TestListAvailableModels_ClientError(t *testing.T) {
	lister := &Lister{apiKey: "key", client: fakeClient{err: errors.New("unauthorized")}}

	err := lister.ListAvailableModels(context.Background(), &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "unauthorized") {
		t.Errorf("Expected wrapped client error, got %v", err)
	}
}

func TestListAvailableModels_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	lister := NewLister(apiKey)
	if err := lister.ListAvailableModels(context.Background(), os.Stdout); err != nil {
		t.Errorf("ListAvailableModels failed: %v", err)
	}
}
