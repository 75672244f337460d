package crosscheck

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"codeberg.org/snonux/vymova/internal/testutil"
)

type fakeChat struct {
	reply string
	err   error
	req   openai.ChatCompletionRequest
}

func (f *fakeChat) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.req = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: f.reply}},
		},
	}, nil
}

type fakeGenerator struct {
	reply string
	model string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: f.reply}}}},
		},
	}, nil
}

func TestOpenAIProvider(t *testing.T) {
	chat := &fakeChat{reply: "/ˈmamɐ/\n"}
	p := &OpenAIProvider{client: chat, model: DefaultOpenAIModel}

	got, err := p.Transcribe(context.Background(), "ма́ма")
	require.NoError(t, err)
	assert.Equal(t, "ˈmamɐ", got)
	assert.Equal(t, DefaultOpenAIModel, chat.req.Model)
	require.Len(t, chat.req.Messages, 2)
	assert.Contains(t, chat.req.Messages[1].Content, "ма́ма")
	assert.Equal(t, ProviderOpenAI, p.Name())
}

func TestOpenAIProviderErrors(t *testing.T) {
	p := &OpenAIProvider{client: &fakeChat{err: errors.New("boom")}, model: "m"}
	_, err := p.Transcribe(context.Background(), "ма́ма")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	p = &OpenAIProvider{client: &fakeChat{reply: ""}, model: "m"}
	_, err = p.Transcribe(context.Background(), "ма́ма")
	assert.Error(t, err)

	// a reply of only delimiters leaves no reference
	p = &OpenAIProvider{client: &fakeChat{reply: " /[]/ \n"}, model: "m"}
	_, err = p.Transcribe(context.Background(), "ма́ма")
	assert.Error(t, err)
}

func TestGeminiProvider(t *testing.T) {
	gen := &fakeGenerator{reply: "[seˈstra]"}
	p := &GeminiProvider{models: gen, model: DefaultGeminiModel}

	got, err := p.Transcribe(context.Background(), "сестра́")
	require.NoError(t, err)
	assert.Equal(t, "seˈstra", got)
	assert.Equal(t, DefaultGeminiModel, gen.model)
	assert.Equal(t, ProviderGemini, p.Name())
}

func TestNewRequiresKeyAndKnownProvider(t *testing.T) {
	_, err := New(context.Background(), Config{Provider: ProviderOpenAI})
	assert.Error(t, err)

	_, err = New(context.Background(), Config{Provider: "claude", APIKey: "k"})
	assert.Error(t, err)

	p, err := New(context.Background(), Config{Provider: ProviderOpenAI, APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, p.Name())
}

func TestBreakerOpensAfterFailures(t *testing.T) {
	mock := &testutil.MockProvider{Err: errors.New("unavailable")}
	b := NewBreaker(mock, time.Second)

	for i := 0; i < 3; i++ {
		_, err := b.Transcribe(context.Background(), "ма́ма")
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, b.State())

	_, err := b.Transcribe(context.Background(), "ма́ма")
	require.Error(t, err)
	assert.True(t, errors.Is(err, gobreaker.ErrOpenState))
	assert.Len(t, mock.Calls(), 3, "an open breaker must not call the provider")
}

func TestBreakerPassesResults(t *testing.T) {
	mock := &testutil.MockProvider{Responses: map[string]string{"бік": "bʲik"}}
	b := NewBreaker(mock, 0)

	got, err := b.Transcribe(context.Background(), "бік")
	require.NoError(t, err)
	assert.Equal(t, "bʲik", got)
	assert.Equal(t, gobreaker.StateClosed, b.State())
	assert.Equal(t, "mock", b.Name())
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name      string
		local     string
		reference string
		distance  int
	}{
		{"identical", "ˈmamɐ", "ˈmamɐ", 0},
		{"affricate is one unit", "t͡ʃɔ", "ʃɔ", 1},
		{"palatal flag counts once", "bʲik", "bik", 1},
		{"spaces ignored", "tak | nʲi", "tak|nʲi", 0},
		{"missing stress", "ˈmamɐ", "mamɐ", 1},
		{"empty reference", "ma", "", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Compare(tt.local, tt.reference)
			assert.Equal(t, tt.distance, c.Distance)
			assert.GreaterOrEqual(t, c.Similarity, 0.0)
			assert.LessOrEqual(t, c.Similarity, 1.0)
		})
	}

	assert.Equal(t, 1.0, Compare("", "").Similarity)
	assert.InDelta(t, 2.0/3.0, Compare("bʲik", "bik").Similarity, 1e-9)
}

func TestCleanReference(t *testing.T) {
	assert.Equal(t, "ˈmamɐ", cleanReference("  /ˈmamɐ/  "))
	assert.Equal(t, "ˈmamɐ", cleanReference("`ˈmamɐ`\nexplanation"))
	assert.Equal(t, "ˈmamɐ", cleanReference("[ˈmamɐ]"))
}
