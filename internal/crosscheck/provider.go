package crosscheck

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Supported providers
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Default models per provider
const (
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGeminiModel = "gemini-2.0-flash"
)

// Provider produces a reference transcription
type Provider interface {
	Name() string
	Transcribe(ctx context.Context, text string) (string, error)
}

// Config selects and configures a provider
type Config struct {
	Provider string
	Model    string
	APIKey   string
	// Timeout bounds one provider call
	Timeout time.Duration
}

// New creates the configured provider wrapped in a circuit breaker
func New(ctx context.Context, cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s API key not configured", cfg.Provider)
	}

	var (
		p   Provider
		err error
	)
	switch cfg.Provider {
	case ProviderOpenAI:
		p = NewOpenAIProvider(cfg.APIKey, cfg.Model)
	case ProviderGemini:
		p, err = NewGeminiProvider(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown cross-check provider %q (use openai or gemini)", cfg.Provider)
	}

	return NewBreaker(p, cfg.Timeout), nil
}

func prompt(text string) string {
	return fmt.Sprintf(`Transcribe the Ukrainian text below into the International Phonetic Alphabet.
A combining acute accent (U+0301) after a vowel marks the stressed syllable.
Put the stress mark ˈ before the stressed syllable, mark palatalized consonants with ʲ,
long consonants with ː and join affricates with a tie bar (t͡s, t͡ʃ, d͡z, d͡ʒ).
Reply with the transcription only, without slashes, brackets or explanations.

Text: %s`, text)
}

// cleanReference strips the delimiters models like to add around IPA
func cleanReference(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.Trim(s, " /[]`\"")
	return strings.TrimSpace(s)
}
