// Package vymova transcribes Ukrainian orthography into the International
// Phonetic Alphabet.
//
// Stress is marked by placing U+0301 (acute) after the stressed vowel, and
// secondary stress with U+0300 (grave):
//
//	ipa, err := vymova.TranscribePhrase("Сполу́чені Шта́ти Аме́рики", true)
//	// spoˈɫut͡ʃenʲi ˈʃtate ɐˈmɛreke
//
// TranscribePhrase is word-aware and renders commas and dashes as foot
// boundaries. Transcribe is the older single-sequence variant.
package vymova

import (
	"codeberg.org/snonux/vymova/internal/accent"
	"codeberg.org/snonux/vymova/internal/grapheme"
	"codeberg.org/snonux/vymova/internal/orthography"
	"codeberg.org/snonux/vymova/internal/phoneme"
	"codeberg.org/snonux/vymova/internal/rules"
	"codeberg.org/snonux/vymova/internal/tokenize"
)

// Accent marks to place after a stressed vowel
const (
	Acute = accent.Acute
	Grave = accent.Grave
)

// ErrAccentMissing is returned, wrapped in a *MissingAccentError, when the
// accent check is on and polysyllabic text has no stress mark.
var ErrAccentMissing = accent.ErrMissing

// MissingAccentError carries the text that failed the accent check
type MissingAccentError = accent.MissingError

// Transcriber converts text to IPA with one variant and accent setting. It
// holds no mutable state and is safe for concurrent use.
type Transcriber struct {
	profile     rules.Profile
	checkAccent bool
}

// Option configures a Transcriber
type Option func(*Transcriber)

// WithLegacy selects the single-sequence variant
func WithLegacy() Option {
	return func(t *Transcriber) {
		t.profile = rules.Legacy
	}
}

// WithCheckAccent turns the accent check on or off. With it on, text of more
// than one syllable must carry an accent and a monosyllable gets stressed.
func WithCheckAccent(check bool) Option {
	return func(t *Transcriber) {
		t.checkAccent = check
	}
}

// New creates a Transcriber. The phrase-aware variant with the accent check
// off is the default.
func New(opts ...Option) *Transcriber {
	t := &Transcriber{profile: rules.Phrase}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Variant returns the name of the selected variant
func (t *Transcriber) Variant() string {
	return t.profile.Name
}

// CheckAccent reports whether the accent check is on
func (t *Transcriber) CheckAccent() bool {
	return t.checkAccent
}

// Transcribe converts text to IPA
func (t *Transcriber) Transcribe(text string) (string, error) {
	text = accent.Normalize(text)
	if err := accent.Check(text, t.checkAccent); err != nil {
		return "", err
	}

	if !t.profile.Tokenized {
		return t.sequence(text), nil
	}
	return assemble(tokenize.Split(text), t.sequence), nil
}

func (t *Transcriber) sequence(text string) string {
	seq := grapheme.Map(orthography.Normalize(text), grapheme.Options{
		OpenVowel: t.profile.OpenVowel,
		Grave:     t.profile.Grave,
	})
	return t.profile.Apply(phoneme.Bounded(seq), t.checkAccent).String()
}

// Transcribe converts text to IPA with the legacy single-sequence variant
func Transcribe(text string, checkAccent bool) (string, error) {
	return New(WithLegacy(), WithCheckAccent(checkAccent)).Transcribe(text)
}

// TranscribePhrase converts text to IPA word by word
func TranscribePhrase(text string, checkAccent bool) (string, error) {
	return New(WithCheckAccent(checkAccent)).Transcribe(text)
}
