package accent

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Combining marks placed after a vowel letter
const (
	Acute = "\u0301"
	Grave = "\u0300"
)

// vowelLetters are the syllable-forming letters counted by the gate
const vowelLetters = "аеєиіїоуюя"

// ErrMissing matches every *MissingError via errors.Is
var ErrMissing = errors.New("accent missing")

// MissingError reports polysyllabic text that carries no stress mark
type MissingError struct {
	Text string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("the text %q has more than one syllable but no stress accent; "+
		"mark the stressed vowel with U+0301 or disable the accent check", e.Text)
}

// Is lets errors.Is(err, ErrMissing) match
func (e *MissingError) Is(target error) bool {
	return target == ErrMissing
}

// precomposed grave letters that NFC keeps as one code point
var graveDecomposer = strings.NewReplacer(
	"ѐ", "е"+Grave,
	"Ѐ", "Е"+Grave,
	"ѝ", "и"+Grave,
	"Ѝ", "И"+Grave,
)

// Normalize composes text to NFC, lowercases it and splits the precomposed
// grave letters into base letter plus combining grave.
func Normalize(text string) string {
	text = norm.NFC.String(text)
	// A Caser keeps state, so each call gets its own
	text = cases.Lower(language.Ukrainian).String(text)
	return DecomposeGrave(text)
}

// DecomposeGrave rewrites ѐ and ѝ as base letter plus U+0300
func DecomposeGrave(text string) string {
	return graveDecomposer.Replace(text)
}

// RemovePronNotations drops grave accents from text when removeGrave is set.
// Letters that carry other diacritics keep them.
func RemovePronNotations(text string, removeGrave bool) string {
	if !removeGrave {
		return text
	}
	return norm.NFC.String(strings.ReplaceAll(norm.NFD.String(text), Grave, ""))
}

// HasMark reports whether text contains an acute or grave accent
func HasMark(text string) bool {
	return strings.Contains(text, Acute) || strings.Contains(text, Grave)
}

// Syllables counts the vowel letters of normalized text
func Syllables(text string) int {
	n := 0
	for _, r := range text {
		if strings.ContainsRune(vowelLetters, r) {
			n++
		}
	}
	return n
}

// Check returns a *MissingError when checking is on and the normalized text
// has more than one syllable without any accent.
func Check(text string, checkAccent bool) error {
	if !checkAccent || HasMark(text) || Syllables(text) <= 1 {
		return nil
	}
	return &MissingError{Text: text}
}
