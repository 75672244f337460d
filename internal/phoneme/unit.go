package phoneme

import (
	"strings"
	"unicode/utf8"
)

// Kind classifies a unit of a segment sequence
type Kind int

const (
	// Other is an unrecognized rune that passes through every rule unchanged
	Other Kind = iota
	Vowel
	Consonant
	// Glide is a non-syllabic vowel allophone, u̯ or i̯
	Glide
	// Mark is a stress mark
	Mark
	// Boundary is the word boundary sentinel
	Boundary
	// Apostrophe is the orthographic apostrophe sentinel
	Apostrophe
)

// Stress is the variant of a stress mark
type Stress int

const (
	NoStress Stress = iota
	Primary
	Secondary
	// Provisional marks the vowel of a monosyllable so it keeps its stressed
	// allophone. It is removed before stress placement.
	Provisional
)

// IPA symbols used by the segment model
const (
	TieBar          = '\u0361'
	NonSyllabic     = '\u032f'
	PalatalMark     = "ʲ"
	LengthMark      = "ː"
	OptionalLength  = "(ː)"
	PrimaryMark     = "ˈ"
	SecondaryMark   = "ˌ"
	ProvisionalMark = "⁀"
)

const (
	vowelRunes     = "aɑɛeiɪuʊɔoɐ"
	consonantRunes = "bdzʒɡɦmnlrpftskxʃjʋwʍvɫ"
)

// Unit is one phonetic unit of a sequence
type Unit struct {
	Kind         Kind
	Symbol       string
	Palatal      bool
	Long         bool
	OptionalLong bool
	Stress       Stress
}

// NewVowel creates a vowel unit
func NewVowel(symbol string) Unit {
	return Unit{Kind: Vowel, Symbol: symbol}
}

// NewConsonant creates a consonant unit. Affricates use the tie-barred form.
func NewConsonant(symbol string) Unit {
	return Unit{Kind: Consonant, Symbol: symbol}
}

// NewGlide creates a glide unit from its vowel
func NewGlide(vowel string) Unit {
	return Unit{Kind: Glide, Symbol: vowel + string(NonSyllabic)}
}

// NewMark creates a stress mark unit
func NewMark(s Stress) Unit {
	return Unit{Kind: Mark, Stress: s}
}

// NewBoundary creates a word boundary sentinel
func NewBoundary() Unit {
	return Unit{Kind: Boundary}
}

// NewApostrophe creates the apostrophe sentinel
func NewApostrophe() Unit {
	return Unit{Kind: Apostrophe}
}

// NewOther wraps a rune no table knows about
func NewOther(r rune) Unit {
	return Unit{Kind: Other, Symbol: string(r)}
}

// IsVowel reports whether u is a vowel with one of the given symbols.
// With no symbols any vowel matches.
func (u Unit) IsVowel(symbols ...string) bool {
	return u.Kind == Vowel && matches(u.Symbol, symbols)
}

// IsConsonant reports whether u is a consonant with one of the given symbols.
// With no symbols any consonant matches.
func (u Unit) IsConsonant(symbols ...string) bool {
	return u.Kind == Consonant && matches(u.Symbol, symbols)
}

// IsAffricate reports whether u is a tie-barred affricate
func (u Unit) IsAffricate() bool {
	return u.Kind == Consonant && strings.ContainsRune(u.Symbol, TieBar)
}

// Plain reports whether u carries no palatalization or length
func (u Unit) Plain() bool {
	return !u.Palatal && !u.Long && !u.OptionalLong
}

// First returns the first rune of the symbol
func (u Unit) First() rune {
	r, _ := utf8.DecodeRuneInString(u.Symbol)
	return r
}

// Last returns the last rune of the symbol
func (u Unit) Last() rune {
	r, _ := utf8.DecodeLastRuneInString(u.Symbol)
	return r
}

// String renders the unit in IPA
func (u Unit) String() string {
	switch u.Kind {
	case Boundary, Apostrophe:
		return ""
	case Mark:
		switch u.Stress {
		case Primary:
			return PrimaryMark
		case Secondary:
			return SecondaryMark
		case Provisional:
			return ProvisionalMark
		}
		return ""
	}

	var sb strings.Builder
	sb.WriteString(u.Symbol)
	if u.Palatal {
		sb.WriteString(PalatalMark)
	}
	if u.Long {
		sb.WriteString(LengthMark)
	} else if u.OptionalLong {
		sb.WriteString(OptionalLength)
	}
	return sb.String()
}

func matches(symbol string, symbols []string) bool {
	if len(symbols) == 0 {
		return true
	}
	for _, s := range symbols {
		if s == symbol {
			return true
		}
	}
	return false
}
