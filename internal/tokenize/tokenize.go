// Package tokenize splits normalized text into words and prosodic foot
// boundaries.
package tokenize

import "regexp"

// Kind tells words and foot boundaries apart
type Kind int

const (
	Word Kind = iota
	Foot
)

// FootBoundary is the rendering of a foot boundary token
const FootBoundary = "|"

// Token is one word or foot boundary of a phrase
type Token struct {
	Kind Kind
	Text string
}

var (
	footPattern  = regexp.MustCompile(`[\s\p{Z}]*[,–—][\s\p{Z}]*`)
	splitPattern = regexp.MustCompile(`[\s\p{Z}\-]+`)
)

// Split turns commas and dashes into foot boundaries and splits the rest on
// whitespace and hyphens. Empty fragments are dropped.
func Split(text string) []Token {
	text = footPattern.ReplaceAllString(text, " "+FootBoundary+" ")

	var tokens []Token
	for _, part := range splitPattern.Split(text, -1) {
		switch part {
		case "":
			continue
		case FootBoundary:
			tokens = append(tokens, Token{Kind: Foot, Text: FootBoundary})
		default:
			tokens = append(tokens, Token{Kind: Word, Text: part})
		}
	}
	return tokens
}
