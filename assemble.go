package vymova

import (
	"strings"

	"codeberg.org/snonux/vymova/internal/tokenize"
)

// assemble transcribes each word token and joins the results with single
// spaces. Foot tokens render as |.
func assemble(tokens []tokenize.Token, word func(string) string) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == tokenize.Foot {
			parts = append(parts, tokenize.FootBoundary)
			continue
		}
		parts = append(parts, word(tok.Text))
	}
	return strings.Join(parts, " ")
}
