// Package grapheme maps normalized Cyrillic text to a phoneme sequence using
// positional longest match over trigraphs, digraphs and single letters.
package grapheme

import (
	"strings"

	"codeberg.org/snonux/vymova/internal/phoneme"
)

// Options select the variant-specific renderings
type Options struct {
	// OpenVowel renders а, and the vowel of я
	OpenVowel string
	// Grave is the stress a U+0300 accent produces
	Grave phoneme.Stress
}

const (
	acute     = '\u0301'
	grave     = '\u0300'
	openVowel = "\x00"
)

type entry struct {
	letters string
	ipa     string
}

// trigraphs and digraphs are tried before single letters
var clusters = [][]entry{
	{
		{"дзь", "d͡zʲ"},
		{"тьс", "t͡sʲː"},
	},
	{
		{"дж", "d͡ʒ"},
		{"дз", "d͡z"},
		{"дс", "d͡zs"},
		{"дш", "d͡ʒʃ"},
		{"дч", "d͡ʒt͡ʃ"},
		{"дц", "d͡zt͡s"},
		{"тс", "t͡s"},
		{"тш", "t͡ʃʃ"},
		{"тч", "t͡ʃː"},
		{"тц", "t͡sː"},
	},
}

var letters = map[rune]string{
	'а': openVowel,
	'б': "b",
	'в': "ʋ",
	'г': "ɦ",
	'ґ': "ɡ",
	'д': "d",
	'е': "ɛ",
	'є': "jɛ",
	'ж': "ʒ",
	'з': "z",
	'и': "ɪ",
	'і': "i",
	'ї': "ji",
	'й': "j",
	'к': "k",
	'л': "l",
	'м': "m",
	'н': "n",
	'о': "ɔ",
	'п': "p",
	'р': "r",
	'с': "s",
	'т': "t",
	'у': "u",
	'ф': "f",
	'х': "x",
	'ц': "t͡s",
	'ч': "t͡ʃ",
	'ш': "ʃ",
	'щ': "ʃt͡ʃ",
	'ь': "ʲ",
	'ю': "ju",
	'я': "j" + openVowel,
	'’': "j",
	'ː': "ː",
}

// vowels a stress mark may follow in the mapped text
const stressable = "aɑɛiɪuɔ"

// Map converts a word from orthography.Normalize into a sequence. Stress
// marks are moved in front of the vowel they followed.
func Map(word string, opts Options) phoneme.Sequence {
	runes := []rune(word)
	var seq phoneme.Sequence

	for i := 0; i < len(runes); {
		if ipa, n, ok := lookup(runes[i:]); ok {
			seq = seq.AppendIPA(ipa)
			i += n
			continue
		}

		r := runes[i]
		switch r {
		case acute:
			seq = append(seq, phoneme.NewMark(phoneme.Primary))
		case grave:
			seq = append(seq, phoneme.NewMark(opts.Grave))
		case '\'', 'ʼ':
			seq = append(seq, phoneme.NewApostrophe())
		default:
			if ipa, ok := letters[r]; ok {
				seq = seq.AppendIPA(strings.ReplaceAll(ipa, openVowel, opts.OpenVowel))
			} else {
				seq = append(seq, phoneme.NewOther(r))
			}
		}
		i++
	}

	return markBeforeVowel(seq)
}

func lookup(runes []rune) (string, int, bool) {
	for _, group := range clusters {
		for _, e := range group {
			n := len([]rune(e.letters))
			if len(runes) >= n && string(runes[:n]) == e.letters {
				return e.ipa, n, true
			}
		}
	}
	return "", 0, false
}

func markBeforeVowel(seq phoneme.Sequence) phoneme.Sequence {
	for i := 1; i < len(seq); i++ {
		if seq[i].Kind == phoneme.Mark && seq[i-1].Kind == phoneme.Vowel &&
			strings.Contains(stressable, seq[i-1].Symbol) {
			seq[i-1], seq[i] = seq[i], seq[i-1]
		}
	}
	return seq
}
