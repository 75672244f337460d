// Package orthography rewrites consonant clusters and doubled letters of
// lowercase Cyrillic text before grapheme mapping. Length is written with the
// IPA mark ː so the grapheme mapper can attach it to the consonant.
package orthography

import "strings"

type rewrite struct {
	from, to string
}

// simplified clusters, applied in order until none is left. Each rewrite
// drops a т, so the loop ends.
var clusters = []rewrite{
	{"нтськ", "ньськ"},
	{"стськ", "ськ"},
	{"нтст", "нст"},
	{"стч", "шч"},
	{"стд", "зд"},
	{"стс", "сː"},
}

// sibilant clusters assimilate differently at the start of a word
var sibilants = []struct {
	from, initial, medial string
}{
	{"зш", "шː", "жш"},
	{"зч", "шч", "жч"},
}

var affricates = []rewrite{
	{"дждж", "джː"},
	{"дздз", "дзː"},
}

const (
	voicedDoubles    = "бвгґд"
	sibilantDoubles  = "жз"
	voicelessDoubles = "йклмнпрстфхцчшщ"
	affricateOpening = 'д'
	lengthMark       = 'ː'
)

// Normalize applies the cluster simplifications and gemination rewrites
func Normalize(text string) string {
	for prev := ""; prev != text; {
		prev = text
		for _, c := range clusters {
			text = strings.ReplaceAll(text, c.from, c.to)
		}
	}

	for _, s := range sibilants {
		if strings.HasPrefix(text, s.from) {
			text = s.initial + strings.TrimPrefix(text, s.from)
		}
		text = strings.ReplaceAll(text, s.from, s.medial)
	}

	text = geminate(text, voicedDoubles, nil)
	// дж and дз are affricates, so a doubled ж or з after д is not a geminate
	text = geminate(text, sibilantDoubles, func(prev rune) bool { return prev != affricateOpening })
	text = geminate(text, voicelessDoubles, nil)

	for _, a := range affricates {
		text = strings.ReplaceAll(text, a.from, a.to)
	}
	return text
}

// geminate rewrites each doubled letter of set as the letter plus ː, scanning
// left to right without overlap. allow, when set, gates on the preceding rune.
func geminate(text, set string, allow func(prev rune) bool) string {
	runes := []rune(text)
	out := make([]rune, 0, len(runes))

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		out = append(out, r)

		if !strings.ContainsRune(set, r) || i+1 >= len(runes) || runes[i+1] != r {
			continue
		}
		if allow != nil && i > 0 && !allow(runes[i-1]) {
			continue
		}
		out = append(out, lengthMark)
		i++
	}
	return string(out)
}
