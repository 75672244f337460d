package rules

import (
	"strings"

	"codeberg.org/snonux/vymova/internal/phoneme"
)

// reduceVowels applies the unstressed vowel allophones. open is the symbol
// the variant uses for а.
func reduceVowels(open string) func(phoneme.Sequence) phoneme.Sequence {
	return func(seq phoneme.Sequence) phoneme.Sequence {
		for i, u := range seq {
			if u.Kind != phoneme.Vowel || markBefore(seq, i) {
				continue
			}
			switch u.Symbol {
			case open:
				seq[i].Symbol = "ɐ"
			case "u":
				seq[i].Symbol = "ʊ"
			}
		}

		for i, u := range seq {
			if u.IsVowel("ɔ") && raisesBefore(seq, i+1) {
				seq[i].Symbol = "o"
			}
		}

		for i, u := range seq {
			if u.IsVowel("ɛ", "ɪ") && !markBefore(seq, i) {
				seq[i].Symbol = "e"
			}
		}
		return seq
	}
}

// raisesBefore reports whether seq from i holds consonants followed by a
// stressed high vowel.
func raisesBefore(seq phoneme.Sequence, i int) bool {
	j := i
	for ; j < len(seq); j++ {
		u := seq[j]
		if u.Kind != phoneme.Consonant || u.Long || u.OptionalLong || !allIn(u.Symbol, raisingCluster) {
			break
		}
	}
	if j == i {
		return false
	}

	mark, ok := seq.At(j)
	if !ok || mark.Kind != phoneme.Mark {
		return false
	}
	vowel, _ := seq.At(j + 1)
	return vowel.IsVowel("u", "i", "ʊ")
}

func allIn(s, set string) bool {
	for _, r := range s {
		if !strings.ContainsRune(set, r) {
			return false
		}
	}
	return true
}

func dropProvisional(seq phoneme.Sequence) phoneme.Sequence {
	return seq.DeleteFunc(func(u phoneme.Unit) bool {
		return u.Kind == phoneme.Mark && u.Stress == phoneme.Provisional
	})
}

func dropApostrophes(seq phoneme.Sequence) phoneme.Sequence {
	return seq.DeleteFunc(func(u phoneme.Unit) bool {
		return u.Kind == phoneme.Apostrophe
	})
}

// darkenL velarizes every plain l
func darkenL(seq phoneme.Sequence) phoneme.Sequence {
	for i, u := range seq {
		if u.IsConsonant("l") && !u.Palatal {
			seq[i].Symbol = "ɫ"
		}
	}
	return seq
}
