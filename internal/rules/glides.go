package rules

import "codeberg.org/snonux/vymova/internal/phoneme"

func codaContext(u phoneme.Unit, ok bool, followers string) bool {
	return !ok || u.Kind == phoneme.Boundary || firstIn(u, followers)
}

// labials realizes ʋ as u̯, w or ʍ. With anyCoda every ʋ after a vowel becomes
// u̯, otherwise only one before a consonant or the end of the word does.
func labials(anyCoda bool) func(phoneme.Sequence) phoneme.Sequence {
	return func(seq phoneme.Sequence) phoneme.Sequence {
		for i, u := range seq {
			if !plainV(u) {
				continue
			}
			prev, _ := seq.At(i - 1)
			next, ok := seq.At(i + 1)

			switch {
			case prev.Kind == phoneme.Vowel && (anyCoda || codaContext(next, ok, codaFollowers)):
				seq[i] = phoneme.NewGlide("u")
			case voicedLabialContext(seq, i+1):
				seq[i].Symbol = "w"
			case firstIn(next, labialVoiceless):
				seq[i].Symbol = "ʍ"
			}
		}
		return seq
	}
}

func voicedLabialContext(seq phoneme.Sequence, i int) bool {
	u, ok := seq.At(i)
	if ok && u.Kind == phoneme.Mark {
		u, ok = seq.At(i + 1)
	}
	if !ok {
		return false
	}
	return u.IsVowel("ɔ", "u", "o", "ʊ") || firstIn(u, labialVoiced)
}

// palatalGlides realizes j as i̯ after a vowel in the coda and at the start of
// a word before one of followers.
func palatalGlides(followers string) func(phoneme.Sequence) phoneme.Sequence {
	return func(seq phoneme.Sequence) phoneme.Sequence {
		for i, u := range seq {
			if !plainJ(u) {
				continue
			}
			prev, hasPrev := seq.At(i - 1)
			next, hasNext := seq.At(i + 1)

			switch {
			case prev.Kind == phoneme.Vowel && codaContext(next, hasNext, followers):
				seq[i] = phoneme.NewGlide("i")
			case (!hasPrev || prev.Kind == phoneme.Boundary) && firstIn(next, followers):
				seq[i] = phoneme.NewGlide("i")
			}
		}
		return seq
	}
}
