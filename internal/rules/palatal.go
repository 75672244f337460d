package rules

import (
	"strings"

	"codeberg.org/snonux/vymova/internal/phoneme"
)

// markMonosyllable stresses the only vowel of a word unless it already
// carries a mark.
func markMonosyllable(stress phoneme.Stress) Rule {
	return Rule{
		Name: "monosyllable",
		Apply: func(seq phoneme.Sequence) phoneme.Sequence {
			if seq.Vowels() != 1 {
				return seq
			}
			for i, u := range seq {
				if u.Kind == phoneme.Vowel {
					if markBefore(seq, i) {
						return seq
					}
					return seq.Insert(i, phoneme.NewMark(stress))
				}
			}
			return seq
		},
	}
}

func softens(u phoneme.Unit) bool {
	return u.Kind == phoneme.Consonant && !u.OptionalLong &&
		strings.ContainsRune(palatalizable, u.Last())
}

// palatalize softens consonants before i, possibly across a stress mark, and
// absorbs a following j into the consonant.
func palatalize(seq phoneme.Sequence) phoneme.Sequence {
	for i := range seq {
		if !softens(seq[i]) || seq[i].Palatal {
			continue
		}
		next, _ := seq.At(i + 1)
		if next.Kind == phoneme.Mark {
			next, _ = seq.At(i + 2)
		}
		if next.IsVowel("i") {
			seq[i].Palatal = true
		}
	}

	for i := 0; i+1 < len(seq); i++ {
		if !softens(seq[i]) || seq[i].Palatal {
			continue
		}
		// a long j hands its length to the consonant
		if j := seq[i+1]; j.IsConsonant("j") && !j.Palatal && !j.OptionalLong {
			seq[i].Palatal = true
			seq[i].Long = seq[i].Long || j.Long
			seq = seq.Delete(i + 1)
		}
	}
	return seq
}

// dropJAfterLong removes the j left behind a soft geminate such as t͡sʲː
func dropJAfterLong(seq phoneme.Sequence) phoneme.Sequence {
	for i := 0; i+1 < len(seq); i++ {
		u := seq[i]
		if u.Kind == phoneme.Consonant && u.Palatal && u.Long && plainJ(seq[i+1]) {
			seq = seq.Delete(i + 1)
		}
	}
	return seq
}

// optionalLength softens s before a soft t͡s and turns the affricate's length
// into optional length.
func optionalLength(seq phoneme.Sequence) phoneme.Sequence {
	for i := 0; i+1 < len(seq); i++ {
		s, ts := seq[i], seq[i+1]
		if !s.IsConsonant("s") || !s.Plain() || !ts.IsConsonant("t͡s") || !ts.Palatal {
			continue
		}
		seq[i].Palatal = true
		if ts.Long {
			seq[i+1].Long = false
			seq[i+1].OptionalLong = true
		}
	}
	return seq
}

// softness spreads leftwards in ordered passes, each softening a plain
// consonant from the first set before a soft one from the second. An empty
// second set stands for any single soft consonant.
var spreadPasses = []struct {
	from, before []string
}{
	{softeners, nil},
	{softeners, []string{"t͡s"}},
	{softeners, []string{"d͡z"}},
	{[]string{"t͡s"}, nil},
	{[]string{"d͡z"}, nil},
	{[]string{"d͡z"}, []string{"t͡s"}},
	{[]string{"t͡s"}, []string{"d͡z"}},
}

// spreadSoftness softens a dental before a soft consonant. Of the affricates
// only t͡s and d͡z pass softness on.
func spreadSoftness(seq phoneme.Sequence) phoneme.Sequence {
	for _, pass := range spreadPasses {
		for i := 0; i+1 < len(seq); i++ {
			u, next := seq[i], seq[i+1]
			if !u.IsConsonant(pass.from...) || !u.Plain() || !next.IsConsonant() || !next.Palatal {
				continue
			}
			if (pass.before == nil && next.IsAffricate()) || (pass.before != nil && !next.IsConsonant(pass.before...)) {
				continue
			}
			seq[i].Palatal = true
		}
	}
	return seq
}

// limitSoftRuns clears the third soft consonant from the end of any run of
// consonants that holds at least three of them.
func limitSoftRuns(seq phoneme.Sequence) phoneme.Sequence {
	for start := 0; start < len(seq); {
		if seq[start].Kind == phoneme.Vowel {
			start++
			continue
		}

		end := start
		var soft []int
		for ; end < len(seq) && seq[end].Kind != phoneme.Vowel; end++ {
			if seq[end].Kind == phoneme.Consonant && seq[end].Palatal {
				soft = append(soft, end)
			}
		}
		if len(soft) >= 3 {
			seq[soft[len(soft)-3]].Palatal = false
		}
		start = end
	}
	return seq
}
