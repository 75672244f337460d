package crosscheck

import "codeberg.org/snonux/vymova/internal/phoneme"

// Comparison relates a rule-based transcription to a reference
type Comparison struct {
	Local     string
	Reference string
	// Distance is the edit distance counted in phonetic units, so an
	// affricate or a palatalized consonant counts as one
	Distance int
	// Similarity is 1 - Distance / max(len), in [0, 1]
	Similarity float64
}

// Compare computes the unit edit distance between local and reference.
// Stress marks and foot boundaries count, spaces do not.
func Compare(local, reference string) Comparison {
	a := units(local)
	b := units(reference)

	d := Distance(a, b)
	longest := max(len(a), len(b))

	similarity := 1.0
	if longest > 0 {
		similarity = 1 - float64(d)/float64(longest)
	}

	return Comparison{
		Local:      local,
		Reference:  reference,
		Distance:   d,
		Similarity: similarity,
	}
}

func units(ipa string) phoneme.Sequence {
	return phoneme.Parse(ipa).DeleteFunc(func(u phoneme.Unit) bool {
		return u.Kind == phoneme.Other && u.Symbol == " "
	})
}

// Distance computes the Levenshtein distance between two unit sequences
func Distance(a, b phoneme.Sequence) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		cur := make([]int, lb+1)
		cur[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev = cur
	}
	return prev[lb]
}
