package rules

import (
	"strings"

	"codeberg.org/snonux/vymova/internal/phoneme"
)

// Placement selects how stress marks move from the vowel to the syllable
// onset
type Placement int

const (
	// OnsetCatalog moves a mark over one consonant and then over a catalog
	// onset cluster
	OnsetCatalog Placement = iota
	// ConsonantRun moves a mark over the whole preceding consonant run and
	// then back past sonorant codas
	ConsonantRun
)

func placeStress(p Placement) func(phoneme.Sequence) phoneme.Sequence {
	return func(seq phoneme.Sequence) phoneme.Sequence {
		for m := 0; m < len(seq); m++ {
			if seq[m].Kind != phoneme.Mark {
				continue
			}
			// marks never cross each other, so the scan resumes after the
			// one just placed
			var at int
			switch p {
			case OnsetCatalog:
				seq, at = placeOnset(seq, m)
			case ConsonantRun:
				seq, at = placeAfterRun(seq, m)
			}
			m = max(m, at)
		}
		return seq
	}
}

func crossable(u phoneme.Unit, ok bool) bool {
	return ok && (u.Kind == phoneme.Consonant || u.Kind == phoneme.Other)
}

// simple is a plain single-rune consonant that can open an onset cluster
func simple(u phoneme.Unit) bool {
	return firstIn(u, onsetConsonants) && !u.IsAffricate() && !u.Long && !u.OptionalLong
}

func placeOnset(seq phoneme.Sequence, m int) (phoneme.Sequence, int) {
	if prev, ok := seq.At(m - 1); crossable(prev, ok) {
		seq = seq.Move(m, m-1)
		m--
	}

	b, _ := seq.At(m - 1)
	c, _ := seq.At(m + 1)
	if simple(b) && firstIn(c, onsetConsonants) {
		a, _ := seq.At(m - 2)
		next := string(c.First())
		switch {
		case simple(a) && IsOnset(a.Symbol+b.Symbol+next):
			seq = seq.Move(m, m-2)
			m -= 2
		case IsOnset(b.Symbol+next) || c.Symbol == "j":
			seq = seq.Move(m, m-1)
			m--
		}
	} else if b.IsAffricate() && !b.Long && plainJ(c) {
		// an affricate opens the syllable together with j
		seq = seq.Move(m, m-1)
		m--
	}

	// a mark behind a word-initial consonant cluster goes to the word start
	j := m - 1
	for j >= 0 && seq[j].Kind != phoneme.Vowel && seq[j].Kind != phoneme.Glide &&
		seq[j].Kind != phoneme.Boundary && seq[j].Kind != phoneme.Mark {
		j--
	}
	if (j < 0 || seq[j].Kind == phoneme.Boundary) && j+1 < m {
		seq = seq.Move(m, j+1)
		m = j + 1
	}

	// a word-initial glide belongs to the stressed syllable
	if m >= 2 && seq[m-1].Kind == phoneme.Glide && seq[m-2].Kind == phoneme.Boundary {
		seq = seq.Move(m, m-1)
		m--
	}
	return seq, m
}

// sonorant codas the mark is pushed back over, in order, with the consonants
// that must follow them
var sonorantCodas = []struct {
	symbol    string
	followers string
}{
	{"l", "bdzʒɡɦmnrpftskxʃʋ"},
	{"r", "bdzʒɡɦmnlpftskxʃʋ"},
	{"m", "bpfɦszʃʋʒ"},
	{"n", "dtfkɡɦlxszʃʋʒ"},
}

func placeAfterRun(seq phoneme.Sequence, m int) (phoneme.Sequence, int) {
	k := m
	for k > 0 && seq[k-1].Kind == phoneme.Consonant && !seq[k-1].OptionalLong {
		k--
	}
	if k < m {
		seq = seq.Move(m, k)
		m = k
	}

	if prev, ok := seq.At(m - 1); ok && prev.Kind == phoneme.Glide {
		if next, _ := seq.At(m + 1); next.Kind == phoneme.Vowel {
			seq = seq.Move(m, m-1)
			m--
		}
	}

	for _, coda := range sonorantCodas {
		son, _ := seq.At(m + 1)
		next, _ := seq.At(m + 2)
		if son.IsConsonant(coda.symbol) && !son.OptionalLong &&
			next.Kind == phoneme.Consonant && strings.ContainsRune(coda.followers, next.First()) {
			seq = seq.Move(m, m+1)
			m++
		}
	}
	return seq, m
}
