package rules

import "codeberg.org/snonux/vymova/internal/phoneme"

// bareMatch compares symbol and softness of a consonant without length
func bareMatch(u, want phoneme.Unit) bool {
	return u.Kind == phoneme.Consonant && u.Symbol == want.Symbol &&
		u.Palatal == want.Palatal && !u.Long && !u.OptionalLong
}

// voice is one left-to-right pass of regressive voicing. A voiceless
// obstruent directly before a voiced one takes its voiced counterpart.
func voice(seq phoneme.Sequence) phoneme.Sequence {
	for i := 0; i < len(seq); i++ {
		for _, pair := range voicing {
			n := len(pair.voiceless)
			if !matchesAt(seq, i, pair.voiceless) {
				continue
			}
			next, ok := seq.At(i + n)
			if !ok || !firstIn(next, voicedObstruents) {
				continue
			}
			seq = seq.Replace(i, n, pair.voiced.Clone()...)
			i += n - 1
			break
		}
	}
	return seq
}

func matchesAt(seq phoneme.Sequence, i int, pattern phoneme.Sequence) bool {
	if i+len(pattern) > len(seq) {
		return false
	}
	for k, want := range pattern {
		if !bareMatch(seq[i+k], want) {
			return false
		}
	}
	return true
}

// assimilate applies table in order, each row as its own pass
func assimilate(table []Assimilation) func(phoneme.Sequence) phoneme.Sequence {
	type row struct {
		first, second phoneme.Unit
		into          phoneme.Sequence
	}
	rows := make([]row, len(table))
	for i, a := range table {
		rows[i] = row{
			first:  phoneme.Parse(a.First)[0],
			second: phoneme.Parse(a.Second)[0],
			into:   phoneme.Parse(a.Into),
		}
	}

	return func(seq phoneme.Sequence) phoneme.Sequence {
		for _, r := range rows {
			for i := 0; i+1 < len(seq); i++ {
				u, next := seq[i], seq[i+1]
				if !bareMatch(u, r.first) {
					continue
				}
				if !next.IsConsonant(r.second.Symbol) || (r.second.Palatal && !next.Palatal) {
					continue
				}

				out := r.into.Clone()
				last := &out[len(out)-1]
				last.Palatal = last.Palatal || next.Palatal
				last.Long = last.Long || next.Long
				last.OptionalLong = next.OptionalLong && !last.Long

				seq = seq.Replace(i, 2, out...)
				i += len(out) - 1
			}
		}
		return seq
	}
}
