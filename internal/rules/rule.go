package rules

import "codeberg.org/snonux/vymova/internal/phoneme"

// Rule is one named rewrite over a sequence
type Rule struct {
	Name  string
	Apply func(phoneme.Sequence) phoneme.Sequence
}

// Run applies the rules in order
func Run(seq phoneme.Sequence, rules []Rule) phoneme.Sequence {
	for _, r := range rules {
		seq = r.Apply(seq)
	}
	return seq
}

// FixedPoint wraps r so it is re-applied until a pass changes nothing. The
// number of passes is bounded by the sequence length plus one.
func FixedPoint(name string, r Rule) Rule {
	return Rule{
		Name: name,
		Apply: func(seq phoneme.Sequence) phoneme.Sequence {
			out, _ := Converge(r, seq, len(seq)+1)
			return out
		},
	}
}

// Converge re-applies r until a pass leaves the sequence unchanged or limit
// passes have run. It returns the result and the number of passes that
// changed something.
func Converge(r Rule, seq phoneme.Sequence, limit int) (phoneme.Sequence, int) {
	for pass := 0; pass < limit; pass++ {
		prev := seq.Clone()
		seq = r.Apply(seq)
		if seq.Equal(prev) {
			return seq, pass
		}
	}
	return seq, limit
}
