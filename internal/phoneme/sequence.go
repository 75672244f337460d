package phoneme

import "strings"

// Sequence is an ordered list of units
type Sequence []Unit

// Parse reads an IPA string into a sequence. Palatalization and length marks
// attach to the preceding consonant, tie-barred pairs become one unit and
// unknown runes become Other units.
func Parse(ipa string) Sequence {
	return Sequence(nil).AppendIPA(ipa)
}

// AppendIPA parses ipa and appends the result to s. A leading ʲ or ː
// attaches to the last unit of s when it is a consonant.
func (s Sequence) AppendIPA(ipa string) Sequence {
	runes := []rune(ipa)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == 'ʲ':
			s = s.attach(r, func(u *Unit) { u.Palatal = true })
		case r == 'ː':
			s = s.attach(r, func(u *Unit) {
				u.Long = true
				u.OptionalLong = false
			})
		case r == '(' && i+2 < len(runes) && runes[i+1] == 'ː' && runes[i+2] == ')':
			s = s.attach(r, func(u *Unit) { u.OptionalLong = true })
			i += 2
		case r == 'ˈ':
			s = append(s, NewMark(Primary))
		case r == 'ˌ':
			s = append(s, NewMark(Secondary))
		case r == '⁀':
			s = append(s, NewMark(Provisional))
		case strings.ContainsRune(vowelRunes, r):
			if i+1 < len(runes) && runes[i+1] == NonSyllabic {
				s = append(s, NewGlide(string(r)))
				i++
				continue
			}
			s = append(s, NewVowel(string(r)))
		case strings.ContainsRune(consonantRunes, r):
			if i+2 < len(runes) && runes[i+1] == TieBar {
				s = append(s, NewConsonant(string(runes[i:i+3])))
				i += 2
				continue
			}
			s = append(s, NewConsonant(string(r)))
		default:
			s = append(s, NewOther(r))
		}
	}
	return s
}

func (s Sequence) attach(r rune, set func(*Unit)) Sequence {
	if n := len(s); n > 0 && s[n-1].Kind == Consonant {
		set(&s[n-1])
		return s
	}
	return append(s, NewOther(r))
}

// Bounded wraps s in word boundary sentinels
func Bounded(s Sequence) Sequence {
	out := make(Sequence, 0, len(s)+2)
	out = append(out, NewBoundary())
	out = append(out, s...)
	return append(out, NewBoundary())
}

// String renders the sequence in IPA. Sentinels render as nothing.
func (s Sequence) String() string {
	var sb strings.Builder
	for _, u := range s {
		sb.WriteString(u.String())
	}
	return sb.String()
}

// Clone returns an independent copy of s
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Equal reports whether both sequences hold the same units
func (s Sequence) Equal(o Sequence) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// At returns the unit at i. ok is false when i is out of range.
func (s Sequence) At(i int) (u Unit, ok bool) {
	if i < 0 || i >= len(s) {
		return Unit{}, false
	}
	return s[i], true
}

// Replace substitutes the n units starting at i with units
func (s Sequence) Replace(i, n int, units ...Unit) Sequence {
	out := make(Sequence, 0, len(s)-n+len(units))
	out = append(out, s[:i]...)
	out = append(out, units...)
	return append(out, s[i+n:]...)
}

// Insert places units before index i
func (s Sequence) Insert(i int, units ...Unit) Sequence {
	return s.Replace(i, 0, units...)
}

// Delete removes the unit at index i
func (s Sequence) Delete(i int) Sequence {
	return s.Replace(i, 1)
}

// Move takes the unit at from and reinserts it so that it ends up at index to
func (s Sequence) Move(from, to int) Sequence {
	if from == to {
		return s
	}
	u := s[from]
	return s.Delete(from).Insert(to, u)
}

// DeleteFunc removes every unit for which drop returns true
func (s Sequence) DeleteFunc(drop func(Unit) bool) Sequence {
	out := s[:0]
	for _, u := range s {
		if !drop(u) {
			out = append(out, u)
		}
	}
	return out
}

// Vowels counts the vowel units
func (s Sequence) Vowels() int {
	n := 0
	for _, u := range s {
		if u.Kind == Vowel {
			n++
		}
	}
	return n
}
