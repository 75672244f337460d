package rules

import "codeberg.org/snonux/vymova/internal/phoneme"

// Profile is the configuration of one transcription variant
type Profile struct {
	Name string
	// Tokenized transcribes word by word with foot boundaries for commas
	// and dashes. Otherwise the whole text is one sequence.
	Tokenized bool
	// OpenVowel is what а maps to before reduction
	OpenVowel string
	// Grave is the stress a grave accent produces
	Grave phoneme.Stress
	// Monosyllable is the mark the accent check gives a single vowel
	Monosyllable phoneme.Stress
	Hushing      []Assimilation
	// AnyCodaV turns every ʋ after a vowel into u̯
	AnyCodaV bool
	// JCoda lists the consonants that make a j before them a glide
	JCoda     string
	Placement Placement
	DarkL     bool
}

// Phrase is the phrase-aware variant
var Phrase = Profile{
	Name:         "phrase",
	Tokenized:    true,
	OpenVowel:    "a",
	Grave:        phoneme.Secondary,
	Monosyllable: phoneme.Provisional,
	Hushing:      HushingPhrase,
	JCoda:        codaFollowers,
	Placement:    OnsetCatalog,
	DarkL:        true,
}

// Legacy is the single-sequence variant
var Legacy = Profile{
	Name:         "legacy",
	OpenVowel:    "ɑ",
	Grave:        phoneme.Primary,
	Monosyllable: phoneme.Primary,
	Hushing:      HushingLegacy,
	AnyCodaV:     true,
	JCoda:        legacyCodaFollowers,
	Placement:    ConsonantRun,
}

// Rules returns the ordered rule list of the profile
func (p Profile) Rules(checkAccent bool) []Rule {
	var rules []Rule
	if checkAccent {
		rules = append(rules, markMonosyllable(p.Monosyllable))
	}

	rules = append(rules,
		Rule{Name: "palatalize", Apply: palatalize},
		Rule{Name: "drop j after soft geminate", Apply: dropJAfterLong},
		Rule{Name: "optional length", Apply: optionalLength},
		FixedPoint("voicing", Rule{Name: "voicing pass", Apply: voice}),
		Rule{Name: "spread softness", Apply: spreadSoftness},
		Rule{Name: "hushing", Apply: assimilate(p.Hushing)},
		Rule{Name: "limit soft runs", Apply: limitSoftRuns},
		Rule{Name: "vowel reduction", Apply: reduceVowels(p.OpenVowel)},
	)

	if p.Monosyllable == phoneme.Provisional {
		rules = append(rules, Rule{Name: "drop provisional stress", Apply: dropProvisional})
	}

	rules = append(rules,
		Rule{Name: "labial glides", Apply: labials(p.AnyCodaV)},
		Rule{Name: "palatal glides", Apply: palatalGlides(p.JCoda)},
		Rule{Name: "drop apostrophes", Apply: dropApostrophes},
		Rule{Name: "stress placement", Apply: placeStress(p.Placement)},
	)

	if p.DarkL {
		rules = append(rules, Rule{Name: "dark l", Apply: darkenL})
	}
	return rules
}

// Apply runs the profile's rules over a bounded sequence
func (p Profile) Apply(seq phoneme.Sequence, checkAccent bool) phoneme.Sequence {
	return Run(seq, p.Rules(checkAccent))
}
