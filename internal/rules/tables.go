package rules

import (
	"strings"

	"codeberg.org/snonux/vymova/internal/phoneme"
)

const (
	// consonants that soften before i or j
	palatalizable = "tdsznlrbpʋfɡmkɦxʃʒ"
	// first runes of voiced obstruents that trigger regressive voicing
	voicedObstruents = "bdzʒɡɦ"
	// consonants that may form an onset cluster with a following consonant
	onsetConsonants = "bdzʒɡɦmnlrpftskxʃjʋwʍ"
	// consonant runes allowed between ɔ and a stressed high vowel
	raisingCluster = "bdzʒɡɦmnlrpftskxʃ͡"
	// right context that makes ʋ after a vowel a coda glide
	codaFollowers = "bdzʒɡɦmnlrpftskxʃj"
	// coda context of j in the legacy variant, where j does not count
	legacyCodaFollowers = "bdzʒɡɦmnlrpftskxʃ"
	// right context that makes ʋ a voiced labial approximant
	labialVoiced = "ɔuoʊbdzʒɡɦmnlr"
	// right context that makes ʋ voiceless
	labialVoiceless = "pftskxʃ"
)

var softeners = []string{"t", "d", "s", "z", "n", "l", "t͡s", "d͡z"}

// voicing pairs, multi-unit entries first so they win on a shared start
var voicing = []struct {
	voiceless, voiced phoneme.Sequence
}{
	{phoneme.Parse("ʃt͡ʃ"), phoneme.Parse("ʒd͡ʒ")},
	{phoneme.Parse("p"), phoneme.Parse("b")},
	{phoneme.Parse("s"), phoneme.Parse("z")},
	{phoneme.Parse("t͡sʲ"), phoneme.Parse("d͡zʲ")},
	{phoneme.Parse("t"), phoneme.Parse("d")},
	{phoneme.Parse("f"), phoneme.Parse("v")},
	{phoneme.Parse("x"), phoneme.Parse("ɦ")},
	{phoneme.Parse("k"), phoneme.Parse("ɡ")},
	{phoneme.Parse("ʃ"), phoneme.Parse("ʒ")},
	{phoneme.Parse("tʲ"), phoneme.Parse("dʲ")},
	{phoneme.Parse("sʲ"), phoneme.Parse("zʲ")},
	{phoneme.Parse("t͡ʃ"), phoneme.Parse("d͡ʒ")},
	{phoneme.Parse("t͡s"), phoneme.Parse("d͡z")},
}

// Assimilation rewrites a consonant pair. The flags of the second consonant
// carry over to the last unit of Into.
type Assimilation struct {
	First  string
	Second string
	Into   string
}

// HushingPhrase is the sibilant assimilation table of the phrase variant
var HushingPhrase = []Assimilation{
	{"ʒ", "t͡sʲ", "zʲt͡sʲ"},
	{"t͡ʃ", "t͡sʲ", "t͡sʲː"},
	{"ʃ", "t͡sʲ", "sʲt͡sʲ"},
	{"ʃ", "sʲ", "sʲː"},
	{"z", "ʒ", "ʒː"},
	{"s", "ʃ", "ʃː"},
	{"z", "t͡ʃ", "ʒt͡ʃ"},
	{"z", "d͡ʒ", "ʒd͡ʒ"},
}

// HushingLegacy is the sibilant assimilation table of the legacy variant
var HushingLegacy = []Assimilation{
	{"ʒ", "t͡sʲ", "zʲt͡sʲ"},
	{"t͡ʃ", "t͡sʲ", "t͡sʲː"},
	{"ʃ", "t͡sʲ", "sʲt͡sʲ"},
	{"ʃ", "sʲ", "sʲː"},
	{"z", "ʒ", "ʒː"},
	{"s", "ʃ", "ʃː"},
	{"z", "t͡s", "ʒt͡s"},
	{"z", "d͡ʒ", "ʒd͡ʒ"},
}

// onsets are the clusters a stress mark may be moved in front of
var onsets = map[string]bool{
	"spr": true, "str": true, "skr": true, "spl": true, "skl": true,
	"sp": true, "st": true, "sk": true, "sf": true, "sx": true,
	"pr": true, "br": true, "tr": true, "dr": true, "kr": true,
	"ɡr": true, "ɦr": true, "fr": true, "xr": true,
	"pl": true, "bl": true, "kl": true, "ɡl": true, "ɦl": true,
	"fl": true, "xl": true,
}

// IsOnset reports whether cluster, written as plain consonant symbols, is in
// the stress onset catalog.
func IsOnset(cluster string) bool {
	return onsets[cluster]
}

func firstIn(u phoneme.Unit, set string) bool {
	return u.Kind == phoneme.Consonant && strings.ContainsRune(set, u.First())
}

func markBefore(seq phoneme.Sequence, i int) bool {
	prev, ok := seq.At(i - 1)
	return ok && prev.Kind == phoneme.Mark
}

func plainV(u phoneme.Unit) bool {
	return u.IsConsonant("ʋ") && u.Plain()
}

func plainJ(u phoneme.Unit) bool {
	return u.IsConsonant("j") && u.Plain()
}
