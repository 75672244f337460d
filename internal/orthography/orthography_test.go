package orthography

import (
	"math/rand"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"untouched", "мама", "мама"},
		{"нтськ", "студентський", "студеньський"},
		{"стськ", "туристський", "туриський"},
		{"нтст", "агентство", "агенство"},
		{"стч", "невістчин", "невішчин"},
		{"стд", "шістдесят", "шіздесят"},
		{"стс", "шістсот", "шісːот"},
		{"initial зш", "зшити", "шːити"},
		{"medial зш", "розшити", "рожшити"},
		{"initial зч", "зчистити", "шчистити"},
		{"medial зч", "розчистити", "рожчистити"},
		{"voiced double", "відділити", "відːілити"},
		{"voiceless double", "полісся", "полісːя"},
		{"sibilant double", "беззубий", "безːубий"},
		{"affricate doubles", "віджджати", "віджːати"},
		{"double н", "знання", "знанːя"},
		{"no overlap", "ннн", "нːн"},
		{"cluster exposed by a rewrite", "нтстськ", "ньськ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	// cluster letters are repeated so that they meet often
	letters := []rune("абвгґдеєжзиіїйклмнопрстуфхцчшщьюя" + "нтсдзжшч" + "нтсдзжшч")
	rng := rand.New(rand.NewSource(1))

	for n := 0; n < 5000; n++ {
		word := make([]rune, 1+rng.Intn(10))
		for i := range word {
			word[i] = letters[rng.Intn(len(letters))]
		}

		once := Normalize(string(word))
		assert.Equal(t, once, Normalize(once), "Normalize(%q) is not stable", string(word))
	}
}

func FuzzNormalize(f *testing.F) {
	for _, seed := range []string{"студентський", "нтстськ", "зшити", "віджджати", "ннн", "шістсот"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, text string) {
		if !utf8.ValidString(text) {
			t.Skip()
		}
		once := Normalize(text)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(%q) = %q, again %q", text, once, twice)
		}
	})
}
