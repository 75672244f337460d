// Package phoneme defines the segment model the transcription rules work on.
// A word is a Sequence of Units: vowels, consonants (affricates are a single
// unit), glides, stress marks, word boundaries and pass-through runes.
// Palatalization and length are flags on the consonant they belong to, so no
// rule can separate a diacritic from its base or split a tie-barred pair.
package phoneme
