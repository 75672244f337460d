// Package batch reads batch files of texts to transcribe, one per line, with
// an optional expected transcription after '='.
package batch
