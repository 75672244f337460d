// Package export writes transcription results as tab separated text, CSV or
// YAML.
package export
