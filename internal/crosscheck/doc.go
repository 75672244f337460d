// Package crosscheck asks a language model for a reference IPA transcription
// and measures how far it is from the rule-based one. Calls go through a
// circuit breaker so a failing provider does not stall a batch.
package crosscheck
