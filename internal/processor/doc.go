// Package processor orchestrates transcription of single texts and batch
// files. It fans batch entries out over a worker pool, deduplicates
// repeated texts through an in-memory cache and the persistent lexicon,
// optionally cross-checks results against a language model and writes the
// export.
package processor
