// Package lexicon persists transcriptions in a SQLite database so batch runs
// can reuse earlier results and keep a history of which run produced them.
package lexicon
