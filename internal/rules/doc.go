// Package rules holds the ordered phonological rewrite pipeline that turns a
// mapped phoneme sequence into its surface transcription. A Profile selects
// the variant (phrase-aware or legacy) and Profile.Rules builds the ordered
// list of rules for it.
package rules
