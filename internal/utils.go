package internal

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"

	"codeberg.org/snonux/vymova/internal/accent"
)

// EntryKey identifies a transcription of text under one variant and accent
// setting. Format: variant_check_md5(normalized text)[:12], so case and
// Unicode composition do not produce distinct keys.
func EntryKey(text, variant string, checkAccent bool) string {
	hash := md5.Sum([]byte(accent.Normalize(text)))
	hashStr := hex.EncodeToString(hash[:])[:12]

	check := "nocheck"
	if checkAccent {
		check = "check"
	}
	return fmt.Sprintf("%s_%s_%s", variant, check, hashStr)
}

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if isAlphaNumeric(r) || r == '-' || r == '_' {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}
	return sb.String()
}

// isAlphaNumeric accepts ASCII letters and digits and the Cyrillic script,
// which covers і, ї, є and ґ
func isAlphaNumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') || unicode.Is(unicode.Cyrillic, r)
}
