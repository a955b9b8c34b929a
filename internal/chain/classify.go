package chain

import (
	"strings"
	"unicode"
)

// Classify derives a display name and deployment environment from a raw
// chain name. "testnet" anywhere in the name wins over "mainnet"; both
// keywords are stripped from the name case-insensitively.
func Classify(rawName string) (cleanName string, env Environment) {
	lower := strings.ToLower(rawName)
	switch {
	case strings.Contains(lower, "testnet"):
		return tidy(removeFold(rawName, "testnet")), Testnet
	case strings.Contains(lower, "mainnet"):
		return tidy(removeFold(rawName, "mainnet")), Mainnet
	default:
		return rawName, Mainnet
	}
}

// removeFold deletes every case-insensitive occurrence of sub (ASCII
// lowercase) from s. Matching walks runes: lowering can change byte
// length for some runes, so byte offsets into a lowered copy cannot be
// used to slice the original.
func removeFold(s, sub string) string {
	var b strings.Builder
	runes := []rune(s)
	pattern := []rune(sub)
	for i := 0; i < len(runes); {
		if matchFold(runes[i:], pattern) {
			i += len(pattern)
			continue
		}
		b.WriteRune(runes[i])
		i++
	}
	return b.String()
}

func matchFold(runes, pattern []rune) bool {
	if len(runes) < len(pattern) {
		return false
	}
	for i, p := range pattern {
		if unicode.ToLower(runes[i]) != p {
			return false
		}
	}
	return true
}

// tidy trims whitespace and at most one trailing hyphen left behind by
// keyword removal ("Ethereum - Testnet" -> "Ethereum").
func tidy(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "-")
	return strings.TrimSpace(s)
}
