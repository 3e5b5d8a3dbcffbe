// Package textutil provides city-name validation and normalization.
// City comparisons throughout the system are case- and accent-insensitive,
// so every stored or queried city goes through Normalize first.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxCityLength caps sanitized city names.
const MaxCityLength = 255

// foldTransformer decomposes to NFKD, strips combining marks (accents) and
// recomposes. Built once; transform.Chain is immutable and safe to share.
var foldTransformer = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// IsValidCity reports whether a city name is acceptable: non-empty after
// trimming and composed only of letters (any script), spaces and hyphens.
// Digits and punctuation are rejected.
func IsValidCity(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && r != ' ' && r != '-' {
			return false
		}
	}
	return true
}

// Sanitize trims the input, caps its length at maxLength runes and strips
// every rune that is not a letter, digit, space or hyphen.
func Sanitize(input string, maxLength int) string {
	clean := strings.TrimSpace(input)

	if runes := []rune(clean); len(runes) > maxLength {
		clean = string(runes[:maxLength])
	}

	var b strings.Builder
	b.Grow(len(clean))
	for _, r := range clean {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize sanitizes the input and folds it to its canonical comparison
// form: lower-cased with diacritics removed. "Orléans" and "orleans" map to
// the same value.
func Normalize(input string) string {
	clean := Sanitize(input, MaxCityLength)

	folded, _, err := transform.String(foldTransformer, clean)
	if err != nil {
		// Fold failure leaves accents in place; lowercase is still applied.
		folded = clean
	}
	return strings.ToLower(folded)
}
