package identity

import "strings"

// NormalizeUsername performs case-insensitive canonicalization.
func NormalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizePhone trims surrounding whitespace. Phone values are otherwise
// stored as supplied; format validation is a transport concern.
func NormalizePhone(s string) string {
	return strings.TrimSpace(s)
}
