package domain

import "strings"

const (
	schemeHTTP  = "http://"
	schemeHTTPS = "https://"
)

// URLEntry is one whitespace-delimited token of the input and its
// normalized form.
type URLEntry struct {
	Raw string
	URL string
}

// Normalize returns token unchanged when it already starts with http:// or
// https:// (exact, case-sensitive), and prefixes it with http:// otherwise.
// No other validation is done; malformed tokens fail at probe time.
func Normalize(token string) string {
	if strings.HasPrefix(token, schemeHTTP) || strings.HasPrefix(token, schemeHTTPS) {
		return token
	}
	return schemeHTTP + token
}

// Tokenize splits text on any run of whitespace. Empty tokens are dropped.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// NewEntries tokenizes and normalizes text, preserving input order.
func NewEntries(text string) []URLEntry {
	tokens := Tokenize(text)
	out := make([]URLEntry, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, URLEntry{Raw: t, URL: Normalize(t)})
	}
	return out
}
