package nlp

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`[^a-z0-9\s]`)

// Normalize lowercases s and replaces every character other than a-z, 0-9 and
// whitespace with a space. Whitespace runs are collapsed to one space.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = nonWord.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// TokenSet is an unordered set of normalized tokens.
type TokenSet map[string]struct{}

// Has reports whether t is in the set.
func (s TokenSet) Has(t string) bool {
	_, ok := s[t]
	return ok
}

// Len returns the number of distinct tokens.
func (s TokenSet) Len() int { return len(s) }

// Tokens returns the unique tokens of a normalized string.
func Tokens(normalized string) TokenSet {
	out := make(TokenSet)
	for _, t := range strings.Fields(normalized) {
		out[t] = struct{}{}
	}
	return out
}

// Text is the normalized form of a résumé used by the matchers.
type Text struct {
	Tokens TokenSet
}

// NewText normalizes raw and splits it into tokens.
func NewText(raw string) Text {
	return Text{Tokens: Tokens(Normalize(raw))}
}
