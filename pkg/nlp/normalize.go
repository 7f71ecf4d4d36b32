package nlp

import (
	"strings"
)

// CollapseSpace replaces whitespace runs with a single space and trims the ends.
// Case and punctuation are left untouched.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeSkill brings a configured skill name to its canonical form:
// lowercase, trimmed, single spaces. Punctuation such as "c++" or "node.js" is kept.
func NormalizeSkill(skill string) string {
	return strings.ToLower(CollapseSpace(skill))
}
