package analysis

import (
	"github.com/artem13815/resume-analyzer/pkg/nlp"
	"github.com/artem13815/resume-analyzer/pkg/taxonomy"
)

// MatchSkills splits the role's required skills into those present in tokens and those missing.
// Skills are compared as whole tokens; multi-word skills never match.
func MatchSkills(tokens nlp.TokenSet, role taxonomy.Role) (matched, missing []string) {
	return nlp.SplitSkills(tokens, role.Skills)
}

// Percentage returns 100 * part / total, or 0 when total is zero.
func Percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
