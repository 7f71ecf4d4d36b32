package analysis

import (
	"sort"

	"github.com/artem13815/resume-analyzer/pkg/nlp"
	"github.com/artem13815/resume-analyzer/pkg/taxonomy"
)

// MaxRecommendations caps the number of suggested roles.
const MaxRecommendations = 3

// Recommend scores every role with at least one skill and returns the best
// MaxRecommendations, highest first. Ties keep taxonomy order.
func Recommend(tokens nlp.TokenSet, tax *taxonomy.Taxonomy) []RoleRecommendation {
	recs := []RoleRecommendation{}
	for _, r := range tax.Roles() {
		if len(r.Skills) == 0 {
			continue
		}
		pct := Percentage(nlp.CountPresent(tokens, r.Skills), len(r.Skills))
		recs = append(recs, RoleRecommendation{Role: r.Name, Percentage: nlp.Round(pct, 1)})
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Percentage > recs[j].Percentage })
	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	return recs
}
