package jobs

import (
	"sort"

	"github.com/artem13815/resume-analyzer/pkg/nlp"
)

// SnippetLen is the number of description characters kept in a snippet.
const SnippetLen = 200

// ScoreFunc rates the similarity of a résumé and a posting text in [0, 100].
type ScoreFunc func(resume, posting string) float64

// Rank scores every posting against the résumé and orders them by score, highest first.
// Postings with equal scores keep their input order. A nil score uses nlp.Similarity.
func Rank(resumeText string, postings []Posting, score ScoreFunc) []Match {
	if score == nil {
		score = nlp.Similarity
	}
	out := make([]Match, 0, len(postings))
	for _, p := range postings {
		p = p.withDefaults()
		out = append(out, Match{
			Title:              p.Title,
			Company:            p.Company,
			Location:           p.Location,
			URL:                p.URL,
			DescriptionSnippet: Snippet(p.Description),
			MatchScore:         score(resumeText, p.Description+" "+p.Title),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchScore > out[j].MatchScore })
	return out
}

// Snippet returns the first SnippetLen characters of s followed by "..." when s is longer.
func Snippet(s string) string {
	r := []rune(s)
	if len(r) <= SnippetLen {
		return s
	}
	return string(r[:SnippetLen]) + "..."
}
