package analysis

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resume-analyzer/pkg/nlp"
	"github.com/artem13815/resume-analyzer/pkg/taxonomy"
)

func TestAnalyzeScenarioA(t *testing.T) {
	uc := NewService(taxonomy.Default())

	res, err := uc.Analyze(context.Background(), "I know python and sql for data work", "Software Engineer")
	require.NoError(t, err)

	assert.Equal(t, "Software Engineer", res.JobRole)
	assert.ElementsMatch(t, []string{"python", "sql"}, res.MatchedSkills)
	assert.Equal(t, 22.22, res.MatchPercentage)
	require.Len(t, res.MissingSkills, 7)
	for _, gap := range res.MissingSkills {
		assert.NotEmpty(t, gap.Link, gap.Skill)
	}
	assert.Equal(t, "I know python and sql for data work", res.ResumeText)

	assert.Equal(t, []string{TipTooShort, TipNoEducation, TipNoEmail, TipMissingSkills}, res.Tips)
	assert.Equal(t, NotFound, res.ContactInfo.Email)
	assert.Equal(t, NotFound, res.ContactInfo.Phone)
}

func TestAnalyzeErrors(t *testing.T) {
	uc := NewService(taxonomy.Default())

	_, err := uc.Analyze(context.Background(), "", "Software Engineer")
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = uc.Analyze(context.Background(), "python", "Astronaut")
	assert.ErrorIs(t, err, ErrInvalidRole)

	empty := NewService(taxonomy.New([]taxonomy.Role{{Name: "Nothing"}}, nil))
	_, err = empty.Analyze(context.Background(), "python", "Nothing")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestAnalyzeMatchedAndMissingPartitionRequired(t *testing.T) {
	tax := taxonomy.Default()
	uc := NewService(tax)
	texts := []string{
		"x",
		"python java sql git react flask algorithms",
		"aws docker kubernetes jenkins linux terraform",
		"html css javascript bootstrap",
	}
	for _, role := range tax.Roles() {
		for _, text := range texts {
			res, err := uc.Analyze(context.Background(), text, role.Name)
			require.NoError(t, err)

			all := append([]string{}, res.MatchedSkills...)
			for _, g := range res.MissingSkills {
				assert.NotContains(t, res.MatchedSkills, g.Skill)
				all = append(all, g.Skill)
			}
			assert.ElementsMatch(t, role.Skills, all)

			want := nlp.Round(100*float64(len(res.MatchedSkills))/float64(len(role.Skills)), 2)
			assert.Equal(t, want, res.MatchPercentage)
			assert.GreaterOrEqual(t, res.MatchPercentage, 0.0)
			assert.LessOrEqual(t, res.MatchPercentage, 100.0)
		}
	}
}

func TestMultiWordSkillsNeverMatch(t *testing.T) {
	role, _ := taxonomy.Default().Role("Software Engineer")
	matched, missing := MatchSkills(nlp.NewText("data structures and c++ expert").Tokens, role)
	assert.Empty(t, matched)
	assert.Contains(t, missing, "data structures")
	assert.Contains(t, missing, "c++")
}

func TestExtractContact(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		email string
		phone string
	}{
		{"none", "no contact here", NotFound, NotFound},
		{"email", "mail me: jane.doe+cv@mail.example.org or other@x.io", "jane.doe+cv@mail.example.org", NotFound},
		{"dashed", "call 555-123-4567 now", NotFound, "555-123-4567"},
		{"parens", "Phone: (555) 123 4567", NotFound, "(555) 123 4567"},
		{"intl", "+1 555.123.4567", NotFound, "+1 555.123.4567"},
		{"first only", "a@b.co 5551234567 c@d.co 5559876543", "a@b.co", "5551234567"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractContact(tt.text)
			assert.Equal(t, tt.email, got.Email)
			assert.Equal(t, tt.phone, got.Phone)
			assert.Equal(t, tt.email != NotFound, got.HasEmail())
		})
	}
}

func TestRecommend(t *testing.T) {
	tax := taxonomy.Default()
	recs := Recommend(nlp.NewText("aws docker kubernetes terraform linux jenkins").Tokens, tax)

	require.Len(t, recs, 3)
	assert.Equal(t, RoleRecommendation{Role: "DevOps Engineer", Percentage: 85.7}, recs[0])
	assert.Equal(t, RoleRecommendation{Role: "Cloud Architect", Percentage: 50}, recs[1])
	assert.True(t, sort.SliceIsSorted(recs, func(i, j int) bool { return recs[i].Percentage > recs[j].Percentage }))
}

func TestRecommendTiesKeepTaxonomyOrder(t *testing.T) {
	tax := taxonomy.Default()
	recs := Recommend(nlp.NewText("").Tokens, tax)
	require.Len(t, recs, 3)
	assert.Equal(t, []string{"Software Engineer", "Data Scientist", "Product Manager"},
		[]string{recs[0].Role, recs[1].Role, recs[2].Role})
	for _, r := range recs {
		assert.Equal(t, 0.0, r.Percentage)
	}
}

func TestRecommendSkipsEmptyRoles(t *testing.T) {
	tax := taxonomy.New([]taxonomy.Role{
		{Name: "Empty"},
		{Name: "Go", Skills: []string{"go"}},
	}, nil)
	recs := Recommend(nlp.NewText("go").Tokens, tax)
	assert.Equal(t, []RoleRecommendation{{Role: "Go", Percentage: 100}}, recs)
}

func TestTips(t *testing.T) {
	long := make([]string, 0, 160)
	for i := 0; i < 160; i++ {
		long = append(long, fmt.Sprintf("word%d", i))
	}
	rich := nlp.NewText(strings.Join(long, " ") + " education experience").Tokens

	assert.Equal(t, []string{TipLooksGood},
		Tips(TipInput{Tokens: rich, HasEmail: true, MissingCount: 1, RequiredCount: 4}))

	assert.Equal(t, []string{TipMissingSkills},
		Tips(TipInput{Tokens: rich, HasEmail: true, MissingCount: 3, RequiredCount: 5}))

	// Exactly half missing does not trigger.
	assert.Equal(t, []string{TipLooksGood},
		Tips(TipInput{Tokens: rich, HasEmail: true, MissingCount: 2, RequiredCount: 4}))

	assert.Equal(t, []string{TipTooShort, TipNoEducation, TipNoExperience, TipNoEmail},
		Tips(TipInput{Tokens: nlp.NewText("hello").Tokens}))

	assert.Equal(t, []string{TipTooShort},
		Tips(TipInput{Tokens: nlp.NewText("university work").Tokens, HasEmail: true}))
}
