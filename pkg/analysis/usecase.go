package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/artem13815/resume-analyzer/pkg/nlp"
	"github.com/artem13815/resume-analyzer/pkg/taxonomy"
)

// UseCase scores a résumé against a target role.
type UseCase interface {
	Analyze(ctx context.Context, text, role string) (Result, error)
}

type service struct {
	tax *taxonomy.Taxonomy
}

// NewService returns the default analysis use case over the given taxonomy.
func NewService(tax *taxonomy.Taxonomy) UseCase {
	return &service{tax: tax}
}

func (s *service) Analyze(_ context.Context, text, role string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrEmptyText
	}
	r, ok := s.tax.Role(role)
	if !ok || len(r.Skills) == 0 {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	norm := nlp.NewText(text)
	matched, missing := MatchSkills(norm.Tokens, r)

	gaps := make([]SkillGap, 0, len(missing))
	for _, skill := range missing {
		gaps = append(gaps, SkillGap{Skill: skill, Link: s.tax.ResourceFor(skill)})
	}

	contact := ExtractContact(text)
	return Result{
		MatchPercentage: nlp.Round(Percentage(len(matched), len(r.Skills)), 2),
		MatchedSkills:   matched,
		MissingSkills:   gaps,
		JobRole:         r.Name,
		Recommendations: Recommend(norm.Tokens, s.tax),
		ContactInfo:     contact,
		Tips: Tips(TipInput{
			Tokens:        norm.Tokens,
			HasEmail:      contact.HasEmail(),
			MissingCount:  len(missing),
			RequiredCount: len(r.Skills),
		}),
		ResumeText: text,
	}, nil
}
