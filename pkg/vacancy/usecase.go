package vacancy

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/artem13815/resume-analyzer/pkg/jobs"
)

// UseCase publishes vacancies to the posting store.
type UseCase interface {
	Create(ctx context.Context, p jobs.Posting) (uuid.UUID, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, p jobs.Posting) (uuid.UUID, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	if p.Title == "" {
		return uuid.Nil, ErrValidation("title is required")
	}
	if p.Description == "" {
		return uuid.Nil, ErrValidation("description is required")
	}
	return s.repo.Create(ctx, p)
}

// ErrValidation is a simple validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
