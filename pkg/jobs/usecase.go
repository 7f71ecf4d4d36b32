package jobs

import (
	"context"
	"strings"

	"github.com/artem13815/resume-analyzer/pkg/logger"
	"github.com/artem13815/resume-analyzer/pkg/nlp"
)

// UseCase finds postings for a role and ranks them against a résumé.
type UseCase interface {
	Search(ctx context.Context, role, location, resumeText string) ([]Match, error)
}

type service struct {
	live     Source
	fallback Source
	score    ScoreFunc
}

// Option configures the job search use case.
type Option func(*service)

// WithScore replaces the default TF-IDF similarity used to rank postings.
func WithScore(score ScoreFunc) Option {
	return func(s *service) { s.score = score }
}

// NewService returns the job search use case. live may be nil; the synthetic
// FallbackSource is used whenever live fails or finds nothing.
func NewService(live Source, opts ...Option) UseCase {
	s := &service{live: live, fallback: FallbackSource{}, score: nlp.Similarity}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Search(ctx context.Context, role, location, resumeText string) ([]Match, error) {
	if strings.TrimSpace(role) == "" {
		return nil, ErrMissingRole
	}
	logger.Info().Str("role", role).Str("location", location).Msg("searching jobs")

	var postings []Posting
	if s.live != nil {
		var err error
		postings, err = s.live.Fetch(ctx, role, location)
		if err != nil {
			logger.Warn().Err(err).Msg("live job search failed, falling back to sample data")
			postings = nil
		}
	}
	if len(postings) == 0 {
		logger.Info().Msg("using simulated job data")
		postings, _ = s.fallback.Fetch(ctx, role, location)
	}
	return Rank(resumeText, postings, s.score), nil
}
