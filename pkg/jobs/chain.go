package jobs

import (
	"context"

	"github.com/artem13815/resume-analyzer/pkg/logger"
)

// Chain tries sources in order and returns the postings of the first one that yields any.
// Source errors are logged and skipped. An empty chain yields nothing.
type Chain []Source

func (c Chain) Fetch(ctx context.Context, role, location string) ([]Posting, error) {
	for _, src := range c {
		postings, err := src.Fetch(ctx, role, location)
		if err != nil {
			logger.Warn().Err(err).Str("role", role).Str("location", location).Msg("job source failed")
			continue
		}
		if len(postings) > 0 {
			return postings, nil
		}
	}
	return nil, nil
}
