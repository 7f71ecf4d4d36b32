package vacancy

import (
	"context"

	"github.com/google/uuid"

	"github.com/artem13815/resume-analyzer/pkg/jobs"
)

// Repository stores vacancies that the job search later serves as live postings.
type Repository interface {
	Create(ctx context.Context, p jobs.Posting) (uuid.UUID, error)
}
