package jobs

import (
	"context"
	"errors"
)

// ErrMissingRole is returned when a job search is requested without a role.
var ErrMissingRole = errors.New("job role is required")

// Posting is a job advertisement as delivered by a Source.
type Posting struct {
	Title       string
	Company     string
	Location    string
	URL         string
	Description string
}

// Match is a posting scored against a résumé.
type Match struct {
	Title              string  `json:"title"`
	Company            string  `json:"company"`
	Location           string  `json:"location"`
	URL                string  `json:"job_url"`
	DescriptionSnippet string  `json:"description_snippet"`
	MatchScore         float64 `json:"match_score"`
}

// Source acquires postings for a role and location. Implementations may return
// an empty slice when nothing was found.
type Source interface {
	Fetch(ctx context.Context, role, location string) ([]Posting, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, role, location string) ([]Posting, error)

func (f SourceFunc) Fetch(ctx context.Context, role, location string) ([]Posting, error) {
	return f(ctx, role, location)
}

const (
	unknownTitle    = "Unknown Role"
	unknownCompany  = "Unknown Company"
	unknownLocation = "Unknown Location"
	noURL           = "#"
)

// withDefaults fills fields a live source left blank.
func (p Posting) withDefaults() Posting {
	if p.Title == "" {
		p.Title = unknownTitle
	}
	if p.Company == "" {
		p.Company = unknownCompany
	}
	if p.Location == "" {
		p.Location = unknownLocation
	}
	if p.URL == "" {
		p.URL = noURL
	}
	return p
}
