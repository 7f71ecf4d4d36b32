package jobs

import (
	"context"
	"fmt"
)

// FallbackSource produces three synthetic postings for a role. It never fails.
type FallbackSource struct{}

func (FallbackSource) Fetch(_ context.Context, role, location string) ([]Posting, error) {
	at := func(def string) string {
		if location != "" {
			return location
		}
		return def
	}
	return []Posting{
		{
			Title:       "Senior " + role,
			Company:     "Tech Innovations Inc.",
			Location:    at("Remote"),
			URL:         noURL,
			Description: fmt.Sprintf("We are looking for a skilled %s with experience in Python, Flask, and React. Join our dynamic team to build cutting-edge solutions.", role),
		},
		{
			Title:       "Junior " + role,
			Company:     "StartUp Hero",
			Location:    at("San Francisco, CA"),
			URL:         noURL,
			Description: fmt.Sprintf("Entry level %s position. Great opportunity to learn. Requirements: Basic knowledge of coding and enthusiastic attitude.", role),
		},
		{
			Title:       role + " Lead",
			Company:     "Global Corp",
			Location:    at("New York, NY"),
			URL:         noURL,
			Description: fmt.Sprintf("Lead our %s team. 5+ years experience required. Strong leadership skills and deep technical expertise needed.", role),
		},
	}, nil
}
