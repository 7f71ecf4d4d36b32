package analysis

import "errors"

var (
	// ErrEmptyText is returned when the résumé text is empty, including when extraction failed.
	ErrEmptyText = errors.New("could not extract text from resume")
	// ErrInvalidRole is returned for a role that is unknown or has no required skills.
	ErrInvalidRole = errors.New("invalid job role")
)

// NotFound is the placeholder for contact fields that were not detected.
const NotFound = "Not found"

// SkillGap is a required skill missing from the résumé with a link to learn it.
type SkillGap struct {
	Skill string `json:"skill"`
	Link  string `json:"link"`
}

// RoleRecommendation is the share of a role's skills found in the résumé.
type RoleRecommendation struct {
	Role       string  `json:"role"`
	Percentage float64 `json:"percentage"`
}

// ContactInfo holds the first email and phone number found in the raw text.
type ContactInfo struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// HasEmail reports whether an email address was detected.
func (c ContactInfo) HasEmail() bool { return c.Email != NotFound }

// Result is the full analysis of a résumé against a target role.
type Result struct {
	MatchPercentage float64              `json:"match_percentage"`
	MatchedSkills   []string             `json:"matched_skills"`
	MissingSkills   []SkillGap           `json:"missing_skills"`
	JobRole         string               `json:"job_role"`
	Recommendations []RoleRecommendation `json:"recommendations"`
	ContactInfo     ContactInfo          `json:"candidate_info"`
	Tips            []string             `json:"tips"`
	ResumeText      string               `json:"resume_text"`
}
