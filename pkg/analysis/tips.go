package analysis

import "github.com/artem13815/resume-analyzer/pkg/nlp"

const (
	minTokens = 150

	TipTooShort      = "Your resume seems short. Consider adding more details about your projects and responsibilities."
	TipNoEducation   = "We couldn't find an 'Education' section. Ensure you list your degrees and certifications."
	TipNoExperience  = "Work experience is key! Make sure to label your work history clearly (e.g., 'Work Experience')."
	TipNoEmail       = "No email address detected. Recruiters need a way to contact you!"
	TipMissingSkills = "You are missing more than 50% of the required skills. Consider learning the basics of this role first."
	TipLooksGood     = "Great job! Your resume covers the basics well."
)

// TipInput is what the tip rules look at.
type TipInput struct {
	Tokens        nlp.TokenSet
	HasEmail      bool
	MissingCount  int
	RequiredCount int
}

// Tips evaluates the heuristic rules in order. If none fires, a single affirmative tip is returned.
func Tips(in TipInput) []string {
	var tips []string
	if in.Tokens.Len() < minTokens {
		tips = append(tips, TipTooShort)
	}
	if !in.Tokens.Has("education") && !in.Tokens.Has("university") {
		tips = append(tips, TipNoEducation)
	}
	if !in.Tokens.Has("experience") && !in.Tokens.Has("work") {
		tips = append(tips, TipNoExperience)
	}
	if !in.HasEmail {
		tips = append(tips, TipNoEmail)
	}
	if float64(in.MissingCount) > float64(in.RequiredCount)/2 {
		tips = append(tips, TipMissingSkills)
	}
	if len(tips) == 0 {
		tips = append(tips, TipLooksGood)
	}
	return tips
}
