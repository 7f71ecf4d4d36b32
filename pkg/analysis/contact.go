package analysis

import "regexp"

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+\d{1,2}\s?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
)

// ExtractContact finds the first email and phone number in raw, un-normalized text.
func ExtractContact(raw string) ContactInfo {
	info := ContactInfo{Email: NotFound, Phone: NotFound}
	if m := emailPattern.FindString(raw); m != "" {
		info.Email = m
	}
	if m := phonePattern.FindString(raw); m != "" {
		info.Phone = m
	}
	return info
}
