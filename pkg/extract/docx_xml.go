package extract

import (
	"html"
	"regexp"
	"strings"
)

var (
	reParaEnd = regexp.MustCompile(`</w:p>`)
	reTab     = regexp.MustCompile(`<w:tab/>`)
	reTag     = regexp.MustCompile(`<[^>]+>`)
)

// paragraphs converts WordprocessingML body XML into text with one line per paragraph.
func paragraphs(xml string) string {
	s := reParaEnd.ReplaceAllString(xml, "\n")
	s = reTab.ReplaceAllString(s, "\t")
	s = reTag.ReplaceAllString(s, "")
	s = html.UnescapeString(s)

	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, l := range lines {
		if l = strings.TrimRight(l, " \t\r"); l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}
