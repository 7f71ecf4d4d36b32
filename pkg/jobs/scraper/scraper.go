// Package scraper is a live jobs.Source that reads postings from an HTML job board.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/artem13815/resume-analyzer/pkg/jobs"
)

const (
	DefaultTimeout   = 15 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeAnalyzer/1.0)"
	DefaultResults   = 5
)

// Selectors are the CSS selectors locating posting fields. Field selectors are
// evaluated relative to each Item.
type Selectors struct {
	Item        string
	Title       string
	Company     string
	Location    string
	Link        string
	Description string
}

// DefaultSelectors matches boards that mark postings up with class names.
func DefaultSelectors() Selectors {
	return Selectors{
		Item:        ".job",
		Title:       ".job-title",
		Company:     ".job-company",
		Location:    ".job-location",
		Link:        "a",
		Description: ".job-description",
	}
}

// Board scrapes a search results page. URLTemplate may contain {role} and
// {location} placeholders, which are query-escaped.
type Board struct {
	URLTemplate string
	Selectors   Selectors
	Results     int
	Client      *http.Client
	UserAgent   string
}

// New returns a board scraper with default selectors and limits.
func New(urlTemplate string, results int, timeout time.Duration) *Board {
	if results <= 0 {
		results = DefaultResults
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Board{
		URLTemplate: urlTemplate,
		Selectors:   DefaultSelectors(),
		Results:     results,
		Client:      &http.Client{Timeout: timeout},
		UserAgent:   DefaultUserAgent,
	}
}

// SearchURL renders the template for role and location.
func (b *Board) SearchURL(role, location string) string {
	r := strings.NewReplacer(
		"{role}", url.QueryEscape(role),
		"{location}", url.QueryEscape(location),
	)
	return r.Replace(b.URLTemplate)
}

// Fetch downloads the results page and extracts up to Results postings.
func (b *Board) Fetch(ctx context.Context, role, location string) ([]jobs.Posting, error) {
	target := b.SearchURL(role, location)
	base, err := url.Parse(target)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid job board url %q", target)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", b.UserAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := b.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", target, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: http %d", target, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", target, err)
	}
	return b.parse(doc, base), nil
}

func (b *Board) parse(doc *goquery.Document, base *url.URL) []jobs.Posting {
	var out []jobs.Posting
	sel := b.Selectors
	doc.Find(sel.Item).EachWithBreak(func(_ int, item *goquery.Selection) bool {
		p := jobs.Posting{
			Title:       text(item, sel.Title),
			Company:     text(item, sel.Company),
			Location:    text(item, sel.Location),
			Description: text(item, sel.Description),
		}
		if href, ok := item.Find(sel.Link).First().Attr("href"); ok {
			if u, err := base.Parse(strings.TrimSpace(href)); err == nil {
				p.URL = u.String()
			}
		}
		if p.Title == "" && p.Description == "" {
			return true
		}
		out = append(out, p)
		return len(out) < b.Results
	})
	return out
}

func text(s *goquery.Selection, selector string) string {
	if selector == "" {
		return ""
	}
	return strings.Join(strings.Fields(s.Find(selector).First().Text()), " ")
}

var _ jobs.Source = (*Board)(nil)
