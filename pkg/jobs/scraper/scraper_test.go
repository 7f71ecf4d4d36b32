package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><body>
<div class="job">
  <h2 class="job-title">Senior Go Engineer</h2>
  <span class="job-company">Acme</span>
  <span class="job-location">Berlin</span>
  <a href="/jobs/1">Apply</a>
  <p class="job-description">Build   services
     in Go.</p>
</div>
<div class="job"><span class="job-company">Only company</span></div>
<div class="job">
  <h2 class="job-title">Platform Engineer</h2>
  <a href="https://other.example/apply/2">Apply</a>
  <p class="job-description">Kubernetes.</p>
</div>
<div class="job"><h2 class="job-title">Third</h2></div>
</body></html>`

func TestFetch(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	b := New(srv.URL+"/search?q={role}&l={location}", 2, time.Second)
	postings, err := b.Fetch(context.Background(), "Go Engineer", "Berlin, DE")
	require.NoError(t, err)

	assert.Equal(t, "q=Go+Engineer&l=Berlin%2C+DE", gotQuery)
	require.Len(t, postings, 2)
	assert.Equal(t, "Senior Go Engineer", postings[0].Title)
	assert.Equal(t, "Acme", postings[0].Company)
	assert.Equal(t, "Berlin", postings[0].Location)
	assert.Equal(t, srv.URL+"/jobs/1", postings[0].URL)
	assert.Equal(t, "Build services in Go.", postings[0].Description)

	assert.Equal(t, "Platform Engineer", postings[1].Title)
	assert.Equal(t, "https://other.example/apply/2", postings[1].URL)
	assert.Empty(t, postings[1].Company)
}

func TestFetchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL+"/?q={role}", 0, 0).Fetch(context.Background(), "x", "")
	assert.Error(t, err)
}

func TestFetchInvalidURL(t *testing.T) {
	_, err := New("not a url/{role}", 0, 0).Fetch(context.Background(), "x", "")
	assert.Error(t, err)
}

func TestFetchEmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body>no jobs</body></html>"))
	}))
	defer srv.Close()

	postings, err := New(srv.URL, 0, 0).Fetch(context.Background(), "x", "")
	require.NoError(t, err)
	assert.Empty(t, postings)
}
