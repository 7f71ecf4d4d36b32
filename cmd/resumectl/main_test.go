package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resume-analyzer/pkg/jobs"
	"github.com/artem13815/resume-analyzer/pkg/upload"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRolesCommand(t *testing.T) {
	out, err := run(t, "roles", "--skills=false")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "Software Engineer", lines[0])

	out, err = run(t, "roles", "--skills")
	require.NoError(t, err)
	assert.Contains(t, out, "DevOps Engineer: aws, docker, kubernetes, jenkins, linux, ci/cd, terraform")
}

func TestScoreCommand(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("python sql"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("python java"), 0o644))

	out, err := run(t, "score", a, b)
	require.NoError(t, err)
	assert.Equal(t, "33.61\n", out)

	out, err = run(t, "score", a, a)
	require.NoError(t, err)
	assert.Equal(t, "100.00\n", out)
}

func TestJobsCommandFallsBackToSyntheticPostings(t *testing.T) {
	t.Setenv("JOB_BOARD_URL", "")
	out, err := run(t, "jobs", "--role", "Data Scientist", "--location", "Remote")
	require.NoError(t, err)

	var got map[string][]jobs.Match
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got["jobs"], 3)
	for _, m := range got["jobs"] {
		assert.Equal(t, "Remote", m.Location)
	}
}

func TestAnalyzeCommandRejectsUnsupportedFile(t *testing.T) {
	_, err := run(t, "analyze", "--role", "Software Engineer", "cv.txt")
	require.ErrorIs(t, err, upload.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "supported: .docx, .pdf")
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := run(t, "token", "--secret", "", "ci")
	assert.Error(t, err)

	out, err := run(t, "token", "--secret", "s3cret", "--publish", "hr-team")
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(strings.TrimSpace(out), ".")))
}
