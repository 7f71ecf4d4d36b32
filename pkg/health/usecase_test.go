package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resume-analyzer/pkg/health/checkers"
	"github.com/artem13815/resume-analyzer/pkg/taxonomy"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string { return s.name }
func (s stubChecker) Check(context.Context) error { return s.err }

func TestReady(t *testing.T) {
	ok := NewService(stubChecker{name: "a"}, nil, checkers.NewTaxonomyChecker(taxonomy.Default()))
	assert.NoError(t, ok.Ready(context.Background()))
	assert.Equal(t, []string{"a", "taxonomy"}, ok.Components())

	boom := errors.New("boom")
	bad := NewService(stubChecker{name: "a"}, stubChecker{name: "db", err: boom})
	err := bad.Ready(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "db: boom")
}

func TestTaxonomyChecker(t *testing.T) {
	empty := taxonomy.New([]taxonomy.Role{{Name: "Nothing"}}, nil)
	assert.Error(t, checkers.NewTaxonomyChecker(empty).Check(context.Background()))
}
