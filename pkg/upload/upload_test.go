package upload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithScratchRemovesFile(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "uploads"), 1<<20)
	require.NoError(t, err)

	var seen string
	out, err := s.WithScratch("My CV.PDF", []byte("hello"), func(path string) string {
		seen = path
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		return string(data)
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
	assert.True(t, strings.HasSuffix(seen, ".pdf"))
	assert.NotContains(t, seen, "My CV")

	_, err = os.Stat(seen)
	assert.True(t, os.IsNotExist(err))
}

func TestWithScratchRemovesOnPanic(t *testing.T) {
	s, err := NewStore(t.TempDir(), 0)
	require.NoError(t, err)

	var seen string
	assert.Panics(t, func() {
		_, _ = s.WithScratch("cv.docx", []byte("x"), func(path string) string {
			seen = path
			panic("parser crashed")
		})
	})
	_, err = os.Stat(seen)
	assert.True(t, os.IsNotExist(err))
}

func TestWithScratchIgnoresCleanupError(t *testing.T) {
	s, err := NewStore(t.TempDir(), 0)
	require.NoError(t, err)

	out, err := s.WithScratch("cv.pdf", []byte("x"), func(path string) string {
		require.NoError(t, os.Remove(path))
		return "done"
	})
	require.NoError(t, err)
	assert.Equal(t, "done", out)
}

func TestCheckSize(t *testing.T) {
	s := &Store{MaxBytes: 10}
	assert.NoError(t, s.CheckSize(10))
	assert.ErrorIs(t, s.CheckSize(11), ErrFileTooLarge)
	assert.NoError(t, (&Store{}).CheckSize(1<<40))
}
