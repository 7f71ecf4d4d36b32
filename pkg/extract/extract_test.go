package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := Default()
	_, ok := r.ForFile("cv.PDF")
	assert.True(t, ok)
	_, ok = r.ForFile("cv.docx")
	assert.True(t, ok)
	_, ok = r.ForFile("cv.doc")
	assert.False(t, ok)
	_, ok = r.ForFile("cv")
	assert.False(t, ok)
	assert.Equal(t, []string{".docx", ".pdf"}, r.Extensions())
}

func TestCorruptFilesYieldEmptyText(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "bad.pdf")
	docxPath := filepath.Join(dir, "bad.docx")
	require.NoError(t, os.WriteFile(pdfPath, []byte("not a pdf"), 0o600))
	require.NoError(t, os.WriteFile(docxPath, []byte("not a zip"), 0o600))

	ctx := context.Background()
	assert.Equal(t, "", PDF(ctx, pdfPath))
	assert.Equal(t, "", DOCX(ctx, docxPath))
	assert.Equal(t, "", PDF(ctx, filepath.Join(dir, "missing.pdf")))
	assert.Equal(t, "", DOCX(ctx, filepath.Join(dir, "missing.docx")))
}

func TestParagraphs(t *testing.T) {
	xml := `<w:body><w:p><w:r><w:t>John Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Skills:</w:t><w:tab/><w:t>Go &amp; SQL</w:t></w:r></w:p>` +
		`<w:p></w:p></w:body>`
	assert.Equal(t, "John Doe\nSkills:\tGo & SQL", paragraphs(xml))
}
