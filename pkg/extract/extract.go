// Package extract turns résumé documents into plain text.
// Extractors never fail: any parse error is logged and reported as empty text.
package extract

import (
	"bytes"
	"context"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/artem13815/resume-analyzer/pkg/logger"
)

// Extractor reads a document from disk and returns its text, or "" on failure.
type Extractor interface {
	Text(ctx context.Context, path string) string
}

// Func adapts a function to Extractor.
type Func func(ctx context.Context, path string) string

func (f Func) Text(ctx context.Context, path string) string { return f(ctx, path) }

// Registry maps lowercase file extensions (with dot) to extractors.
type Registry map[string]Extractor

// Default returns the registry for .pdf and .docx.
func Default() Registry {
	return Registry{
		".pdf":  Func(PDF),
		".docx": Func(DOCX),
	}
}

// ForFile returns the extractor for filename's extension.
func (r Registry) ForFile(filename string) (Extractor, bool) {
	e, ok := r[strings.ToLower(filepath.Ext(filename))]
	return e, ok
}

// Extensions lists the supported extensions in sorted order.
func (r Registry) Extensions() []string {
	return slices.Sorted(maps.Keys(r))
}

// PDF extracts the plain text of every page. The pdf reader panics on some
// malformed inputs; those are treated as failures too.
func PDF(_ context.Context, path string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn().Interface("panic", r).Str("path", path).Msg("error extracting pdf")
			text = ""
		}
	}()
	f, r, err := pdf.Open(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("error extracting pdf")
		return ""
	}
	defer f.Close()

	rs, err := r.GetPlainText()
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("error extracting pdf")
		return ""
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("error extracting pdf")
		return ""
	}
	return buf.String()
}

// DOCX extracts the paragraph text of a Word document, one paragraph per line.
func DOCX(_ context.Context, path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("error extracting docx")
		return ""
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("error extracting docx")
		return ""
	}
	defer doc.Close()
	return paragraphs(doc.Editable().GetContent())
}
