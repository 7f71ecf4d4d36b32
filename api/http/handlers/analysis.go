package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-analyzer/api/http/presenter"
	"github.com/artem13815/resume-analyzer/pkg/analysis"
	"github.com/artem13815/resume-analyzer/pkg/extract"
	"github.com/artem13815/resume-analyzer/pkg/logger"
	"github.com/artem13815/resume-analyzer/pkg/upload"
)

type AnalysisHandler struct {
	uc         analysis.UseCase
	store      *upload.Store
	extractors extract.Registry
}

func NewAnalysisHandler(uc analysis.UseCase, store *upload.Store, extractors extract.Registry) *AnalysisHandler {
	return &AnalysisHandler{uc: uc, store: store, extractors: extractors}
}

// Analyze extracts the text of an uploaded résumé and scores it against the requested role.
// @Summary Analyze a résumé against a job role
// @Description Accepts a PDF or DOCX résumé and returns matched and missing skills, fit percentage, alternative roles, contact details and tips.
// @Tags    Analysis
// @Accept  multipart/form-data
// @Produce json
// @Param   resume   formData file   true "Résumé (PDF or DOCX)"
// @Param   job_role formData string true "Target role name"
// @Success 200 {object} analysis.Result
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 413 {object} presenter.ErrorResponse
// @Router  /analyze [post]
func (h *AnalysisHandler) Analyze(c *fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil || fh == nil {
		// A file input left empty arrives as a part with filename="", which the
		// multipart reader files under form values rather than files.
		if form, ferr := c.MultipartForm(); ferr == nil {
			if _, ok := form.Value["resume"]; ok {
				return respondError(c, upload.ErrEmptyFileName)
			}
		}
		return respondError(c, upload.ErrNoFile)
	}
	if strings.TrimSpace(fh.Filename) == "" {
		return respondError(c, upload.ErrEmptyFileName)
	}
	role := c.FormValue("job_role")
	if role == "" {
		return presenter.Error(c, http.StatusBadRequest, "Invalid request")
	}
	extractor, ok := h.extractors.ForFile(fh.Filename)
	if !ok {
		return respondError(c, upload.ErrUnsupportedFormat)
	}
	if err := h.store.CheckSize(fh.Size); err != nil {
		return respondError(c, err)
	}

	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("failed to read file: %v", err))
	}

	ctx := c.UserContext()
	text, err := h.store.WithScratch(fh.Filename, data, func(path string) string {
		return extractor.Text(ctx, path)
	})
	if err != nil {
		return respondError(c, err)
	}

	result, err := h.uc.Analyze(ctx, text, role)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, result)
}

func respondError(c *fiber.Ctx, err error) error {
	status, msg := errorResponse(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}
	return presenter.Error(c, status, msg)
}
