package handlers

import (
	"errors"
	"net/http"

	"github.com/artem13815/resume-analyzer/pkg/analysis"
	"github.com/artem13815/resume-analyzer/pkg/jobs"
	"github.com/artem13815/resume-analyzer/pkg/upload"
	"github.com/artem13815/resume-analyzer/pkg/vacancy"
)

// errorResponse maps domain errors to a status code and the message shown to the user.
func errorResponse(err error) (int, string) {
	var verr vacancy.ErrValidation
	switch {
	case errors.Is(err, upload.ErrNoFile):
		return http.StatusBadRequest, "No file part"
	case errors.Is(err, upload.ErrEmptyFileName):
		return http.StatusBadRequest, "No selected file"
	case errors.Is(err, upload.ErrUnsupportedFormat):
		return http.StatusBadRequest, "Unsupported file format. Please upload PDF or DOCX."
	case errors.Is(err, upload.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "File too large."
	case errors.Is(err, analysis.ErrEmptyText):
		return http.StatusBadRequest, "Could not extract text from resume."
	case errors.Is(err, analysis.ErrInvalidRole):
		return http.StatusBadRequest, "Invalid job role."
	case errors.Is(err, jobs.ErrMissingRole):
		return http.StatusBadRequest, "Job role is required"
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}
