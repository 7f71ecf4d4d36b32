package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-analyzer/api/http/presenter"
	"github.com/artem13815/resume-analyzer/pkg/jobs"
)

type JobsHandler struct {
	uc jobs.UseCase
}

func NewJobsHandler(uc jobs.UseCase) *JobsHandler { return &JobsHandler{uc: uc} }

type searchJobsRequest struct {
	JobRole    string `json:"job_role"`
	Location   string `json:"location"`
	ResumeText string `json:"resume_text"`
}

type searchJobsResponse struct {
	Jobs []jobs.Match `json:"jobs"`
}

// Search finds postings for a role and ranks them by similarity to the résumé text.
// @Summary Search and rank job postings
// @Tags    Jobs
// @Accept  json
// @Produce json
// @Param   input body searchJobsRequest true "Role, optional location and résumé text"
// @Success 200 {object} searchJobsResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /search_jobs [post]
func (h *JobsHandler) Search(c *fiber.Ctx) error {
	var req searchJobsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON")
	}
	matches, err := h.uc.Search(c.UserContext(), req.JobRole, req.Location, req.ResumeText)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, searchJobsResponse{Jobs: matches})
}
