package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-analyzer/api/http/presenter"
	"github.com/artem13815/resume-analyzer/pkg/jobs"
	"github.com/artem13815/resume-analyzer/pkg/vacancy"
)

type VacancyHandler struct {
	uc vacancy.UseCase
}

func NewVacancyHandler(uc vacancy.UseCase) *VacancyHandler { return &VacancyHandler{uc: uc} }

type createVacancyRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	URL         string `json:"job_url"`
	Description string `json:"description"`
}

// Create publishes a vacancy to the posting store used by job search.
// @Summary Publish a vacancy
// @Tags    Jobs
// @Accept  json
// @Produce json
// @Param   input body createVacancyRequest true "Vacancy"
// @Security BearerAuth
// @Success 201 {object} map[string]string
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /vacancies [post]
func (h *VacancyHandler) Create(c *fiber.Ctx) error {
	var req createVacancyRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON")
	}
	id, err := h.uc.Create(c.UserContext(), jobs.Posting{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		URL:         req.URL,
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, fiber.Map{"id": id.String()})
}
