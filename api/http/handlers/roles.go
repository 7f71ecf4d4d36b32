package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-analyzer/api/http/presenter"
	"github.com/artem13815/resume-analyzer/pkg/taxonomy"
)

type RolesHandler struct {
	tax *taxonomy.Taxonomy
}

func NewRolesHandler(tax *taxonomy.Taxonomy) *RolesHandler { return &RolesHandler{tax: tax} }

// List returns the role names accepted by the analysis endpoint.
// @Summary List job roles
// @Tags    Analysis
// @Produce json
// @Success 200 {object} map[string][]string
// @Router  /roles [get]
func (h *RolesHandler) List(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{"job_roles": h.tax.Names()})
}
