package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-analyzer/api/http/handlers"
)

// Routes groups the handlers served under /api/v1. Vacancies is optional and
// only mounted when a posting store is configured.
type Routes struct {
	Health    *handlers.HealthHandler
	Analysis  *handlers.AnalysisHandler
	Jobs      *handlers.JobsHandler
	Roles     *handlers.RolesHandler
	Vacancies *handlers.VacancyHandler
}

// Register wires all HTTP routes onto given Fiber app. auth guards everything except
// health probes; nil disables authentication. publish is applied on top of auth for
// vacancy publishing.
func Register(app *fiber.App, r Routes, auth, publish fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", r.Health.Health)
	v1.Get("/ready", r.Health.Ready)

	guarded := []fiber.Handler{}
	if auth != nil {
		guarded = append(guarded, auth)
	}
	with := func(h fiber.Handler, extra ...fiber.Handler) []fiber.Handler {
		chain := append(append([]fiber.Handler{}, guarded...), extra...)
		return append(chain, h)
	}

	v1.Get("/roles", with(r.Roles.List)...)
	v1.Post("/analyze", with(r.Analysis.Analyze)...)
	v1.Post("/search_jobs", with(r.Jobs.Search)...)

	// Publishing needs a token carrying the publish flag, so it stays off without auth.
	if r.Vacancies != nil && auth != nil {
		var extra []fiber.Handler
		if publish != nil {
			extra = append(extra, publish)
		}
		v1.Post("/vacancies", with(r.Vacancies.Create, extra...)...)
	}
}
