// @title         resume-analyzer API
// @version       1.0
// @description   Scores résumés against job roles, suggests learning resources and ranks job postings by text similarity.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Authorization token. Accepts "Bearer <JWT>" or "<JWT>".
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/artem13815/resume-analyzer/docs"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/jackc/pgx/v5/pgxpool"

	// internal imports
	"github.com/artem13815/resume-analyzer/api/http"
	"github.com/artem13815/resume-analyzer/api/http/handlers"
	"github.com/artem13815/resume-analyzer/api/http/presenter"
	"github.com/artem13815/resume-analyzer/pkg/analysis"
	"github.com/artem13815/resume-analyzer/pkg/config"
	"github.com/artem13815/resume-analyzer/pkg/extract"
	"github.com/artem13815/resume-analyzer/pkg/health"
	"github.com/artem13815/resume-analyzer/pkg/health/checkers"
	"github.com/artem13815/resume-analyzer/pkg/jobs"
	"github.com/artem13815/resume-analyzer/pkg/jobs/scraper"
	"github.com/artem13815/resume-analyzer/pkg/logger"
	pgrepo "github.com/artem13815/resume-analyzer/pkg/repository/postgres"
	"github.com/artem13815/resume-analyzer/pkg/security/jwt"
	"github.com/artem13815/resume-analyzer/pkg/storage/postgres"
	"github.com/artem13815/resume-analyzer/pkg/taxonomy"
	"github.com/artem13815/resume-analyzer/pkg/upload"
	"github.com/artem13815/resume-analyzer/pkg/vacancy"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err := cfg.Validate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("invalid configuration")
	}

	tax, err := taxonomy.Load(cfg.TaxonomyFile)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("load taxonomy")
	}
	store, err := upload.NewStore(cfg.UploadDir, cfg.MaxUploadBytes)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("init upload store")
	}

	// Live job sources, tried in order before the synthetic fallback.
	var live jobs.Chain
	var pool *pgxpool.Pool
	var vacancyUC vacancy.UseCase
	if cfg.DatabaseURL != "" {
		pool, err = postgres.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("postgres connect")
		}
		defer pool.Close()

		postingRepo, err := pgrepo.NewPostingRepository(pool, cfg.JobBoardResults)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("init posting repo")
		}
		live = append(live, postingRepo)
		vacancyUC = vacancy.NewService(postingRepo)
	}
	if cfg.JobBoardURL != "" {
		live = append(live, scraper.New(cfg.JobBoardURL, cfg.JobBoardResults, cfg.JobBoardTimeout))
	}
	var source jobs.Source
	if len(live) > 0 {
		source = live
	}

	// Health service: compose checkers
	var pgChecker health.Checker
	if pool != nil {
		pgChecker = checkers.NewPostgresChecker(pool)
	}
	readiness := health.NewService(checkers.NewTaxonomyChecker(tax), pgChecker)

	routes := http.Routes{
		Health:   handlers.NewHealthHandler(readiness),
		Analysis: handlers.NewAnalysisHandler(analysis.NewService(tax), store, extract.Default()),
		Jobs:     handlers.NewJobsHandler(jobs.NewService(source)),
		Roles:    handlers.NewRolesHandler(tax),
	}
	if vacancyUC != nil {
		routes.Vacancies = handlers.NewVacancyHandler(vacancyUC)
	}

	// JWT auth middleware, enabled by JWT_SECRET
	var authMW, publishMW fiber.Handler
	if cfg.JWTSecret != "" {
		authMW = jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)
		publishMW = jwt.RequirePublisher()
	} else {
		logger.Warn().Msg("JWT_SECRET not set: API is unauthenticated and vacancy publishing is disabled")
	}

	app := fiber.New(fiber.Config{
		// Leave room for multipart framing so the handler reports oversized files itself.
		BodyLimit:    int(cfg.MaxUploadBytes) + 1<<20,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New(), http.RequestID(), http.AccessLog())

	// Register routes
	http.Register(app, routes, authMW, publishMW)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(ctx); err != nil {
			logger.Error().Err(err).Msg("shutdown")
		}
	}()

	// Start server
	logger.Info().
		Str("port", cfg.Port).
		Int("roles", len(tax.Names())).
		Int("live_sources", len(live)).
		Bool("auth", authMW != nil).
		Msg("HTTP server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error().Err(err).Msg("server stopped")
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return presenter.Error(c, code, err.Error())
}
