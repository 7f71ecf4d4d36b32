package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/artem13815/resume-analyzer/pkg/logger"
)

// RequestID tags every request with a uuid carried in X-Request-ID.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{Generator: uuid.NewString})
}

// AccessLog writes one structured line per request.
func AccessLog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := logger.Info()
		if status >= fiber.StatusInternalServerError {
			ev = logger.Error().Err(err)
		}
		ev.Str("request_id", requestIDOf(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http request")
		return err
	}
}

func requestIDOf(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
