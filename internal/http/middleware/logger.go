package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger writes one structured entry per request through the global zerolog logger.
func Logger() fiber.Handler {
	return requestLogger(func() zerolog.Logger { return log.Logger })
}

// LoggerWithWriter writes JSON request entries to w.
func LoggerWithWriter(w io.Writer) fiber.Handler {
	l := zerolog.New(w).With().Timestamp().Logger()
	return requestLogger(func() zerolog.Logger { return l })
}

// Fields: request_id, method, path, status, latency (milliseconds).
func requestLogger(logger func() zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// The global error handler has not written the response yet.
			status = fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		l := logger()
		ev := l.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = l.Error().Err(err)
		case status >= fiber.StatusBadRequest:
			ev = l.Warn()
		}

		ev.Str("request_id", RequestIDFromCtx(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Float64("latency", float64(time.Since(start).Microseconds())/1000).
			Msg("request")

		return err
	}
}
