package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"goa.design/clue/log"
)

// Logger installs a clue logger on the request context and logs one line per
// request once the handler chain returns. The logger carries the request_id
// set by RequestID, so every log emitted downstream is correlated.
func Logger(opts ...log.LogOption) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		ctx := log.Context(c.UserContext(), opts...)
		ctx = log.With(ctx, log.KV{K: "request_id", V: rid})
		c.SetUserContext(ctx)

		err := c.Next()

		log.Print(ctx,
			log.KV{K: "method", V: c.Method()},
			log.KV{K: "path", V: c.Path()},
			log.KV{K: "status", V: c.Response().StatusCode()},
			log.KV{K: "latency", V: float64(time.Since(start).Microseconds()) / 1000},
		)

		return err
	}
}

// LoggerWithWriter is Logger with JSON lines written to w.
func LoggerWithWriter(w io.Writer, opts ...log.LogOption) fiber.Handler {
	return Logger(append([]log.LogOption{log.WithOutput(w), log.WithFormat(log.FormatJSON)}, opts...)...)
}
