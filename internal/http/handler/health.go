package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"goa.design/clue/health"
)

// HealthCheck godoc
// @Summary Dependency health
// @Description Pings the document store and the artwork store.
// @Tags health
// @Produce json
// @Success 200 {object} health.Health
// @Failure 503 {object} health.Health
// @Router /health [get]
func HealthCheck(checker health.Checker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		h, ok := checker.Check(ctx)
		status := fiber.StatusOK
		if !ok {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(h)
	}
}

// LivenessProbe answers 200 as long as the process serves requests.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
