package handler

import (
	"github.com/gofiber/fiber/v2"
	"goa.design/clue/health"

	"marvelapi/internal/service"
)

// RegisterRoutes attaches the read API and the health probes to app.
func RegisterRoutes(app *fiber.App, checker health.Checker, svc service.QueryService) {
	app.Get("/health", HealthCheck(checker))
	app.Get("/healthz", LivenessProbe())

	app.Get("/characters", ListCharacters(svc))
	app.Get("/characters/:id", GetCharacter(svc))
	app.Get("/comics", ListComics(svc))
	app.Get("/comics/:id", GetComic(svc))
}
