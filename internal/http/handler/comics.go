package handler

import (
	"github.com/gofiber/fiber/v2"

	"marvelapi/internal/service"
)

// ListComics godoc
// @Summary Search comics
// @Description Case-insensitive substring search over comic fields, ordered by title then issue number.
// @Description Titles have their parenthetical moved into the subtitle.
// @Tags comics
// @Produce json
// @Param query query string false "search text; empty matches every comic"
// @Param field query string false "scope the search to one field"
// @Param offset query int false "number of matches to skip"
// @Param limit query int false "maximum number of comics returned" default(50)
// @Success 200 {array} model.Comic
// @Failure 400 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /comics [get]
func ListComics(svc service.QueryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.GetComics(c.UserContext(), service.ComicSearch{
			Query:  c.Query("query"),
			Field:  c.Query("field"),
			Offset: c.QueryInt("offset", 0),
			Limit:  c.QueryInt("limit", 0),
		})
		if err != nil {
			return writeServiceError(c, err, "comic")
		}
		return c.JSON(res)
	}
}

// GetComic godoc
// @Summary Get a comic
// @Description Normalized comic with every character appearing in it.
// @Tags comics
// @Produce json
// @Param id path string true "comic id"
// @Success 200 {object} model.ComicDetail
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /comics/{id} [get]
func GetComic(svc service.QueryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.GetComic(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err, "comic")
		}
		return c.JSON(res)
	}
}
