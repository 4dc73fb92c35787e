package handler

import (
	"github.com/gofiber/fiber/v2"

	"marvelapi/internal/service"
)

// ListCharacters godoc
// @Summary Search characters
// @Description Case-insensitive substring search over character fields, ordered by name. Every match after offset is returned.
// @Tags characters
// @Produce json
// @Param query query string false "search text; empty matches every character"
// @Param field query string false "scope the search to one field (wiki.real_name also searches wiki.alias)"
// @Param gender query string false "exact gender"
// @Param reality query string false "exact universe"
// @Param offset query int false "number of matches to skip"
// @Success 200 {array} model.Character
// @Failure 400 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /characters [get]
func ListCharacters(svc service.QueryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.GetCharacters(c.UserContext(), service.CharacterSearch{
			Query:   c.Query("query"),
			Field:   c.Query("field"),
			Gender:  c.Query("gender"),
			Reality: c.Query("reality"),
			Offset:  c.QueryInt("offset", 0),
		})
		if err != nil {
			return writeServiceError(c, err, "character")
		}
		return c.JSON(res)
	}
}

// GetCharacter godoc
// @Summary Get a character
// @Description Normalized character with one page of the comics it appears in.
// @Tags characters
// @Produce json
// @Param id path string true "character id"
// @Param page query int false "1-based comic page" default(1)
// @Success 200 {object} model.CharacterDetail
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /characters/{id} [get]
func GetCharacter(svc service.QueryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.GetCharacter(c.UserContext(), c.Params("id"), c.Query("page"))
		if err != nil {
			return writeServiceError(c, err, "character")
		}
		return c.JSON(res)
	}
}
