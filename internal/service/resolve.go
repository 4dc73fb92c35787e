package service

import (
	"context"
	"path"
	"strconv"
	"strings"

	"marvelapi/internal/model"
	"marvelapi/internal/repository"
)

// resolveCharacterComics returns one window of the comics c appears in, ordered by id.
// It does not touch the store when c has no linkable comic.
func (s *queryService) resolveCharacterComics(ctx context.Context, c *model.Character, offset, limit int) ([]model.Comic, error) {
	ids := comicIDs(c)
	if len(ids) == 0 {
		return []model.Comic{}, nil
	}
	if limit <= 0 {
		limit = PageSize
	}
	comics, err := s.comics.FindByIDs(ctx, ids, repository.PageQuery{Offset: clampOffset(offset), Limit: limit})
	if err != nil {
		return nil, err
	}
	if len(comics) > limit {
		comics = comics[:limit]
	}
	return comics, nil
}

// countCharacterComics returns how many stored comics c links to.
func (s *queryService) countCharacterComics(ctx context.Context, c *model.Character) (int, error) {
	ids := comicIDs(c)
	if len(ids) == 0 {
		return 0, nil
	}
	return s.comics.CountByIDs(ctx, ids)
}

// resolveComicCharacters returns every character appearing in c, ordered by name.
// References whose locator does not end in a positive id are skipped.
func (s *queryService) resolveComicCharacters(ctx context.Context, c *model.Comic) ([]model.Character, error) {
	ids := characterIDs(c)
	if len(ids) == 0 {
		return []model.Character{}, nil
	}
	return s.chars.FindByIDs(ctx, ids)
}

func comicIDs(c *model.Character) []int {
	ids := make([]int, 0, len(c.Comics))
	for _, ref := range c.Comics {
		if ref.ID > 0 {
			ids = append(ids, ref.ID)
		}
	}
	return ids
}

func characterIDs(c *model.Comic) []int {
	ids := make([]int, 0, len(c.Characters))
	for _, ref := range c.Characters {
		if id, ok := locatorID(ref.ResourceURI); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// locatorID parses the final path segment of a resource locator.
func locatorID(uri string) (int, bool) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return 0, false
	}
	id, err := strconv.Atoi(path.Base(uri))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
