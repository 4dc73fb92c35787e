package service

import (
	"context"
	"fmt"

	"goa.design/clue/log"
	"golang.org/x/sync/errgroup"

	"marvelapi/internal/model"
	"marvelapi/internal/normalize"
	"marvelapi/internal/query"
	"marvelapi/internal/storage"
)

// GetCharacter loads the character, then resolves its comic page, its comic
// count and its artwork concurrently. Failures of those secondary reads are
// logged and leave the corresponding field empty.
func (s *queryService) GetCharacter(ctx context.Context, charID, page string) (*model.CharacterDetail, error) {
	id, err := parseID(charID)
	if err != nil {
		return nil, err
	}
	p := parsePage(page)

	c, err := s.chars.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(ctx, "character", id, err)
	}

	detail := &model.CharacterDetail{Page: p, Comics: []model.Comic{}}
	var g errgroup.Group
	g.Go(func() error {
		comics, err := s.resolveCharacterComics(ctx, c, (p-1)*PageSize, PageSize)
		if err != nil {
			log.Error(ctx, err, log.KV{K: "msg", V: "resolve character comics"}, log.KV{K: "character_id", V: id})
			return nil
		}
		detail.Comics = comics
		return nil
	})
	g.Go(func() error {
		total, err := s.countCharacterComics(ctx, c)
		if err != nil {
			log.Error(ctx, err, log.KV{K: "msg", V: "count character comics"}, log.KV{K: "character_id", V: id})
			return nil
		}
		detail.ComicsTotal = total
		return nil
	})
	g.Go(func() error {
		detail.ImageURL = s.artworkURL(ctx, storage.CharacterArtworkKey(id))
		return nil
	})
	_ = g.Wait()

	normalize.Character(c)
	detail.Character = *c
	return detail, nil
}

func (s *queryService) GetCharacters(ctx context.Context, opts CharacterSearch) ([]model.Character, error) {
	filter, err := query.BuildFilter(query.Search{
		Query: opts.Query,
		Field: opts.Field,
		Equals: map[string]string{
			query.GenderField:   opts.Gender,
			query.UniverseField: opts.Reality,
		},
	}, query.CharacterFields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	log.Debug(ctx, log.KV{K: "msg", V: "search characters"}, log.KV{K: "filter", V: filter})
	res, err := s.chars.Search(ctx, filter, clampOffset(opts.Offset))
	if err != nil {
		return nil, storeErr(err)
	}
	log.Debug(ctx, log.KV{K: "msg", V: "search found"}, log.KV{K: "count", V: len(res)})
	return res, nil
}
