package service

import (
	"context"
	"fmt"

	"goa.design/clue/log"
	"golang.org/x/sync/errgroup"

	"marvelapi/internal/model"
	"marvelapi/internal/normalize"
	"marvelapi/internal/query"
	"marvelapi/internal/repository"
	"marvelapi/internal/storage"
)

func (s *queryService) GetComics(ctx context.Context, opts ComicSearch) ([]model.Comic, error) {
	filter, err := query.BuildFilter(query.Search{Query: opts.Query, Field: opts.Field}, query.ComicFields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultComicLimit
	}

	log.Debug(ctx, log.KV{K: "msg", V: "search comics"}, log.KV{K: "filter", V: filter}, log.KV{K: "limit", V: limit})
	res, err := s.comics.Search(ctx, filter, repository.PageQuery{Offset: clampOffset(opts.Offset), Limit: limit})
	if err != nil {
		return nil, storeErr(err)
	}
	for i := range res {
		normalize.ComicListingTitle(&res[i])
	}
	log.Debug(ctx, log.KV{K: "msg", V: "search found"}, log.KV{K: "count", V: len(res)})
	return res, nil
}

// GetComic loads and normalizes the comic, then resolves its characters and
// its artwork concurrently.
func (s *queryService) GetComic(ctx context.Context, comicID string) (*model.ComicDetail, error) {
	id, err := parseID(comicID)
	if err != nil {
		return nil, err
	}

	c, err := s.comics.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(ctx, "comic", id, err)
	}
	normalize.Comic(c)

	detail := &model.ComicDetail{Characters: []model.Character{}}
	var g errgroup.Group
	g.Go(func() error {
		chars, err := s.resolveComicCharacters(ctx, c)
		if err != nil {
			log.Error(ctx, err, log.KV{K: "msg", V: "resolve comic characters"}, log.KV{K: "comic_id", V: id})
			return nil
		}
		detail.Characters = chars
		return nil
	})
	g.Go(func() error {
		detail.ImageURL = s.artworkURL(ctx, storage.ComicArtworkKey(id))
		return nil
	})
	_ = g.Wait()

	detail.Comic = *c
	return detail, nil
}
