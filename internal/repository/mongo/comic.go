package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"marvelapi/internal/model"
	"marvelapi/internal/repository"
)

const comicsCollection = "comics"

var (
	byID         = bson.D{{Key: "id", Value: 1}}
	byTitleIssue = bson.D{{Key: "title", Value: 1}, {Key: "issueNumber", Value: 1}}
)

// ComicMongo is a MongoDB implementation of repository.ComicRepository.
type ComicMongo struct {
	gw *Gateway
}

// NewComicMongo creates a new ComicMongo repository.
func NewComicMongo(gw *Gateway) *ComicMongo {
	return &ComicMongo{gw: gw}
}

var _ repository.ComicRepository = (*ComicMongo)(nil)

// FindByID fetches a single comic by its id.
func (r *ComicMongo) FindByID(ctx context.Context, id int) (*model.Comic, error) {
	var doc comicDocument
	if err := r.gw.FindOne(ctx, comicsCollection, bson.M{"id": id}, &doc); err != nil {
		return nil, err
	}
	c := doc.toModel()
	return &c, nil
}

// Search returns one window of matching comics ordered by title, then issue number.
func (r *ComicMongo) Search(ctx context.Context, filter bson.M, pq repository.PageQuery) ([]model.Comic, error) {
	return r.find(ctx, filter, FindOptions{Sort: byTitleIssue, Skip: int64(pq.Offset), Limit: int64(pq.Limit)})
}

// FindByIDs returns one page of the comics with the given ids ordered by id.
func (r *ComicMongo) FindByIDs(ctx context.Context, ids []int, pq repository.PageQuery) ([]model.Comic, error) {
	return r.find(ctx, idIn(ids), FindOptions{Sort: byID, Skip: int64(pq.Offset), Limit: int64(pq.Limit)})
}

// CountByIDs counts the stored comics with the given ids.
func (r *ComicMongo) CountByIDs(ctx context.Context, ids []int) (int, error) {
	n, err := r.gw.Count(ctx, comicsCollection, idIn(ids))
	return int(n), err
}

func (r *ComicMongo) find(ctx context.Context, filter bson.M, opts FindOptions) ([]model.Comic, error) {
	docs, err := findMany[comicDocument](ctx, r.gw, comicsCollection, filter, opts)
	if err != nil {
		return nil, err
	}
	out := make([]model.Comic, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

func idIn(ids []int) bson.M {
	return bson.M{"id": bson.M{"$in": ids}}
}
