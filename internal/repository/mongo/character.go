package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"marvelapi/internal/model"
	"marvelapi/internal/repository"
)

const charactersCollection = "characters"

var byName = bson.D{{Key: "name", Value: 1}}

// CharacterMongo is a MongoDB implementation of repository.CharacterRepository.
type CharacterMongo struct {
	gw *Gateway
}

// NewCharacterMongo creates a new CharacterMongo repository.
func NewCharacterMongo(gw *Gateway) *CharacterMongo {
	return &CharacterMongo{gw: gw}
}

var _ repository.CharacterRepository = (*CharacterMongo)(nil)

// FindByID fetches a single character by its id.
func (r *CharacterMongo) FindByID(ctx context.Context, id int) (*model.Character, error) {
	var doc characterDocument
	if err := r.gw.FindOne(ctx, charactersCollection, bson.M{"id": id}, &doc); err != nil {
		return nil, err
	}
	c := doc.toModel()
	return &c, nil
}

// Search returns matching characters ordered by name.
func (r *CharacterMongo) Search(ctx context.Context, filter bson.M, offset int) ([]model.Character, error) {
	return r.find(ctx, filter, FindOptions{Sort: byName, Skip: int64(offset)})
}

// FindByIDs returns the characters with the given ids ordered by name.
func (r *CharacterMongo) FindByIDs(ctx context.Context, ids []int) ([]model.Character, error) {
	return r.find(ctx, idIn(ids), FindOptions{Sort: byName})
}

func (r *CharacterMongo) find(ctx context.Context, filter bson.M, opts FindOptions) ([]model.Character, error) {
	docs, err := findMany[characterDocument](ctx, r.gw, charactersCollection, filter, opts)
	if err != nil {
		return nil, err
	}
	out := make([]model.Character, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}
