package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"marvelapi/internal/model"
	"marvelapi/internal/repository"
)

type MockComicRepository struct {
	mock.Mock
}

func (m *MockComicRepository) FindByID(ctx context.Context, id int) (*model.Comic, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comic), args.Error(1)
}

func (m *MockComicRepository) Search(ctx context.Context, filter bson.M, pq repository.PageQuery) ([]model.Comic, error) {
	args := m.Called(ctx, filter, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comic), args.Error(1)
}

func (m *MockComicRepository) FindByIDs(ctx context.Context, ids []int, pq repository.PageQuery) ([]model.Comic, error) {
	args := m.Called(ctx, ids, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comic), args.Error(1)
}

func (m *MockComicRepository) CountByIDs(ctx context.Context, ids []int) (int, error) {
	args := m.Called(ctx, ids)
	return args.Int(0), args.Error(1)
}
