package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"marvelapi/internal/model"
)

type MockCharacterRepository struct {
	mock.Mock
}

func (m *MockCharacterRepository) FindByID(ctx context.Context, id int) (*model.Character, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Character), args.Error(1)
}

func (m *MockCharacterRepository) Search(ctx context.Context, filter bson.M, offset int) ([]model.Character, error) {
	args := m.Called(ctx, filter, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Character), args.Error(1)
}

func (m *MockCharacterRepository) FindByIDs(ctx context.Context, ids []int) ([]model.Character, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Character), args.Error(1)
}
