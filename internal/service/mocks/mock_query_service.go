package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"marvelapi/internal/model"
	"marvelapi/internal/service"
)

type MockQueryService struct {
	mock.Mock
}

func (m *MockQueryService) GetCharacter(ctx context.Context, charID, page string) (*model.CharacterDetail, error) {
	args := m.Called(ctx, charID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CharacterDetail), args.Error(1)
}

func (m *MockQueryService) GetCharacters(ctx context.Context, opts service.CharacterSearch) ([]model.Character, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Character), args.Error(1)
}

func (m *MockQueryService) GetComics(ctx context.Context, opts service.ComicSearch) ([]model.Comic, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comic), args.Error(1)
}

func (m *MockQueryService) GetComic(ctx context.Context, id string) (*model.ComicDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ComicDetail), args.Error(1)
}
