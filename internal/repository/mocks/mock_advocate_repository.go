package mocks

import (
	"context"

	"advocates/internal/model"
	"advocates/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockAdvocateRepository struct {
	mock.Mock
}

func (m *MockAdvocateRepository) Search(ctx context.Context, f repository.AdvocateFilter, pq repository.PageQuery) (*repository.PageResult[model.Advocate], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Advocate]), args.Error(1)
}

type MockAdvocateSeeder struct {
	mock.Mock
}

func (m *MockAdvocateSeeder) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockAdvocateSeeder) InsertMany(ctx context.Context, advocates []model.Advocate) error {
	args := m.Called(ctx, advocates)
	return args.Error(0)
}
