package mocks

import (
	"context"

	"advocates/internal/model"
	"advocates/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockAdvocateService struct {
	mock.Mock
}

func (m *MockAdvocateService) Search(ctx context.Context, p service.SearchParams) (*model.AdvocatePage, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdvocatePage), args.Error(1)
}
