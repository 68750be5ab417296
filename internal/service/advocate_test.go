package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"advocates/internal/model"
	"advocates/internal/repository"
	"advocates/internal/repository/memory"
	repoMocks "advocates/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdvocateService_Search(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		params     SearchParams
		setupMocks func(mRepo *repoMocks.MockAdvocateRepository)
		wantErr    error
		checkRes   func(t *testing.T, res *model.AdvocatePage)
	}{
		{
			name:   "happy path",
			params: SearchParams{Search: "  CARDIO ", Page: 2, Limit: 10},
			setupMocks: func(mRepo *repoMocks.MockAdvocateRepository) {
				mRepo.On("Search", mock.Anything,
					repository.AdvocateFilter{Search: "cardio"},
					repository.PageQuery{Limit: 10, Offset: 10},
				).Return(&repository.PageResult[model.Advocate]{
					Items: []model.Advocate{{ID: "11"}, {ID: "12"}},
					Total: 12,
				}, nil)
			},
			checkRes: func(t *testing.T, res *model.AdvocatePage) {
				assert.Len(t, res.Data, 2)
				assert.Equal(t, model.Pagination{
					Page: 2, Limit: 10, Total: 12, TotalPages: 2,
					HasNextPage: false, HasPreviousPage: true,
				}, res.Pagination)
			},
		},
		{
			name:   "unnormalized params are clamped",
			params: SearchParams{Page: 0, Limit: 1000},
			setupMocks: func(mRepo *repoMocks.MockAdvocateRepository) {
				mRepo.On("Search", mock.Anything,
					repository.AdvocateFilter{},
					repository.PageQuery{Limit: 100, Offset: 0},
				).Return(&repository.PageResult[model.Advocate]{}, nil)
			},
			checkRes: func(t *testing.T, res *model.AdvocatePage) {
				assert.NotNil(t, res.Data)
				assert.Empty(t, res.Data)
				assert.Equal(t, 100, res.Pagination.Limit)
				assert.Equal(t, 1, res.Pagination.Page)
				assert.Equal(t, 0, res.Pagination.TotalPages)
			},
		},
		{
			name:   "repository error",
			params: SearchParams{Page: 1, Limit: 10},
			setupMocks: func(mRepo *repoMocks.MockAdvocateRepository) {
				mRepo.On("Search", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockAdvocateRepository)
			svc := NewAdvocateService(mRepo)

			tt.setupMocks(mRepo)

			res, err := svc.Search(ctx, tt.params)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				if tt.checkRes != nil {
					tt.checkRes(t, res)
				}
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func directory(n int) []model.Advocate {
	out := make([]model.Advocate, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, model.Advocate{
			ID:                fmt.Sprintf("%03d", i),
			FirstName:         "Alex",
			LastName:          fmt.Sprintf("Member%03d", i),
			City:              "Denver",
			Degree:            "PhD",
			Specialties:       []string{"Sleep issues"},
			YearsOfExperience: 5,
			PhoneNumber:       "5550001111",
		})
	}
	return out
}

func TestAdvocateService_PageSizes(t *testing.T) {
	ctx := context.Background()

	for _, total := range []int{0, 1, 9, 10, 12, 37} {
		svc := NewAdvocateService(memory.NewAdvocateMemory(directory(total)))
		for _, limit := range []int{1, 5, 10, 25} {
			for page := 1; page <= 6; page++ {
				t.Run(fmt.Sprintf("total=%d/limit=%d/page=%d", total, limit, page), func(t *testing.T) {
					res, err := svc.Search(ctx, SearchParams{Page: page, Limit: limit})
					require.NoError(t, err)

					p := res.Pagination
					want := 0
					if page <= p.TotalPages {
						want = min(limit, total-(page-1)*limit)
					}
					assert.Len(t, res.Data, want)
					assert.Equal(t, total, p.Total)
					assert.Equal(t, page < p.TotalPages, p.HasNextPage)
					assert.Equal(t, page > 1, p.HasPreviousPage)
				})
			}
		}
	}
}

func TestAdvocateService_Examples(t *testing.T) {
	ctx := context.Background()
	advocates := directory(12)
	advocates[2].Specialties = []string{"Cardiology"}
	advocates[6].Specialties = []string{"Pediatric CARDIOvascular care"}
	svc := NewAdvocateService(memory.NewAdvocateMemory(advocates))

	t.Run("first of two pages", func(t *testing.T) {
		res, err := svc.Search(ctx, ParseSearchParams("", "1", "10"))
		require.NoError(t, err)
		assert.Len(t, res.Data, 10)
		assert.Equal(t, 2, res.Pagination.TotalPages)
		assert.True(t, res.Pagination.HasNextPage)
	})

	t.Run("second page", func(t *testing.T) {
		res, err := svc.Search(ctx, ParseSearchParams("", "2", "10"))
		require.NoError(t, err)
		assert.Len(t, res.Data, 2)
		assert.False(t, res.Pagination.HasNextPage)
	})

	t.Run("case-insensitive specialty search", func(t *testing.T) {
		res, err := svc.Search(ctx, ParseSearchParams("Cardio", "", ""))
		require.NoError(t, err)
		require.Len(t, res.Data, 2)
		assert.Equal(t, "003", res.Data[0].ID)
		assert.Equal(t, "007", res.Data[1].ID)
	})

	t.Run("limit clamped to 100", func(t *testing.T) {
		res, err := svc.Search(ctx, ParseSearchParams("", "", "1000"))
		require.NoError(t, err)
		assert.Equal(t, 100, res.Pagination.Limit)
		assert.Len(t, res.Data, 12)
	})

	t.Run("page beyond range", func(t *testing.T) {
		res, err := svc.Search(ctx, ParseSearchParams("", "99", ""))
		require.NoError(t, err)
		assert.NotNil(t, res.Data)
		assert.Empty(t, res.Data)
		assert.False(t, res.Pagination.HasNextPage)
	})
}
