package service

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"advocates/internal/model"
	"advocates/internal/repository"
)

var tracer = otel.Tracer("advocates/internal/service")

// AdvocateService defines the use cases of the advocate directory.
type AdvocateService interface {
	// Search filters advocates by a case-insensitive substring and returns one page of results
	// with pagination metadata. Params are normalized before use.
	Search(ctx context.Context, p SearchParams) (*model.AdvocatePage, error)
}

// advocateService is a concrete implementation of AdvocateService.
type advocateService struct {
	repo repository.AdvocateRepository
}

// NewAdvocateService constructs a new AdvocateService.
func NewAdvocateService(repo repository.AdvocateRepository) AdvocateService {
	return &advocateService{repo: repo}
}

func (s *advocateService) Search(ctx context.Context, p SearchParams) (*model.AdvocatePage, error) {
	p = p.Normalize()

	ctx, span := tracer.Start(ctx, "AdvocateService.Search")
	defer span.End()
	span.SetAttributes(
		attribute.String("advocates.search", p.Search),
		attribute.Int("advocates.page", p.Page),
		attribute.Int("advocates.limit", p.Limit),
	)

	res, err := s.repo.Search(ctx,
		repository.AdvocateFilter{Search: strings.ToLower(p.Search)},
		repository.PageQuery{Limit: p.Limit, Offset: p.Offset()},
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository search failed")
		return nil, err
	}
	span.SetAttributes(attribute.Int("advocates.total", res.Total))

	items := res.Items
	if items == nil {
		items = []model.Advocate{}
	}
	return &model.AdvocatePage{
		Data:       items,
		Pagination: model.NewPagination(p.Page, p.Limit, res.Total),
	}, nil
}
