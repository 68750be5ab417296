package repository

import (
	"context"

	"advocates/internal/model"
)

// AdvocateRepository defines read access to the advocate directory.
// Implementations filter and slice; page arithmetic and defaults belong to the service layer.
type AdvocateRepository interface {
	// Search returns the page of advocates whose searchable text contains f.Search,
	// together with the number of advocates matching the filter overall.
	Search(ctx context.Context, f AdvocateFilter, pq PageQuery) (*PageResult[model.Advocate], error)
}

// AdvocateSeeder is implemented by persistent backends that are populated once at startup.
type AdvocateSeeder interface {
	// Count returns the number of stored advocates.
	Count(ctx context.Context) (int, error)

	// InsertMany stores all advocates atomically.
	InsertMany(ctx context.Context, advocates []model.Advocate) error
}

// AdvocateFilter narrows a search. Search is expected trimmed and lower-cased; empty matches all.
type AdvocateFilter struct {
	Search string
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
