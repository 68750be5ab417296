package memory

import (
	"context"
	"slices"
	"strings"

	"advocates/internal/model"
	"advocates/internal/repository"
)

type entry struct {
	advocate   model.Advocate
	searchable string
}

// AdvocateMemory serves advocates from an in-memory snapshot taken at construction.
// It never mutates the snapshot, so it is safe for concurrent use.
type AdvocateMemory struct {
	entries []entry
}

// NewAdvocateMemory copies advocates into a sorted snapshot with precomputed search text.
func NewAdvocateMemory(advocates []model.Advocate) *AdvocateMemory {
	entries := make([]entry, 0, len(advocates))
	for _, a := range advocates {
		a.Specialties = slices.Clone(a.Specialties)
		entries = append(entries, entry{advocate: a, searchable: model.SearchableText(a)})
	}
	slices.SortStableFunc(entries, func(x, y entry) int {
		switch {
		case model.Less(x.advocate, y.advocate):
			return -1
		case model.Less(y.advocate, x.advocate):
			return 1
		default:
			return 0
		}
	})
	return &AdvocateMemory{entries: entries}
}

var _ repository.AdvocateRepository = (*AdvocateMemory)(nil)

// Search filters the snapshot by substring and returns the requested window.
func (r *AdvocateMemory) Search(ctx context.Context, f repository.AdvocateFilter, pq repository.PageQuery) (*repository.PageResult[model.Advocate], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matched := make([]model.Advocate, 0, len(r.entries))
	for _, e := range r.entries {
		if f.Search == "" || strings.Contains(e.searchable, f.Search) {
			matched = append(matched, e.advocate)
		}
	}

	items := make([]model.Advocate, 0)
	if pq.Offset >= 0 && pq.Offset < len(matched) && pq.Limit > 0 {
		end := len(matched)
		if pq.Limit < end-pq.Offset {
			end = pq.Offset + pq.Limit
		}
		for _, a := range matched[pq.Offset:end] {
			a.Specialties = slices.Clone(a.Specialties)
			items = append(items, a)
		}
	}

	return &repository.PageResult[model.Advocate]{
		Items: items,
		Total: len(matched),
	}, nil
}
