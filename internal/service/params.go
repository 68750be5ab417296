package service

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// SearchParams are the inputs of an advocate search.
type SearchParams struct {
	Search string
	Page   int
	Limit  int
}

// ParseSearchParams builds SearchParams from raw query values.
// Missing or malformed numbers fall back to their defaults; the result is normalized.
func ParseSearchParams(search, page, limit string) SearchParams {
	return SearchParams{
		Search: search,
		Page:   atoiOr(page, DefaultPage),
		Limit:  atoiOr(limit, DefaultLimit),
	}.Normalize()
}

// Normalize trims the search term and clamps page to >= 1 and limit to [1, MaxLimit].
func (p SearchParams) Normalize() SearchParams {
	p.Search = strings.TrimSpace(p.Search)
	if p.Page < 1 {
		p.Page = 1
	}
	switch {
	case p.Limit < 1:
		p.Limit = 1
	case p.Limit > MaxLimit:
		p.Limit = MaxLimit
	}
	return p
}

// Offset is the zero-based index of the first row of the page, saturating at math.MaxInt.
func (p SearchParams) Offset() int {
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

func atoiOr(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
