package model

// Pagination describes where a page sits within a filtered result set.
type Pagination struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	Total           int  `json:"total"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// NewPagination derives page counts and navigation flags for a page of the given size.
// limit must be positive.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		Page:            page,
		Limit:           limit,
		Total:           total,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

// AdvocatePage is the body returned by the advocate list endpoint.
type AdvocatePage struct {
	Data       []Advocate `json:"data"`
	Pagination Pagination `json:"pagination"`
}
