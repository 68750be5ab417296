package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchableText(t *testing.T) {
	a := Advocate{
		FirstName:         "Jane",
		LastName:          "Smith",
		City:              "Los Angeles",
		Degree:            "PhD",
		Specialties:       []string{"Cardiology", "Sleep issues"},
		YearsOfExperience: 12,
	}

	assert.Equal(t, "jane smith los angeles phd cardiology sleep issues 12", SearchableText(a))
}

func TestSearchableText_NoSpecialties(t *testing.T) {
	a := Advocate{FirstName: "A", LastName: "B", City: "C", Degree: "MD"}

	assert.Equal(t, "a b c md 0", SearchableText(a))
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		total int
		want  Pagination
	}{
		{
			name: "first of two pages", page: 1, limit: 10, total: 12,
			want: Pagination{Page: 1, Limit: 10, Total: 12, TotalPages: 2, HasNextPage: true},
		},
		{
			name: "last page", page: 2, limit: 10, total: 12,
			want: Pagination{Page: 2, Limit: 10, Total: 12, TotalPages: 2, HasPreviousPage: true},
		},
		{
			name: "empty result", page: 1, limit: 10, total: 0,
			want: Pagination{Page: 1, Limit: 10},
		},
		{
			name: "page beyond range", page: 99, limit: 10, total: 12,
			want: Pagination{Page: 99, Limit: 10, Total: 12, TotalPages: 2, HasPreviousPage: true},
		},
		{
			name: "exact multiple", page: 1, limit: 5, total: 10,
			want: Pagination{Page: 1, Limit: 5, Total: 10, TotalPages: 2, HasNextPage: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.page, tt.limit, tt.total))
		})
	}
}

func TestLess(t *testing.T) {
	a := Advocate{ID: "1", FirstName: "Ann", LastName: "Lee"}
	b := Advocate{ID: "2", FirstName: "Bob", LastName: "Lee"}
	c := Advocate{ID: "3", FirstName: "Ann", LastName: "Zed"}

	assert.True(t, Less(a, b))
	assert.True(t, Less(b, c))
	assert.False(t, Less(c, a))
	assert.True(t, Less(Advocate{ID: "1"}, Advocate{ID: "2"}))
}
