package model

import (
	"strconv"
	"strings"
)

// Advocate is a directory record for a single person.
// It carries JSON tags only; persistence details live in the repository layer.
type Advocate struct {
	ID                string   `json:"id"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	City              string   `json:"city"`
	Degree            string   `json:"degree"`
	Specialties       []string `json:"specialties"`
	YearsOfExperience int      `json:"yearsOfExperience"`
	PhoneNumber       string   `json:"phoneNumber"`
}

// SearchableText returns the lower-cased text a search term is matched against:
// names, city, degree, every specialty and the years of experience, space separated.
func SearchableText(a Advocate) string {
	parts := make([]string, 0, 5+len(a.Specialties))
	parts = append(parts, a.FirstName, a.LastName, a.City, a.Degree)
	parts = append(parts, a.Specialties...)
	parts = append(parts, strconv.Itoa(a.YearsOfExperience))
	return strings.ToLower(strings.Join(parts, " "))
}

// Less orders advocates by last name, first name, then id.
func Less(a, b Advocate) bool {
	if a.LastName != b.LastName {
		return a.LastName < b.LastName
	}
	if a.FirstName != b.FirstName {
		return a.FirstName < b.FirstName
	}
	return a.ID < b.ID
}
