package entities

import (
	"fmt"
	"strings"

	apperrors "github.com/zatekoja/medibook/pkg/errors"
)

// SortKey selects the field used to order search results
type SortKey string

const (
	SortByRating     SortKey = "rating"
	SortByFees       SortKey = "fees"
	SortByExperience SortKey = "experience"
	SortByName       SortKey = "name"
	SortByLocation   SortKey = "location"
)

// SortKeys returns every supported sort key
func SortKeys() []SortKey {
	return []SortKey{SortByRating, SortByFees, SortByExperience, SortByName, SortByLocation}
}

// ParseSortKey converts user input into a SortKey
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range SortKeys() {
		if k == key {
			return k, nil
		}
	}
	return "", apperrors.NewValidationError(fmt.Sprintf("unknown sort key %q", s))
}

// SortDirection is the ordering applied on top of a SortKey
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// ParseSortDirection converts user input into a SortDirection
func ParseSortDirection(s string) (SortDirection, error) {
	switch SortDirection(strings.ToLower(strings.TrimSpace(s))) {
	case SortAscending:
		return SortAscending, nil
	case SortDescending:
		return SortDescending, nil
	}
	return "", apperrors.NewValidationError(fmt.Sprintf("unknown sort direction %q", s))
}

// Toggle flips the direction
func (d SortDirection) Toggle() SortDirection {
	if d == SortAscending {
		return SortDescending
	}
	return SortAscending
}

// Default bounds of the open filter state
const (
	DefaultMinFees       = 0.0
	DefaultMaxFees       = 500.0
	DefaultMinExperience = 0
	DefaultMaxExperience = 30
)

// FilterCriteria describes a doctor search. Empty sets mean "no restriction".
type FilterCriteria struct {
	SearchTerm    string        `json:"search_term"`
	Specialties   []string      `json:"specialties"`
	Locations     []string      `json:"locations"`
	MinFees       float64       `json:"min_fees"`
	MaxFees       float64       `json:"max_fees"`
	MinRating     float64       `json:"min_rating"`
	MinExperience int           `json:"min_experience"`
	MaxExperience int           `json:"max_experience"`
	Availability  []string      `json:"availability"`
	SortBy        SortKey       `json:"sort_by"`
	SortOrder     SortDirection `json:"sort_order"`
}

// DefaultFilterCriteria returns the open filter state: every record passes and
// results are ordered by rating, best first.
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		MinFees:       DefaultMinFees,
		MaxFees:       DefaultMaxFees,
		MinExperience: DefaultMinExperience,
		MaxExperience: DefaultMaxExperience,
		SortBy:        SortByRating,
		SortOrder:     SortDescending,
	}
}

// Normalize returns a copy whose ranges satisfy min <= max. Reversed bounds are swapped.
func (c FilterCriteria) Normalize() FilterCriteria {
	if c.MinFees > c.MaxFees {
		c.MinFees, c.MaxFees = c.MaxFees, c.MinFees
	}
	if c.MinExperience > c.MaxExperience {
		c.MinExperience, c.MaxExperience = c.MaxExperience, c.MinExperience
	}
	return c
}
