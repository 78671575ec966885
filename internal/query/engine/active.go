package engine

import (
	"strings"

	"github.com/zatekoja/medibook/internal/domain/entities"
)

// CountActiveFilters counts the filter dimensions that differ from the open
// state. The search term is passed separately because the search box is held
// apart from the filter panel; criteria.SearchTerm is ignored.
func CountActiveFilters(criteria entities.FilterCriteria, searchTerm string) int {
	criteria = criteria.Normalize()

	count := 0
	if strings.TrimSpace(searchTerm) != "" {
		count++
	}
	if len(criteria.Specialties) > 0 {
		count++
	}
	if len(criteria.Locations) > 0 {
		count++
	}
	if criteria.MinFees > entities.DefaultMinFees || criteria.MaxFees < entities.DefaultMaxFees {
		count++
	}
	if criteria.MinRating > 0 {
		count++
	}
	if criteria.MinExperience > entities.DefaultMinExperience || criteria.MaxExperience < entities.DefaultMaxExperience {
		count++
	}
	if len(criteria.Availability) > 0 {
		count++
	}
	return count
}
