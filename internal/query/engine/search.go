package engine

import "github.com/zatekoja/medibook/internal/domain/entities"

// Search filters the collection and orders the result per the criteria
func Search(doctors []*entities.Doctor, criteria entities.FilterCriteria) []*entities.Doctor {
	return SortDoctors(FilterDoctors(doctors, criteria), criteria.SortBy, criteria.SortOrder)
}
