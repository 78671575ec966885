package engine

import (
	"strings"

	"github.com/zatekoja/medibook/internal/domain/entities"
)

// FilterDoctors returns the doctors satisfying every active predicate of the
// criteria, in input order. Reversed ranges are swapped before evaluation.
func FilterDoctors(doctors []*entities.Doctor, criteria entities.FilterCriteria) []*entities.Doctor {
	criteria = criteria.Normalize()
	term := strings.ToLower(strings.TrimSpace(criteria.SearchTerm))

	out := make([]*entities.Doctor, 0, len(doctors))
	for _, d := range doctors {
		if d == nil {
			continue
		}
		if matches(d, criteria, term) {
			out = append(out, d)
		}
	}
	return out
}

// Matches reports whether a single doctor passes the criteria
func Matches(d *entities.Doctor, criteria entities.FilterCriteria) bool {
	criteria = criteria.Normalize()
	return matches(d, criteria, strings.ToLower(strings.TrimSpace(criteria.SearchTerm)))
}

func matches(d *entities.Doctor, c entities.FilterCriteria, term string) bool {
	if term != "" && !matchesTerm(d, term) {
		return false
	}
	if len(c.Specialties) > 0 && !contains(c.Specialties, d.Speciality) {
		return false
	}
	if len(c.Locations) > 0 && !contains(c.Locations, d.Location) {
		return false
	}
	if d.Fees < c.MinFees || d.Fees > c.MaxFees {
		return false
	}
	if d.Rating < c.MinRating {
		return false
	}
	if d.Experience < c.MinExperience || d.Experience > c.MaxExperience {
		return false
	}
	if len(c.Availability) > 0 && !hasAnySlot(d, c.Availability) {
		return false
	}
	return true
}

// term must already be lower-cased
func matchesTerm(d *entities.Doctor, term string) bool {
	return strings.Contains(strings.ToLower(d.Name), term) ||
		strings.Contains(strings.ToLower(d.Speciality), term) ||
		strings.Contains(strings.ToLower(d.Location), term)
}

func hasAnySlot(d *entities.Doctor, slots []string) bool {
	for _, s := range slots {
		if d.HasSlot(s) {
			return true
		}
	}
	return false
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}
