package engine

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/zatekoja/medibook/internal/domain/entities"
)

// SortDoctors returns a new slice ordered by key and direction. Equal keys keep
// their input order. An unknown key leaves the input order untouched.
func SortDoctors(doctors []*entities.Doctor, key entities.SortKey, direction entities.SortDirection) []*entities.Doctor {
	out := make([]*entities.Doctor, len(doctors))
	copy(out, doctors)

	cmp := comparator(key)
	if cmp == nil {
		return out
	}

	sign := 1
	if direction == entities.SortDescending {
		sign = -1
	}

	sort.SliceStable(out, func(i, j int) bool {
		return sign*cmp(out[i], out[j]) < 0
	})
	return out
}

type compareFunc func(a, b *entities.Doctor) int

func comparator(key entities.SortKey) compareFunc {
	switch key {
	case entities.SortByRating:
		return func(a, b *entities.Doctor) int { return compareFloat(a.Rating, b.Rating) }
	case entities.SortByFees:
		return func(a, b *entities.Doctor) int { return compareFloat(a.Fees, b.Fees) }
	case entities.SortByExperience:
		return func(a, b *entities.Doctor) int { return compareFloat(float64(a.Experience), float64(b.Experience)) }
	case entities.SortByName:
		// collators keep scratch buffers and are not safe to share
		c := collate.New(language.English)
		return func(a, b *entities.Doctor) int { return c.CompareString(a.Name, b.Name) }
	case entities.SortByLocation:
		c := collate.New(language.English)
		return func(a, b *entities.Doctor) int { return c.CompareString(a.Location, b.Location) }
	default:
		return nil
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
