package engine

import "github.com/zatekoja/medibook/internal/domain/entities"

// Specialties lists distinct specialities in first-seen order
func Specialties(doctors []*entities.Doctor) []string {
	return distinct(doctors, func(d *entities.Doctor) []string { return []string{d.Speciality} })
}

// Locations lists distinct locations in first-seen order
func Locations(doctors []*entities.Doctor) []string {
	return distinct(doctors, func(d *entities.Doctor) []string { return []string{d.Location} })
}

// Slots lists distinct available slots in first-seen order
func Slots(doctors []*entities.Doctor) []string {
	return distinct(doctors, func(d *entities.Doctor) []string { return d.AvailableSlots })
}

// SpecialtyCounts maps each speciality to the number of doctors practising it
func SpecialtyCounts(doctors []*entities.Doctor) map[string]int {
	counts := make(map[string]int)
	for _, d := range doctors {
		if d == nil {
			continue
		}
		counts[d.Speciality]++
	}
	return counts
}

func distinct(doctors []*entities.Doctor, values func(*entities.Doctor) []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, d := range doctors {
		if d == nil {
			continue
		}
		for _, v := range values(d) {
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
