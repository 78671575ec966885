package engine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/medibook/internal/domain/entities"
	"github.com/zatekoja/medibook/internal/query/engine"
)

func coords(lat, lng float64) *entities.Address {
	return &entities.Address{Coordinates: &entities.Coordinates{Latitude: lat, Longitude: lng}}
}

func testDoctors() []*entities.Doctor {
	return []*entities.Doctor{
		{
			ID: "1", Name: "Dr. Sarah Johnson", Speciality: "Cardiology", Experience: 12, Fees: 150,
			Location: "New York, NY", Rating: 4.8, AvailableSlots: []string{"09:00", "10:30"},
			Address: coords(40.7128, -74.0060),
		},
		{
			ID: "2", Name: "Dr. Michael Chen", Speciality: "Dermatology", Experience: 8, Fees: 120,
			Location: "Los Angeles, CA", Rating: 4.9, AvailableSlots: []string{"11:00", "13:00"},
			Address: coords(34.0522, -118.2437),
		},
		{
			ID: "3", Name: "Dr. Emily Rodriguez", Speciality: "Pediatrics", Experience: 15, Fees: 100,
			Location: "Chicago, IL", Rating: 4.7, AvailableSlots: []string{"08:30", "10:30"},
			Address: coords(41.8781, -87.6298),
		},
		{
			ID: "4", Name: "Dr. Robert Thompson", Speciality: "Cardiology", Experience: 20, Fees: 180,
			Location: "Houston, TX", Rating: 4.6, AvailableSlots: []string{"09:30"},
		},
	}
}

func ids(doctors []*entities.Doctor) []string {
	out := make([]string, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, d.ID)
	}
	return out
}

func TestFilterDoctors_DefaultCriteriaKeepsEverything(t *testing.T) {
	doctors := testDoctors()

	result := engine.FilterDoctors(doctors, entities.DefaultFilterCriteria())

	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(result))
}

func TestFilterDoctors_SearchTerm(t *testing.T) {
	doctors := testDoctors()

	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "matches name case-insensitively", term: "CHEN", want: []string{"2"}},
		{name: "matches speciality", term: "cardio", want: []string{"1", "4"}},
		{name: "matches location", term: "chicago", want: []string{"3"}},
		{name: "whitespace only is inactive", term: "   ", want: []string{"1", "2", "3", "4"}},
		{name: "no match", term: "oncology", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := entities.DefaultFilterCriteria()
			criteria.SearchTerm = tt.term

			assert.Equal(t, tt.want, ids(engine.FilterDoctors(doctors, criteria)))
		})
	}
}

func TestFilterDoctors_EveryResultContainsTerm(t *testing.T) {
	doctors := testDoctors()

	for _, term := range []string{"dr", "o", "ca", "Los", "ology"} {
		criteria := entities.DefaultFilterCriteria()
		criteria.SearchTerm = term

		needle := strings.ToLower(term)
		for _, d := range engine.FilterDoctors(doctors, criteria) {
			found := strings.Contains(strings.ToLower(d.Name), needle) ||
				strings.Contains(strings.ToLower(d.Speciality), needle) ||
				strings.Contains(strings.ToLower(d.Location), needle)
			assert.True(t, found, "term %q doctor %s", term, d.ID)
			assert.True(t, engine.Matches(d, criteria))
		}
	}
}

func TestFilterDoctors_EmptySpecialtySetIsNoOp(t *testing.T) {
	doctors := testDoctors()

	criteria := entities.DefaultFilterCriteria()
	criteria.MinRating = 4.7
	criteria.Specialties = nil
	withoutSet := engine.FilterDoctors(doctors, criteria)

	criteria.Specialties = []string{}
	withEmptySet := engine.FilterDoctors(doctors, criteria)

	assert.Equal(t, ids(withoutSet), ids(withEmptySet))
	assert.Equal(t, []string{"1", "2", "3"}, ids(withEmptySet))
}

func TestFilterDoctors_Predicates(t *testing.T) {
	doctors := testDoctors()

	tests := []struct {
		name   string
		modify func(c *entities.FilterCriteria)
		want   []string
	}{
		{
			name:   "speciality set",
			modify: func(c *entities.FilterCriteria) { c.Specialties = []string{"Cardiology", "Pediatrics"} },
			want:   []string{"1", "3", "4"},
		},
		{
			name:   "location exact match",
			modify: func(c *entities.FilterCriteria) { c.Locations = []string{"Houston, TX"} },
			want:   []string{"4"},
		},
		{
			name:   "location is not a substring match",
			modify: func(c *entities.FilterCriteria) { c.Locations = []string{"Houston"} },
			want:   []string{},
		},
		{
			name:   "fee bounds are inclusive",
			modify: func(c *entities.FilterCriteria) { c.MinFees, c.MaxFees = 120, 150 },
			want:   []string{"1", "2"},
		},
		{
			name:   "rating threshold",
			modify: func(c *entities.FilterCriteria) { c.MinRating = 4.8 },
			want:   []string{"1", "2"},
		},
		{
			name:   "experience bounds are inclusive",
			modify: func(c *entities.FilterCriteria) { c.MinExperience, c.MaxExperience = 12, 15 },
			want:   []string{"1", "3"},
		},
		{
			name:   "availability intersection",
			modify: func(c *entities.FilterCriteria) { c.Availability = []string{"10:30", "09:30"} },
			want:   []string{"1", "3", "4"},
		},
		{
			name: "predicates combine with AND",
			modify: func(c *entities.FilterCriteria) {
				c.Specialties = []string{"Cardiology"}
				c.Availability = []string{"09:00"}
			},
			want: []string{"1"},
		},
		{
			name:   "reversed fee range is swapped",
			modify: func(c *entities.FilterCriteria) { c.MinFees, c.MaxFees = 150, 100 },
			want:   []string{"1", "2", "3"},
		},
		{
			name:   "reversed experience range is swapped",
			modify: func(c *entities.FilterCriteria) { c.MinExperience, c.MaxExperience = 10, 5 },
			want:   []string{"2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := entities.DefaultFilterCriteria()
			tt.modify(&criteria)

			assert.Equal(t, tt.want, ids(engine.FilterDoctors(doctors, criteria)))
		})
	}
}

func TestFilterDoctors_FeeRangeExample(t *testing.T) {
	doctors := []*entities.Doctor{
		{ID: "a", Fees: 100, Rating: 4.5},
		{ID: "b", Fees: 200, Rating: 4.9},
		{ID: "c", Fees: 150, Rating: 4.0},
	}
	criteria := entities.DefaultFilterCriteria()
	criteria.MinFees = 120
	criteria.MaxFees = 500

	assert.Equal(t, []string{"b", "c"}, ids(engine.FilterDoctors(doctors, criteria)))
}

func TestFilterDoctors_DoesNotMutateInput(t *testing.T) {
	doctors := testDoctors()
	criteria := entities.DefaultFilterCriteria()
	criteria.MinFees = 170

	_ = engine.FilterDoctors(doctors, criteria)

	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(doctors))
}

func TestSortDoctors(t *testing.T) {
	doctors := testDoctors()

	tests := []struct {
		name      string
		key       entities.SortKey
		direction entities.SortDirection
		want      []string
	}{
		{name: "rating desc", key: entities.SortByRating, direction: entities.SortDescending, want: []string{"2", "1", "3", "4"}},
		{name: "fees asc", key: entities.SortByFees, direction: entities.SortAscending, want: []string{"3", "2", "1", "4"}},
		{name: "experience desc", key: entities.SortByExperience, direction: entities.SortDescending, want: []string{"4", "3", "1", "2"}},
		{name: "name asc", key: entities.SortByName, direction: entities.SortAscending, want: []string{"3", "2", "4", "1"}},
		{name: "location asc", key: entities.SortByLocation, direction: entities.SortAscending, want: []string{"3", "4", "2", "1"}},
		{name: "unknown key keeps input order", key: entities.SortKey("popularity"), direction: entities.SortAscending, want: []string{"1", "2", "3", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(engine.SortDoctors(doctors, tt.key, tt.direction)))
		})
	}
}

func TestSortDoctors_FeesExample(t *testing.T) {
	doctors := []*entities.Doctor{{ID: "a", Fees: 200}, {ID: "b", Fees: 100}, {ID: "c", Fees: 150}}

	sorted := engine.SortDoctors(doctors, entities.SortByFees, entities.SortAscending)

	require.Len(t, sorted, 3)
	assert.Equal(t, 100.0, sorted[0].Fees)
	assert.Equal(t, 150.0, sorted[1].Fees)
	assert.Equal(t, 200.0, sorted[2].Fees)
	assert.Equal(t, []string{"a", "b", "c"}, ids(doctors))
}

func TestSortDoctors_Idempotent(t *testing.T) {
	doctors := testDoctors()

	for _, key := range entities.SortKeys() {
		for _, dir := range []entities.SortDirection{entities.SortAscending, entities.SortDescending} {
			once := engine.SortDoctors(doctors, key, dir)
			twice := engine.SortDoctors(once, key, dir)
			assert.Equal(t, ids(once), ids(twice), "%s %s", key, dir)
		}
	}
}

func TestSortDoctors_ReverseDirectionWithoutTies(t *testing.T) {
	doctors := testDoctors()

	asc := ids(engine.SortDoctors(doctors, entities.SortByFees, entities.SortAscending))
	desc := ids(engine.SortDoctors(doctors, entities.SortByFees, entities.SortDescending))

	reversed := make([]string, len(desc))
	for i, id := range desc {
		reversed[len(desc)-1-i] = id
	}
	assert.Equal(t, asc, reversed)
}

func TestSortDoctors_StableOnTies(t *testing.T) {
	doctors := []*entities.Doctor{
		{ID: "a", Rating: 4.8},
		{ID: "b", Rating: 4.9},
		{ID: "c", Rating: 4.8},
		{ID: "d", Rating: 4.8},
	}

	assert.Equal(t, []string{"b", "a", "c", "d"}, ids(engine.SortDoctors(doctors, entities.SortByRating, entities.SortDescending)))
	assert.Equal(t, []string{"a", "c", "d", "b"}, ids(engine.SortDoctors(doctors, entities.SortByRating, entities.SortAscending)))
}

func TestSearch_FiltersThenSorts(t *testing.T) {
	criteria := entities.DefaultFilterCriteria()
	criteria.Specialties = []string{"Cardiology"}

	result := engine.Search(testDoctors(), criteria)

	assert.Equal(t, []string{"1", "4"}, ids(result))

	criteria.SortBy = entities.SortByFees
	criteria.SortOrder = entities.SortDescending
	assert.Equal(t, []string{"4", "1"}, ids(engine.Search(testDoctors(), criteria)))
}
