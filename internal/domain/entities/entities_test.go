package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/zatekoja/medibook/pkg/errors"
)

func TestParseSortKey(t *testing.T) {
	key, err := ParseSortKey(" Fees ")
	require.NoError(t, err)
	assert.Equal(t, SortByFees, key)

	_, err = ParseSortKey("popularity")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestParseSortDirection(t *testing.T) {
	dir, err := ParseSortDirection("ASC")
	require.NoError(t, err)
	assert.Equal(t, SortAscending, dir)
	assert.Equal(t, SortDescending, dir.Toggle())
	assert.Equal(t, SortAscending, dir.Toggle().Toggle())

	_, err = ParseSortDirection("up")
	assert.Error(t, err)
}

func TestFilterCriteria_Normalize(t *testing.T) {
	c := DefaultFilterCriteria()
	c.MinFees, c.MaxFees = 300, 100
	c.MinExperience, c.MaxExperience = 25, 5

	n := c.Normalize()
	assert.Equal(t, 100.0, n.MinFees)
	assert.Equal(t, 300.0, n.MaxFees)
	assert.Equal(t, 5, n.MinExperience)
	assert.Equal(t, 25, n.MaxExperience)
	assert.Equal(t, 300.0, c.MinFees, "receiver is not modified")
}

func TestAppointmentStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to AppointmentStatus
		want     bool
	}{
		{AppointmentStatusPending, AppointmentStatusConfirmed, true},
		{AppointmentStatusPending, AppointmentStatusCancelled, true},
		{AppointmentStatusPending, AppointmentStatusCompleted, false},
		{AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{AppointmentStatusConfirmed, AppointmentStatusPending, false},
		{AppointmentStatusCancelled, AppointmentStatusConfirmed, false},
		{AppointmentStatusCompleted, AppointmentStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestDoctorHelpers(t *testing.T) {
	d := &Doctor{AvailableSlots: []string{"09:00", "10:30"}}
	assert.True(t, d.HasSlot("10:30"))
	assert.False(t, d.HasSlot("11:00"))

	_, ok := d.Coordinates()
	assert.False(t, ok)

	d.Address = &Address{
		Street: "456 Heart Center Boulevard", City: "New York", State: "NY", ZipCode: "10001",
		Country: "United States", Coordinates: &Coordinates{Latitude: 40.7589, Longitude: -73.9851},
	}
	c, ok := d.Coordinates()
	require.True(t, ok)
	assert.Equal(t, 40.7589, c.Latitude)
	assert.Equal(t, "456 Heart Center Boulevard, New York, NY 10001, United States", d.Address.FullAddress())
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleDoctor.IsValid())
	assert.True(t, RolePatient.IsValid())
	assert.False(t, Role("admin").IsValid())
}
