package repositories

import (
	"context"

	"github.com/zatekoja/medibook/internal/domain/entities"
)

// AppointmentRepository defines the interface for appointment data operations
type AppointmentRepository interface {
	// Create stores a new appointment
	Create(ctx context.Context, appointment *entities.Appointment) error

	// GetByID retrieves an appointment by ID
	GetByID(ctx context.Context, id string) (*entities.Appointment, error)

	// Update replaces a stored appointment
	Update(ctx context.Context, appointment *entities.Appointment) error

	// ListByPatient retrieves appointments booked by a patient
	ListByPatient(ctx context.Context, patientID string, filter AppointmentFilter) ([]*entities.Appointment, error)

	// ListByDoctor retrieves appointments booked with a doctor
	ListByDoctor(ctx context.Context, doctorID string, filter AppointmentFilter) ([]*entities.Appointment, error)
}

// AppointmentFilter narrows appointment listings. Zero values match everything.
type AppointmentFilter struct {
	Status entities.AppointmentStatus
	// From and To are inclusive YYYY-MM-DD bounds
	From string
	To   string
}

// Match reports whether the appointment passes the filter
func (f AppointmentFilter) Match(a *entities.Appointment) bool {
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	// the date layout sorts lexically
	if f.From != "" && a.Date < f.From {
		return false
	}
	if f.To != "" && a.Date > f.To {
		return false
	}
	return true
}
