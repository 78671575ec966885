package fixtures

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/zatekoja/medibook/internal/domain/entities"
	"github.com/zatekoja/medibook/internal/domain/repositories"
	apperrors "github.com/zatekoja/medibook/pkg/errors"
)

// AppointmentStore implements the AppointmentRepository interface in memory
type AppointmentStore struct {
	mu           sync.RWMutex
	appointments map[string]*entities.Appointment
}

// NewAppointmentStore creates a store seeded with the given appointments
func NewAppointmentStore(seed []*entities.Appointment) *AppointmentStore {
	s := &AppointmentStore{appointments: make(map[string]*entities.Appointment, len(seed))}
	for _, a := range seed {
		c := *a
		s.appointments[a.ID] = &c
	}
	return s
}

// Create stores a new appointment
func (s *AppointmentStore) Create(ctx context.Context, appointment *entities.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.appointments[appointment.ID]; exists {
		return apperrors.NewConflictError(fmt.Sprintf("appointment already exists: %s", appointment.ID))
	}
	c := *appointment
	s.appointments[appointment.ID] = &c
	return nil
}

// GetByID retrieves an appointment by ID
func (s *AppointmentStore) GetByID(ctx context.Context, id string) (*entities.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.appointments[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("appointment not found: %s", id))
	}
	c := *a
	return &c, nil
}

// Update replaces a stored appointment
func (s *AppointmentStore) Update(ctx context.Context, appointment *entities.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.appointments[appointment.ID]; !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("appointment not found: %s", appointment.ID))
	}
	c := *appointment
	s.appointments[appointment.ID] = &c
	return nil
}

// ListByPatient retrieves appointments booked by a patient
func (s *AppointmentStore) ListByPatient(ctx context.Context, patientID string, filter repositories.AppointmentFilter) ([]*entities.Appointment, error) {
	return s.list(func(a *entities.Appointment) bool { return a.PatientID == patientID }, filter), nil
}

// ListByDoctor retrieves appointments booked with a doctor
func (s *AppointmentStore) ListByDoctor(ctx context.Context, doctorID string, filter repositories.AppointmentFilter) ([]*entities.Appointment, error) {
	return s.list(func(a *entities.Appointment) bool { return a.DoctorID == doctorID }, filter), nil
}

// list returns matches ordered by date then time
func (s *AppointmentStore) list(owner func(*entities.Appointment) bool, filter repositories.AppointmentFilter) []*entities.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entities.Appointment, 0)
	for _, a := range s.appointments {
		if owner(a) && filter.Match(a) {
			c := *a
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].ID < out[j].ID
	})
	return out
}
