package fixtures

import (
	"context"
	"fmt"
	"sync"

	"github.com/zatekoja/medibook/internal/domain/entities"
	apperrors "github.com/zatekoja/medibook/pkg/errors"
)

// MedicationStore implements the MedicationRepository interface
type MedicationStore struct {
	medications []*entities.Medication
}

// NewMedicationStore creates a store over the given prescriptions
func NewMedicationStore(medications []*entities.Medication) *MedicationStore {
	return &MedicationStore{medications: medications}
}

// ListByPatient returns a patient's medications in stored order
func (s *MedicationStore) ListByPatient(ctx context.Context, patientID string) ([]*entities.Medication, error) {
	out := make([]*entities.Medication, 0)
	for _, m := range s.medications {
		if m.PatientID == patientID {
			c := *m
			out = append(out, &c)
		}
	}
	return out, nil
}

// PatientStore implements the PatientRepository interface
type PatientStore struct {
	byID map[string]*entities.Patient
}

// NewPatientStore creates a store over the given patients
func NewPatientStore(patients []*entities.Patient) *PatientStore {
	byID := make(map[string]*entities.Patient, len(patients))
	for _, p := range patients {
		byID[p.ID] = p
	}
	return &PatientStore{byID: byID}
}

// GetByID retrieves a patient by ID
func (s *PatientStore) GetByID(ctx context.Context, id string) (*entities.Patient, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("patient not found: %s", id))
	}
	c := *p
	return &c, nil
}

// VerificationStore implements the VerificationRepository interface
type VerificationStore struct {
	mu       sync.RWMutex
	byDoctor map[string][]*entities.VerificationRequest
}

// NewVerificationStore creates an empty store
func NewVerificationStore() *VerificationStore {
	return &VerificationStore{byDoctor: make(map[string][]*entities.VerificationRequest)}
}

// Create stores a submitted request
func (s *VerificationStore) Create(ctx context.Context, request *entities.VerificationRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *request
	s.byDoctor[request.DoctorID] = append(s.byDoctor[request.DoctorID], &c)
	return nil
}

// GetLatestByDoctor returns the most recent request of a doctor
func (s *VerificationStore) GetLatestByDoctor(ctx context.Context, doctorID string) (*entities.VerificationRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	requests := s.byDoctor[doctorID]
	if len(requests) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no verification request for doctor: %s", doctorID))
	}
	c := *requests[len(requests)-1]
	return &c, nil
}

// ClinicStore implements the ClinicRepository interface
type ClinicStore struct {
	mu        sync.RWMutex
	addresses map[string]*entities.Address
}

// NewClinicStore creates a store seeded with the addresses of the given doctors
func NewClinicStore(doctors []*entities.Doctor) *ClinicStore {
	s := &ClinicStore{addresses: make(map[string]*entities.Address)}
	for _, d := range doctors {
		if d.Address != nil {
			c := *d.Address
			s.addresses[d.ID] = &c
		}
	}
	return s
}

// SaveAddress replaces the clinic address of a doctor
func (s *ClinicStore) SaveAddress(ctx context.Context, doctorID string, address *entities.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *address
	s.addresses[doctorID] = &c
	return nil
}

// GetAddress returns the clinic address of a doctor
func (s *ClinicStore) GetAddress(ctx context.Context, doctorID string) (*entities.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.addresses[doctorID]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no clinic address for doctor: %s", doctorID))
	}
	c := *a
	return &c, nil
}
