package services

import (
	"context"
	"fmt"

	"github.com/zatekoja/medibook/internal/domain/entities"
	"github.com/zatekoja/medibook/internal/domain/repositories"
)

// MedicationService lists a patient's prescriptions
type MedicationService struct {
	repo repositories.MedicationRepository
}

// NewMedicationService creates a new medication service
func NewMedicationService(repo repositories.MedicationRepository) *MedicationService {
	return &MedicationService{repo: repo}
}

// ListForPatient returns every prescription of a patient
func (s *MedicationService) ListForPatient(ctx context.Context, patientID string) ([]*entities.Medication, error) {
	meds, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}
	return meds, nil
}

// Active returns the prescriptions still being taken
func (s *MedicationService) Active(ctx context.Context, patientID string) ([]*entities.Medication, error) {
	meds, err := s.ListForPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	out := make([]*entities.Medication, 0, len(meds))
	for _, m := range meds {
		if m.Status == entities.MedicationStatusActive {
			out = append(out, m)
		}
	}
	return out, nil
}

// Recent returns the first n prescriptions
func (s *MedicationService) Recent(ctx context.Context, patientID string, n int) ([]*entities.Medication, error) {
	meds, err := s.ListForPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if n >= 0 && len(meds) > n {
		meds = meds[:n]
	}
	return meds, nil
}
