package repositories

import (
	"context"

	"github.com/zatekoja/medibook/internal/domain/entities"
)

// MedicationRepository defines read access to prescriptions
type MedicationRepository interface {
	// ListByPatient returns a patient's medications, most recently prescribed first
	ListByPatient(ctx context.Context, patientID string) ([]*entities.Medication, error)
}
