package repositories

import (
	"context"

	"github.com/zatekoja/medibook/internal/domain/entities"
)

// PatientRepository defines read access to patient profiles
type PatientRepository interface {
	// GetByID retrieves a patient by ID
	GetByID(ctx context.Context, id string) (*entities.Patient, error)
}

// VerificationRepository stores doctor verification requests
type VerificationRepository interface {
	// Create stores a submitted request
	Create(ctx context.Context, request *entities.VerificationRequest) error

	// GetLatestByDoctor returns the most recent request of a doctor
	GetLatestByDoctor(ctx context.Context, doctorID string) (*entities.VerificationRequest, error)
}

// ClinicRepository stores the clinic address doctors set from their profile
type ClinicRepository interface {
	// SaveAddress replaces the clinic address of a doctor
	SaveAddress(ctx context.Context, doctorID string, address *entities.Address) error

	// GetAddress returns the clinic address of a doctor
	GetAddress(ctx context.Context, doctorID string) (*entities.Address, error)
}
