package repositories

import (
	"context"

	"github.com/zatekoja/medibook/internal/domain/entities"
)

// DoctorRepository defines read access to the doctor directory
type DoctorRepository interface {
	// List returns the whole directory in its stored order
	List(ctx context.Context) ([]*entities.Doctor, error)

	// GetByID retrieves a doctor by ID
	GetByID(ctx context.Context, id string) (*entities.Doctor, error)

	// GetByIDs retrieves the doctors with the given IDs, skipping unknown ones
	GetByIDs(ctx context.Context, ids []string) ([]*entities.Doctor, error)
}
