package fixtures

import (
	"context"
	"fmt"

	"github.com/zatekoja/medibook/internal/domain/entities"
	"github.com/zatekoja/medibook/internal/domain/repositories"
	apperrors "github.com/zatekoja/medibook/pkg/errors"
)

// DoctorStore implements the DoctorRepository interface over a fixed collection
type DoctorStore struct {
	doctors []*entities.Doctor
	byID    map[string]*entities.Doctor
}

// NewDoctorStore creates a store over the given doctors. Records are treated as
// read-only.
func NewDoctorStore(doctors []*entities.Doctor) *DoctorStore {
	byID := make(map[string]*entities.Doctor, len(doctors))
	for _, d := range doctors {
		byID[d.ID] = d
	}
	return &DoctorStore{doctors: doctors, byID: byID}
}

// NewDefaultDoctorStore creates a store over the built-in directory
func NewDefaultDoctorStore() repositories.DoctorRepository {
	return NewDoctorStore(Doctors())
}

// List returns the whole directory
func (s *DoctorStore) List(ctx context.Context) ([]*entities.Doctor, error) {
	out := make([]*entities.Doctor, len(s.doctors))
	copy(out, s.doctors)
	return out, nil
}

// GetByID retrieves a doctor by ID
func (s *DoctorStore) GetByID(ctx context.Context, id string) (*entities.Doctor, error) {
	d, ok := s.byID[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("doctor not found: %s", id))
	}
	return d, nil
}

// GetByIDs retrieves doctors by ID, skipping unknown ones
func (s *DoctorStore) GetByIDs(ctx context.Context, ids []string) ([]*entities.Doctor, error) {
	out := make([]*entities.Doctor, 0, len(ids))
	for _, id := range ids {
		if d, ok := s.byID[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}
