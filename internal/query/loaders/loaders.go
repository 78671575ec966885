// Package loaders batches doctor lookups made while rendering appointment lists.
package loaders

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/zatekoja/medibook/internal/domain/entities"
	"github.com/zatekoja/medibook/internal/domain/repositories"
	apperrors "github.com/zatekoja/medibook/pkg/errors"
)

type ctxKey string

const loadersKey ctxKey = "dataloaders"

// Loaders contains all the dataloaders for the application
type Loaders struct {
	DoctorLoader *dataloader.Loader[string, *entities.Doctor]
}

// NewLoaders creates a new instance of Loaders
func NewLoaders(doctorRepo repositories.DoctorRepository) *Loaders {
	return &Loaders{
		DoctorLoader: dataloader.NewBatchedLoader(
			doctorBatch(doctorRepo),
			dataloader.WithWait[string, *entities.Doctor](time.Millisecond),
		),
	}
}

func doctorBatch(doctorRepo repositories.DoctorRepository) dataloader.BatchFunc[string, *entities.Doctor] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[*entities.Doctor] {
		results := make([]*dataloader.Result[*entities.Doctor], len(keys))
		doctors, err := doctorRepo.GetByIDs(ctx, keys)

		doctorMap := make(map[string]*entities.Doctor, len(doctors))
		if err == nil {
			for _, d := range doctors {
				doctorMap[d.ID] = d
			}
		}

		for i, key := range keys {
			if err != nil {
				results[i] = &dataloader.Result[*entities.Doctor]{Error: err}
			} else if d, ok := doctorMap[key]; ok {
				results[i] = &dataloader.Result[*entities.Doctor]{Data: d}
			} else {
				results[i] = &dataloader.Result[*entities.Doctor]{Error: apperrors.NewNotFoundError("doctor not found: " + key)}
			}
		}
		return results
	}
}

// LoadDoctors resolves ids in one batch. Missing doctors come back as nil
// entries paired with their error.
func (l *Loaders) LoadDoctors(ctx context.Context, ids []string) ([]*entities.Doctor, []error) {
	return l.DoctorLoader.LoadMany(ctx, ids)()
}

// For returns the loaders for a given context, or nil when none are attached
func For(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}

// WithLoaders returns a new context with the loaders attached
func WithLoaders(ctx context.Context, loaders *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, loaders)
}
