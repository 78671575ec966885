package providers

import (
	"context"

	"github.com/zatekoja/medibook/internal/domain/entities"
)

// SessionStore persists the signed-in session between runs
type SessionStore interface {
	// Save writes the session
	Save(ctx context.Context, session *entities.Session) error

	// Load reads the session. A missing session yields a NOT_FOUND AppError.
	Load(ctx context.Context) (*entities.Session, error)

	// Clear removes the session
	Clear(ctx context.Context) error
}
