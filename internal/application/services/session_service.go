package services

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zatekoja/medibook/internal/domain/entities"
	"github.com/zatekoja/medibook/internal/domain/providers"
	"github.com/zatekoja/medibook/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/medibook/pkg/errors"
)

// Display names given to accounts that sign in without registering
const (
	DefaultDoctorName  = "Dr. John Smith"
	DefaultPatientName = "Jane Doe"
)

// SessionService provides mock sign-in. There are no passwords; the session
// is saved to and loaded from the store explicitly.
type SessionService struct {
	store   providers.SessionStore
	metrics *observability.Metrics
	known   func(email string, role entities.Role) (*entities.User, bool)
	now     func() time.Time
}

// WithKnownUsers lets sign-ins with a directory email take over that
// profile's id and name instead of a generated one
func (s *SessionService) WithKnownUsers(lookup func(email string, role entities.Role) (*entities.User, bool)) *SessionService {
	s.known = lookup
	return s
}

// NewSessionService creates a new session service
func NewSessionService(store providers.SessionStore, metrics *observability.Metrics) *SessionService {
	return &SessionService{store: store, metrics: metrics, now: time.Now}
}

// Login signs in with an email and role and saves the session
func (s *SessionService) Login(ctx context.Context, email string, role entities.Role) (*entities.Session, error) {
	name := DefaultPatientName
	if role == entities.RoleDoctor {
		name = DefaultDoctorName
	}
	return s.signIn(ctx, "login", name, email, role)
}

// Register creates an account with a display name and signs it in
func (s *SessionService) Register(ctx context.Context, name, email string, role entities.Role) (*entities.Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	return s.signIn(ctx, "register", name, email, role)
}

func (s *SessionService) signIn(ctx context.Context, action, name, email string, role entities.Role) (*entities.Session, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid email %q", email))
	}
	if !role.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown role %q", role))
	}

	user := &entities.User{
		ID:    uuid.New().String(),
		Name:  name,
		Email: email,
		Role:  role,
	}
	if s.known != nil {
		if profile, ok := s.known(email, role); ok {
			user.ID = profile.ID
			if action == "login" {
				user.Name = profile.Name
			}
		}
	}

	session := &entities.Session{
		User:          user,
		Authenticated: true,
		SavedAt:       s.now(),
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	observability.RecordSessionMetric(ctx, s.metrics, action, string(role))
	observability.LoggerFromContext(ctx).Info().
		Str("user_id", session.User.ID).
		Str("role", string(role)).
		Msg("signed in")

	return session, nil
}

// Logout clears the saved session
func (s *SessionService) Logout(ctx context.Context) error {
	current, err := s.store.Load(ctx)
	if err != nil && !apperrors.IsNotFound(err) {
		return fmt.Errorf("failed to load session: %w", err)
	}

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	if current != nil && current.User != nil {
		observability.RecordSessionMetric(ctx, s.metrics, "logout", string(current.User.Role))
	}
	return nil
}

// Current returns the signed-in user or an UNAUTHORIZED error
func (s *SessionService) Current(ctx context.Context) (*entities.User, error) {
	session, err := s.store.Load(ctx)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewUnauthorizedError("not signed in")
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if !session.Authenticated || session.User == nil {
		return nil, apperrors.NewUnauthorizedError("not signed in")
	}
	return session.User, nil
}

// RequireRole returns the signed-in user when it has the given role
func (s *SessionService) RequireRole(ctx context.Context, role entities.Role) (*entities.User, error) {
	user, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if user.Role != role {
		return nil, apperrors.NewUnauthorizedError(fmt.Sprintf("signed in as %s, this needs a %s account", user.Role, role))
	}
	return user, nil
}
