package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zatekoja/medibook/internal/domain/entities"
	"github.com/zatekoja/medibook/internal/domain/providers"
	"github.com/zatekoja/medibook/internal/domain/repositories"
	"github.com/zatekoja/medibook/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/medibook/pkg/errors"
)

// VerificationService accepts doctors' credential submissions
type VerificationService struct {
	repo repositories.VerificationRepository
	geo  providers.GeolocationProvider
	now  func() time.Time
}

// NewVerificationService creates a new verification service. geo may be nil.
func NewVerificationService(repo repositories.VerificationRepository, geo providers.GeolocationProvider) *VerificationService {
	return &VerificationService{repo: repo, geo: geo, now: time.Now}
}

// Submit validates and stores a verification request. Every document is
// marked pending review.
func (s *VerificationService) Submit(ctx context.Context, req *entities.VerificationRequest) (*entities.VerificationRequest, error) {
	if strings.TrimSpace(req.DoctorID) == "" {
		return nil, apperrors.NewValidationError("doctor id is required")
	}

	present := make(map[entities.DocumentType]bool, len(req.Documents))
	for _, d := range req.Documents {
		present[d.Type] = true
	}
	var missing []string
	for _, t := range entities.RequiredDocumentTypes() {
		if !present[t] {
			missing = append(missing, string(t))
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError("missing required documents: " + strings.Join(missing, ", "))
	}

	req.ClinicAddress = strings.TrimSpace(req.ClinicAddress)
	if req.ClinicAddress == "" {
		return nil, apperrors.NewValidationError("clinic address is required")
	}

	now := s.now()
	req.ID = uuid.New().String()
	req.SubmittedAt = now
	for _, d := range req.Documents {
		if d.ID == "" {
			d.ID = uuid.New().String()
		}
		d.Status = entities.DocumentStatusPending
		d.UploadedAt = now
	}

	if s.geo != nil {
		if req.Coordinates == nil {
			if c, err := s.geo.Geocode(ctx, req.ClinicAddress); err == nil {
				req.Coordinates = c
			}
		}
		if req.MapURL == "" {
			if req.Coordinates != nil {
				req.MapURL = s.geo.MapsURL(*req.Coordinates)
			} else {
				req.MapURL = s.geo.SearchMapsURL(req.ClinicAddress)
			}
		}
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to save verification request: %w", err)
	}

	observability.LoggerFromContext(ctx).Info().
		Str("doctor_id", req.DoctorID).
		Int("documents", len(req.Documents)).
		Msg("verification submitted")

	return req, nil
}

// Latest returns the most recent request of a doctor
func (s *VerificationService) Latest(ctx context.Context, doctorID string) (*entities.VerificationRequest, error) {
	return s.repo.GetLatestByDoctor(ctx, doctorID)
}
