package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zatekoja/medibook/internal/domain/entities"
	"github.com/zatekoja/medibook/internal/domain/repositories"
	"github.com/zatekoja/medibook/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/medibook/pkg/errors"
)

// upiIDPattern matches a virtual payment address such as john.doe@okbank
var upiIDPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{2,256}@[a-zA-Z]{2,64}$`)

// Receipt is the outcome of a checkout
type Receipt struct {
	Appointment *entities.Appointment `json:"appointment"`
	Payment     *entities.Payment     `json:"payment"`
}

// PaymentService settles booked appointments. No money moves: a valid UPI
// choice, or an explicit skip, is enough to confirm the booking.
type PaymentService struct {
	payments     repositories.PaymentRepository
	appointments repositories.AppointmentRepository
	doctors      repositories.DoctorRepository
	metrics      *observability.Metrics
	now          func() time.Time
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	payments repositories.PaymentRepository,
	appointments repositories.AppointmentRepository,
	doctors repositories.DoctorRepository,
	metrics *observability.Metrics,
) *PaymentService {
	return &PaymentService{
		payments:     payments,
		appointments: appointments,
		doctors:      doctors,
		metrics:      metrics,
		now:          time.Now,
	}
}

// WithClock replaces the time source
func (s *PaymentService) WithClock(now func() time.Time) *PaymentService {
	s.now = now
	return s
}

// Pay settles a pending appointment booked by patientID and confirms it
func (s *PaymentService) Pay(ctx context.Context, patientID, appointmentID string, method entities.PaymentMethod) (*Receipt, error) {
	ctx, span := observability.StartSpan(ctx, "PaymentService.Pay")
	defer span.End()

	if strings.TrimSpace(patientID) == "" {
		return nil, apperrors.NewUnauthorizedError("sign in as a patient to pay for an appointment")
	}

	method.App = entities.UPIApp(strings.ToLower(strings.TrimSpace(string(method.App))))
	method.UPIID = strings.TrimSpace(method.UPIID)
	if err := validatePaymentMethod(method); err != nil {
		return nil, err
	}

	appointment, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		observability.RecordError(span, err)
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}
	if appointment.PatientID != patientID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("appointment not found: %s", appointmentID))
	}
	if appointment.Status != entities.AppointmentStatusPending {
		return nil, apperrors.NewConflictError(fmt.Sprintf("appointment %s is already %s", appointment.Reference, appointment.Status))
	}

	doctor, err := s.doctors.GetByID(ctx, appointment.DoctorID)
	if err != nil {
		observability.RecordError(span, err)
		return nil, fmt.Errorf("failed to load doctor: %w", err)
	}

	now := s.now()
	payment := &entities.Payment{
		ID:            uuid.New().String(),
		AppointmentID: appointment.ID,
		Reference:     appointment.Reference,
		Method:        method,
		Amount:        doctor.Fees,
		Status:        entities.PaymentStatusPaid,
		CreatedAt:     now,
	}
	if method.Skip {
		payment.Status = entities.PaymentStatusSkipped
	}

	if err := s.payments.Create(ctx, payment); err != nil {
		observability.RecordError(span, err)
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	appointment.Status = entities.AppointmentStatusConfirmed
	appointment.UpdatedAt = now
	if err := s.appointments.Update(ctx, appointment); err != nil {
		observability.RecordError(span, err)
		return nil, fmt.Errorf("failed to confirm appointment: %w", err)
	}

	observability.RecordBookingMetric(ctx, s.metrics, string(appointment.Status))
	observability.LoggerFromContext(ctx).Info().
		Str("appointment_id", appointment.ID).
		Str("reference", appointment.Reference).
		Str("payment_status", string(payment.Status)).
		Float64("amount", payment.Amount).
		Msg("appointment paid")

	return &Receipt{Appointment: appointment, Payment: payment}, nil
}

func validatePaymentMethod(m entities.PaymentMethod) error {
	if m.Skip {
		if m.App != "" || m.UPIID != "" {
			return apperrors.NewValidationError("skip payment or choose a UPI app or ID, not both")
		}
		return nil
	}
	if m.App == "" && m.UPIID == "" {
		return apperrors.NewValidationError("select a UPI app or enter a UPI ID")
	}
	if m.App != "" && !m.App.IsValid() {
		names := make([]string, 0, len(entities.UPIApps()))
		for _, a := range entities.UPIApps() {
			names = append(names, string(a))
		}
		return apperrors.NewValidationError(fmt.Sprintf("unknown UPI app %q, expected one of %s", m.App, strings.Join(names, ", ")))
	}
	if m.UPIID != "" && !upiIDPattern.MatchString(m.UPIID) {
		return apperrors.NewValidationError(fmt.Sprintf("invalid UPI ID %q, expected name@bank", m.UPIID))
	}
	return nil
}
