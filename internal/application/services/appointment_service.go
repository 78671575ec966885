package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zatekoja/medibook/internal/domain/entities"
	"github.com/zatekoja/medibook/internal/domain/repositories"
	"github.com/zatekoja/medibook/internal/infrastructure/observability"
	"github.com/zatekoja/medibook/internal/query/loaders"
	apperrors "github.com/zatekoja/medibook/pkg/errors"
)

// BookingRequest is the form a patient submits to book a doctor
type BookingRequest struct {
	DoctorID string `json:"doctor_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Symptoms string `json:"symptoms"`
	Notes    string `json:"notes,omitempty"`
}

// AppointmentService handles appointment booking logic
type AppointmentService struct {
	repo       repositories.AppointmentRepository
	doctorRepo repositories.DoctorRepository
	metrics    *observability.Metrics
	windowDays int
	recentDays int
	now        func() time.Time
}

// NewAppointmentService creates a new appointment service. Bookings are
// accepted from tomorrow up to windowDays ahead; Recent looks back recentDays.
func NewAppointmentService(
	repo repositories.AppointmentRepository,
	doctorRepo repositories.DoctorRepository,
	metrics *observability.Metrics,
	windowDays int,
	recentDays int,
) *AppointmentService {
	return &AppointmentService{
		repo:       repo,
		doctorRepo: doctorRepo,
		metrics:    metrics,
		windowDays: windowDays,
		recentDays: recentDays,
		now:        time.Now,
	}
}

// WithClock replaces the time source
func (s *AppointmentService) WithClock(now func() time.Time) *AppointmentService {
	s.now = now
	return s
}

// Book validates a booking request and stores it as a pending appointment
func (s *AppointmentService) Book(ctx context.Context, patientID string, req BookingRequest) (*entities.Appointment, error) {
	ctx, span := observability.StartSpan(ctx, "AppointmentService.Book")
	defer span.End()

	if strings.TrimSpace(patientID) == "" {
		return nil, apperrors.NewUnauthorizedError("sign in as a patient to book an appointment")
	}

	req.Date = strings.TrimSpace(req.Date)
	req.Time = strings.TrimSpace(req.Time)
	req.Symptoms = strings.TrimSpace(req.Symptoms)

	var missing []string
	if req.Date == "" {
		missing = append(missing, "date")
	}
	if req.Time == "" {
		missing = append(missing, "time")
	}
	if req.Symptoms == "" {
		missing = append(missing, "symptoms")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError("missing required fields: " + strings.Join(missing, ", "))
	}

	doctor, err := s.doctorRepo.GetByID(ctx, req.DoctorID)
	if err != nil {
		observability.RecordError(span, err)
		return nil, fmt.Errorf("failed to load doctor: %w", err)
	}

	day, err := time.Parse(entities.AppointmentDateLayout, req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", req.Date))
	}
	today := s.today()
	first, last := today.AddDate(0, 0, 1), today.AddDate(0, 0, s.windowDays)
	if day.Before(first) || day.After(last) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("date must be between %s and %s",
			first.Format(entities.AppointmentDateLayout), last.Format(entities.AppointmentDateLayout)))
	}

	if !doctor.HasSlot(req.Time) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("%s is not available at %s; choose one of %s",
			doctor.Name, req.Time, strings.Join(doctor.AvailableSlots, ", ")))
	}

	taken, err := s.repo.ListByDoctor(ctx, doctor.ID, repositories.AppointmentFilter{From: req.Date, To: req.Date})
	if err != nil {
		return nil, fmt.Errorf("failed to check doctor schedule: %w", err)
	}
	for _, a := range taken {
		if a.Time == req.Time && a.Status != entities.AppointmentStatusCancelled {
			return nil, apperrors.NewConflictError(fmt.Sprintf("%s is already booked on %s at %s", doctor.Name, req.Date, req.Time))
		}
	}

	now := s.now()
	appointment := &entities.Appointment{
		ID:        uuid.New().String(),
		Reference: bookingReference(now),
		DoctorID:  doctor.ID,
		PatientID: patientID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    entities.AppointmentStatusPending,
		Symptoms:  req.Symptoms,
		Notes:     strings.TrimSpace(req.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		observability.RecordError(span, err)
		return nil, fmt.Errorf("failed to save appointment: %w", err)
	}

	observability.RecordBookingMetric(ctx, s.metrics, string(appointment.Status))
	observability.LoggerFromContext(ctx).Info().
		Str("appointment_id", appointment.ID).
		Str("reference", appointment.Reference).
		Str("doctor_id", doctor.ID).
		Str("date", appointment.Date).
		Str("time", appointment.Time).
		Msg("appointment booked")

	return appointment, nil
}

// bookingReference renders "APT" + the last six digits of the millisecond
// clock + four random uppercase characters
func bookingReference(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:4])
	return fmt.Sprintf("APT%06d%s", now.UnixMilli()%1_000_000, suffix)
}

// ListForUser returns the appointments a user booked or is booked for, by date
func (s *AppointmentService) ListForUser(ctx context.Context, userID string) ([]*entities.Appointment, error) {
	asPatient, err := s.repo.ListByPatient(ctx, userID, repositories.AppointmentFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list patient appointments: %w", err)
	}
	asDoctor, err := s.repo.ListByDoctor(ctx, userID, repositories.AppointmentFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list doctor appointments: %w", err)
	}

	seen := make(map[string]struct{}, len(asPatient))
	out := make([]*entities.Appointment, 0, len(asPatient)+len(asDoctor))
	for _, a := range append(asPatient, asDoctor...) {
		if _, ok := seen[a.ID]; ok {
			continue
		}
		seen[a.ID] = struct{}{}
		out = append(out, a)
	}
	sortAppointments(out)
	return out, nil
}

// Upcoming returns the user's appointments dated today or later
func (s *AppointmentService) Upcoming(ctx context.Context, userID string) ([]*entities.Appointment, error) {
	all, err := s.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	from := s.today().Format(entities.AppointmentDateLayout)
	return filterAppointments(all, repositories.AppointmentFilter{From: from}), nil
}

// Recent returns the user's appointments from the last recentDays days up to today
func (s *AppointmentService) Recent(ctx context.Context, userID string) ([]*entities.Appointment, error) {
	all, err := s.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	today := s.today()
	return filterAppointments(all, repositories.AppointmentFilter{
		From: today.AddDate(0, 0, -s.recentDays).Format(entities.AppointmentDateLayout),
		To:   today.Format(entities.AppointmentDateLayout),
	}), nil
}

// UpdateStatus moves an appointment to a new status
func (s *AppointmentService) UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (*entities.Appointment, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}

	if !appointment.Status.CanTransitionTo(status) {
		return nil, apperrors.NewConflictError(fmt.Sprintf("cannot change appointment from %s to %s", appointment.Status, status))
	}

	appointment.Status = status
	appointment.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	observability.RecordBookingMetric(ctx, s.metrics, string(status))
	observability.LoggerFromContext(ctx).Info().
		Str("appointment_id", id).
		Str("status", string(status)).
		Msg("appointment status changed")

	return appointment, nil
}

// Cancel cancels a pending or confirmed appointment
func (s *AppointmentService) Cancel(ctx context.Context, id string) (*entities.Appointment, error) {
	return s.UpdateStatus(ctx, id, entities.AppointmentStatusCancelled)
}

// ListWithDoctors pairs each appointment with its doctor, resolving doctors in
// one batch. Appointments whose doctor is gone keep a nil Doctor.
func (s *AppointmentService) ListWithDoctors(ctx context.Context, appointments []*entities.Appointment) ([]*entities.AppointmentView, error) {
	l := loaders.For(ctx)
	if l == nil {
		l = loaders.NewLoaders(s.doctorRepo)
	}

	ids := make([]string, len(appointments))
	for i, a := range appointments {
		ids[i] = a.DoctorID
	}

	doctors, errs := l.LoadDoctors(ctx, ids)
	views := make([]*entities.AppointmentView, len(appointments))
	for i, a := range appointments {
		view := &entities.AppointmentView{Appointment: a}
		if i < len(errs) && errs[i] != nil {
			if !apperrors.IsNotFound(errs[i]) {
				return nil, fmt.Errorf("failed to load doctor %s: %w", a.DoctorID, errs[i])
			}
		} else if i < len(doctors) {
			view.Doctor = doctors[i]
		}
		views[i] = view
	}
	return views, nil
}

func (s *AppointmentService) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func filterAppointments(appointments []*entities.Appointment, filter repositories.AppointmentFilter) []*entities.Appointment {
	out := make([]*entities.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if filter.Match(a) {
			out = append(out, a)
		}
	}
	return out
}

func sortAppointments(appointments []*entities.Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		if appointments[i].Date != appointments[j].Date {
			return appointments[i].Date < appointments[j].Date
		}
		return appointments[i].Time < appointments[j].Time
	})
}
