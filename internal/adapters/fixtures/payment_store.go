package fixtures

import (
	"context"
	"fmt"
	"sync"

	"github.com/zatekoja/medibook/internal/domain/entities"
	apperrors "github.com/zatekoja/medibook/pkg/errors"
)

// PaymentStore implements the PaymentRepository interface in memory
type PaymentStore struct {
	mu            sync.RWMutex
	byAppointment map[string]*entities.Payment
}

// NewPaymentStore creates an empty store
func NewPaymentStore() *PaymentStore {
	return &PaymentStore{byAppointment: make(map[string]*entities.Payment)}
}

// Create stores a payment
func (s *PaymentStore) Create(ctx context.Context, payment *entities.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byAppointment[payment.AppointmentID]; exists {
		return apperrors.NewConflictError(fmt.Sprintf("appointment already paid: %s", payment.AppointmentID))
	}
	c := *payment
	s.byAppointment[payment.AppointmentID] = &c
	return nil
}

// GetByAppointment returns the payment of an appointment
func (s *PaymentStore) GetByAppointment(ctx context.Context, appointmentID string) (*entities.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byAppointment[appointmentID]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no payment for appointment: %s", appointmentID))
	}
	c := *p
	return &c, nil
}
