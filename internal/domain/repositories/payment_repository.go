package repositories

import (
	"context"

	"github.com/zatekoja/medibook/internal/domain/entities"
)

// PaymentRepository defines the interface for payment records
type PaymentRepository interface {
	// Create stores a payment. An appointment has at most one.
	Create(ctx context.Context, payment *entities.Payment) error

	// GetByAppointment returns the payment of an appointment
	GetByAppointment(ctx context.Context, appointmentID string) (*entities.Payment, error)
}
