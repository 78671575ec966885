package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/medibook/internal/adapters/fixtures"
	"github.com/zatekoja/medibook/internal/application/services"
	"github.com/zatekoja/medibook/internal/domain/entities"
	apperrors "github.com/zatekoja/medibook/pkg/errors"
)

type checkout struct {
	appointments *services.AppointmentService
	payments     *services.PaymentService
	store        *fixtures.AppointmentStore
	receipts     *fixtures.PaymentStore
}

func newCheckout() *checkout {
	clock := fixedClock(2024, time.January, 10)
	store := fixtures.NewAppointmentStore(fixtures.Appointments())
	doctors := fixtures.NewDefaultDoctorStore()
	receipts := fixtures.NewPaymentStore()
	return &checkout{
		appointments: services.NewAppointmentService(store, doctors, nil, 30, 30).WithClock(clock),
		payments:     services.NewPaymentService(receipts, store, doctors, nil).WithClock(clock),
		store:        store,
		receipts:     receipts,
	}
}

func (c *checkout) book(t *testing.T) *entities.Appointment {
	t.Helper()
	appointment, err := c.appointments.Book(context.Background(), "1", services.BookingRequest{
		DoctorID: "1", Date: "2024-01-16", Time: "09:00", Symptoms: "Palpitations",
	})
	require.NoError(t, err)
	return appointment
}

func TestPaymentService_Pay(t *testing.T) {
	ctx := context.Background()

	t.Run("paying with an app confirms the booking", func(t *testing.T) {
		c := newCheckout()
		booked := c.book(t)

		receipt, err := c.payments.Pay(ctx, "1", booked.ID, entities.PaymentMethod{App: " GPay "})

		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusPaid, receipt.Payment.Status)
		assert.Equal(t, entities.UPIAppGooglePay, receipt.Payment.Method.App)
		assert.Equal(t, 150.0, receipt.Payment.Amount)
		assert.Equal(t, booked.Reference, receipt.Payment.Reference)
		assert.Equal(t, entities.AppointmentStatusConfirmed, receipt.Appointment.Status)

		stored, err := c.store.GetByID(ctx, booked.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.AppointmentStatusConfirmed, stored.Status)

		recorded, err := c.receipts.GetByAppointment(ctx, booked.ID)
		require.NoError(t, err)
		assert.Equal(t, receipt.Payment.ID, recorded.ID)
	})

	t.Run("a UPI ID alone is enough", func(t *testing.T) {
		c := newCheckout()
		booked := c.book(t)

		receipt, err := c.payments.Pay(ctx, "1", booked.ID, entities.PaymentMethod{UPIID: "john.doe@okaxis"})

		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusPaid, receipt.Payment.Status)
	})

	t.Run("skipping still confirms", func(t *testing.T) {
		c := newCheckout()
		booked := c.book(t)

		receipt, err := c.payments.Pay(ctx, "1", booked.ID, entities.PaymentMethod{Skip: true})

		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusSkipped, receipt.Payment.Status)
		assert.Equal(t, entities.AppointmentStatusConfirmed, receipt.Appointment.Status)
	})

	t.Run("second payment conflicts", func(t *testing.T) {
		c := newCheckout()
		booked := c.book(t)
		_, err := c.payments.Pay(ctx, "1", booked.ID, entities.PaymentMethod{App: entities.UPIAppPaytm})
		require.NoError(t, err)

		_, err = c.payments.Pay(ctx, "1", booked.ID, entities.PaymentMethod{App: entities.UPIAppPaytm})
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict), "got %v", err)
	})

	tests := []struct {
		name        string
		patient     string
		appointment string
		method      entities.PaymentMethod
		errType     apperrors.ErrorType
		message     string
	}{
		{
			name:    "not signed in",
			method:  entities.PaymentMethod{App: entities.UPIAppBHIM},
			errType: apperrors.ErrorTypeUnauthorized,
		},
		{
			name:    "nothing chosen",
			patient: "1",
			errType: apperrors.ErrorTypeValidation,
			message: "select a UPI app or enter a UPI ID",
		},
		{
			name:    "skip with an app",
			patient: "1",
			method:  entities.PaymentMethod{App: entities.UPIAppPhonePe, Skip: true},
			errType: apperrors.ErrorTypeValidation,
			message: "not both",
		},
		{
			name:    "unknown app",
			patient: "1",
			method:  entities.PaymentMethod{App: "venmo"},
			errType: apperrors.ErrorTypeValidation,
			message: "gpay, phonepe, paytm, bhim, other",
		},
		{
			name:    "malformed UPI ID",
			patient: "1",
			method:  entities.PaymentMethod{UPIID: "john.doe"},
			errType: apperrors.ErrorTypeValidation,
			message: "expected name@bank",
		},
		{
			name:        "unknown appointment",
			patient:     "1",
			appointment: "missing",
			method:      entities.PaymentMethod{Skip: true},
			errType:     apperrors.ErrorTypeNotFound,
		},
		{
			name:    "someone else's appointment",
			patient: "2",
			method:  entities.PaymentMethod{Skip: true},
			errType: apperrors.ErrorTypeNotFound,
		},
		{
			name:        "already confirmed",
			patient:     "1",
			appointment: "1",
			method:      entities.PaymentMethod{Skip: true},
			errType:     apperrors.ErrorTypeConflict,
			message:     "APT000001SEED is already confirmed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCheckout()
			booked := c.book(t)
			id := tt.appointment
			if id == "" {
				id = booked.ID
			}

			receipt, err := c.payments.Pay(ctx, tt.patient, id, tt.method)

			assert.Nil(t, receipt)
			assert.True(t, apperrors.IsType(err, tt.errType), "got %v", err)
			if tt.message != "" {
				assert.ErrorContains(t, err, tt.message)
			}

			stored, err := c.store.GetByID(ctx, booked.ID)
			require.NoError(t, err)
			assert.Equal(t, entities.AppointmentStatusPending, stored.Status)
		})
	}
}

func TestPaymentService_Pay_UpdateFailure(t *testing.T) {
	pending := &entities.Appointment{ID: "a1", Reference: "APT123456ABCD", DoctorID: "2", PatientID: "1", Status: entities.AppointmentStatusPending}

	repo := new(MockAppointmentRepository)
	repo.On("GetByID", mock.Anything, "a1").Return(pending, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*entities.Appointment")).Return(errors.New("disk full"))

	service := services.NewPaymentService(fixtures.NewPaymentStore(), repo, fixtures.NewDefaultDoctorStore(), nil)

	_, err := service.Pay(context.Background(), "1", "a1", entities.PaymentMethod{App: entities.UPIAppOther})

	assert.ErrorContains(t, err, "failed to confirm appointment: disk full")
	repo.AssertExpectations(t)
}
