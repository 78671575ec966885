package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zatekoja/medibook/internal/application/services"
	"github.com/zatekoja/medibook/internal/domain/entities"
	apperrors "github.com/zatekoja/medibook/pkg/errors"
)

// bookingOutput is the JSON shape of a booking and its checkout
type bookingOutput struct {
	Appointment *entities.Appointment `json:"appointment"`
	Doctor      *entities.Doctor      `json:"doctor,omitempty"`
	Payment     *entities.Payment     `json:"payment,omitempty"`
}

func bookCmd(a *app) *cobra.Command {
	var req services.BookingRequest
	var method entities.PaymentMethod
	var upiApp string
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book an appointment with a doctor",
		Long: "Book an appointment with a doctor. The booking stays pending until it is paid\n" +
			"with --upi-app or --upi-id, or confirmed without payment using --skip-payment.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := a.sessions.RequireRole(ctx, entities.RolePatient)
			if err != nil {
				return err
			}

			appointment, err := a.appointments.Book(ctx, user.ID, req)
			if err != nil {
				return err
			}

			out := bookingOutput{Appointment: appointment}
			if anyChanged(cmd, "upi-app", "upi-id", "skip-payment") {
				method.App = entities.UPIApp(upiApp)
				receipt, err := a.payments.Pay(ctx, user.ID, appointment.ID, method)
				if err != nil {
					return err
				}
				out.Appointment, out.Payment = receipt.Appointment, receipt.Payment
			}

			views, err := a.appointments.ListWithDoctors(ctx, []*entities.Appointment{out.Appointment})
			if err != nil {
				return err
			}
			out.Doctor = views[0].Doctor
			if a.json {
				return a.printJSON(out)
			}

			doctor := appointment.DoctorID
			if out.Doctor != nil {
				doctor = out.Doctor.Name
			}
			a.printf("Booked %s with %s on %s at %s\n", appointment.Reference, doctor, appointment.Date, appointment.Time)
			if p := out.Payment; p != nil {
				if p.Status == entities.PaymentStatusSkipped {
					a.printf("Payment skipped\n")
				} else {
					a.printf("Paid %.2f via %s\n", p.Amount, paidWith(p.Method))
				}
			}
			a.printf("Status: %s\n", out.Appointment.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.DoctorID, "doctor", "", "Doctor id")
	cmd.Flags().StringVar(&req.Date, "date", "", "Date, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.Time, "time", "", "Time slot, e.g. 10:30")
	cmd.Flags().StringVar(&req.Symptoms, "symptoms", "", "Reason for the visit")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "Additional notes")
	cmd.Flags().StringVar(&upiApp, "upi-app", "", "Pay with gpay, phonepe, paytm, bhim or other")
	cmd.Flags().StringVar(&method.UPIID, "upi-id", "", "Pay from a UPI ID, e.g. name@bank")
	cmd.Flags().BoolVar(&method.Skip, "skip-payment", false, "Confirm without paying")
	_ = cmd.MarkFlagRequired("doctor")
	return cmd
}

func paidWith(m entities.PaymentMethod) string {
	switch {
	case m.App != "" && m.UPIID != "":
		return fmt.Sprintf("%s (%s)", m.App.DisplayName(), m.UPIID)
	case m.App != "":
		return m.App.DisplayName()
	default:
		return m.UPIID
	}
}

func appointmentsCmd(a *app) *cobra.Command {
	var upcoming, recent bool
	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "List your appointments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if upcoming && recent {
				return apperrors.NewValidationError("use either --upcoming or --recent")
			}

			ctx := cmd.Context()
			user, err := a.sessions.Current(ctx)
			if err != nil {
				return err
			}

			var list []*entities.Appointment
			switch {
			case upcoming:
				list, err = a.appointments.Upcoming(ctx, user.ID)
			case recent:
				list, err = a.appointments.Recent(ctx, user.ID)
			default:
				list, err = a.appointments.ListForUser(ctx, user.ID)
			}
			if err != nil {
				return err
			}

			views, err := a.appointments.ListWithDoctors(ctx, list)
			if err != nil {
				return err
			}
			if a.json {
				return a.printJSON(views)
			}
			if len(views) == 0 {
				a.printf("No appointments\n")
				return nil
			}
			return a.table(appointmentHeader, appointmentRows(views))
		},
	}
	cmd.Flags().BoolVar(&upcoming, "upcoming", false, "Only appointments from today on")
	cmd.Flags().BoolVar(&recent, "recent", false, "Only appointments from the last BOOKING_RECENT_DAYS days")
	return cmd
}

func cancelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel APPOINTMENT_ID",
		Short: "Cancel a pending or confirmed appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.sessions.Current(cmd.Context()); err != nil {
				return err
			}
			appointment, err := a.appointments.Cancel(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if a.json {
				return a.printJSON(appointment)
			}
			a.printf("Appointment %s cancelled\n", appointment.Reference)
			return nil
		},
	}
}

func statusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status APPOINTMENT_ID STATUS",
		Short: "Confirm or complete an appointment (doctors only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := a.sessions.RequireRole(ctx, entities.RoleDoctor); err != nil {
				return err
			}

			status := entities.AppointmentStatus(strings.ToLower(strings.TrimSpace(args[1])))
			switch status {
			case entities.AppointmentStatusPending, entities.AppointmentStatusConfirmed,
				entities.AppointmentStatusCancelled, entities.AppointmentStatusCompleted:
			default:
				return apperrors.NewValidationError(fmt.Sprintf("unknown status %q", args[1]))
			}

			appointment, err := a.appointments.UpdateStatus(ctx, args[0], status)
			if err != nil {
				return err
			}
			if a.json {
				return a.printJSON(appointment)
			}
			a.printf("Appointment %s is now %s\n", appointment.Reference, appointment.Status)
			return nil
		},
	}
}
