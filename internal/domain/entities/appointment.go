package entities

import (
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// CanTransitionTo reports whether moving from s to next is allowed
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	switch s {
	case AppointmentStatusPending:
		return next == AppointmentStatusConfirmed || next == AppointmentStatusCancelled
	case AppointmentStatusConfirmed:
		return next == AppointmentStatusCompleted || next == AppointmentStatusCancelled
	}
	return false
}

// AppointmentDateLayout is the calendar date format used by bookings
const AppointmentDateLayout = "2006-01-02"

// Appointment represents a booked consultation
type Appointment struct {
	ID        string            `json:"id"`
	Reference string            `json:"reference"`
	DoctorID  string            `json:"doctor_id"`
	PatientID string            `json:"patient_id"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Status    AppointmentStatus `json:"status"`
	Symptoms  string            `json:"symptoms"`
	Notes     string            `json:"notes,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Day parses the appointment date
func (a *Appointment) Day() (time.Time, error) {
	return time.Parse(AppointmentDateLayout, a.Date)
}

// AppointmentView pairs an appointment with the doctor it references
type AppointmentView struct {
	Appointment *Appointment `json:"appointment"`
	Doctor      *Doctor      `json:"doctor,omitempty"`
}
