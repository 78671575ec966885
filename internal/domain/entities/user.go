package entities

import (
	"time"
)

// Role distinguishes the two kinds of account
type Role string

const (
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// IsValid checks if the role value is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleDoctor, RolePatient:
		return true
	}
	return false
}

// User represents a signed-in account
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Session is the authentication state persisted between runs
type Session struct {
	User          *User     `json:"user,omitempty"`
	Authenticated bool      `json:"authenticated"`
	SavedAt       time.Time `json:"saved_at"`
}

// Patient represents a patient profile
type Patient struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Age     int    `json:"age"`
	Gender  string `json:"gender"`
	Address string `json:"address"`
	Image   string `json:"image,omitempty"`
}
