package entities

import "time"

// DocumentType classifies an uploaded credential
type DocumentType string

const (
	DocumentTypeLicense     DocumentType = "license"
	DocumentTypeDegree      DocumentType = "degree"
	DocumentTypeCertificate DocumentType = "certificate"
	DocumentTypeOther       DocumentType = "other"
)

// RequiredDocumentTypes are the credentials every verification must include
func RequiredDocumentTypes() []DocumentType {
	return []DocumentType{DocumentTypeLicense, DocumentTypeDegree}
}

// DocumentStatus is the review state of an uploaded credential
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusApproved DocumentStatus = "approved"
	DocumentStatusRejected DocumentStatus = "rejected"
)

// VerificationDocument is a credential attached to a verification request
type VerificationDocument struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       DocumentType   `json:"type"`
	Status     DocumentStatus `json:"status"`
	UploadedAt time.Time      `json:"uploaded_at"`
}

// VerificationRequest is a doctor's submission for the verified badge
type VerificationRequest struct {
	ID            string                  `json:"id"`
	DoctorID      string                  `json:"doctor_id"`
	Documents     []*VerificationDocument `json:"documents"`
	ClinicAddress string                  `json:"clinic_address"`
	Coordinates   *Coordinates            `json:"coordinates,omitempty"`
	MapURL        string                  `json:"map_url,omitempty"`
	SubmittedAt   time.Time               `json:"submitted_at"`
}
