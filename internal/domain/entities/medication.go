package entities

// MedicationStatus is the lifecycle state of a prescription
type MedicationStatus string

const (
	MedicationStatusActive       MedicationStatus = "active"
	MedicationStatusCompleted    MedicationStatus = "completed"
	MedicationStatusDiscontinued MedicationStatus = "discontinued"
)

// MedicationType is the dosage form
type MedicationType string

const (
	MedicationTypeTablet    MedicationType = "tablet"
	MedicationTypeCapsule   MedicationType = "capsule"
	MedicationTypeSyrup     MedicationType = "syrup"
	MedicationTypeInjection MedicationType = "injection"
	MedicationTypeCream     MedicationType = "cream"
	MedicationTypeDrops     MedicationType = "drops"
)

// Medication represents a prescription shown on the patient dashboard
type Medication struct {
	ID           string           `json:"id"`
	PatientID    string           `json:"patient_id"`
	Name         string           `json:"name"`
	Dosage       string           `json:"dosage"`
	Frequency    string           `json:"frequency"`
	Type         MedicationType   `json:"type"`
	Status       MedicationStatus `json:"status"`
	PrescribedBy string           `json:"prescribed_by"`
	StartDate    string           `json:"start_date"`
	EndDate      string           `json:"end_date,omitempty"`
	Instructions string           `json:"instructions,omitempty"`
}
