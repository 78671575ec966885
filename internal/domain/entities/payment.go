package entities

import (
	"time"
)

// UPIApp identifies the app a patient pays with
type UPIApp string

const (
	UPIAppGooglePay UPIApp = "gpay"
	UPIAppPhonePe   UPIApp = "phonepe"
	UPIAppPaytm     UPIApp = "paytm"
	UPIAppBHIM      UPIApp = "bhim"
	UPIAppOther     UPIApp = "other"
)

var upiAppNames = map[UPIApp]string{
	UPIAppGooglePay: "Google Pay",
	UPIAppPhonePe:   "PhonePe",
	UPIAppPaytm:     "Paytm",
	UPIAppBHIM:      "BHIM UPI",
	UPIAppOther:     "Other UPI App",
}

// UPIApps lists the supported apps in display order
func UPIApps() []UPIApp {
	return []UPIApp{UPIAppGooglePay, UPIAppPhonePe, UPIAppPaytm, UPIAppBHIM, UPIAppOther}
}

// IsValid reports whether a is a supported app
func (a UPIApp) IsValid() bool {
	_, ok := upiAppNames[a]
	return ok
}

// DisplayName returns the app's human readable name
func (a UPIApp) DisplayName() string {
	if name, ok := upiAppNames[a]; ok {
		return name
	}
	return string(a)
}

// PaymentMethod is what the patient chose at checkout. Skip books without
// paying; otherwise an app, a UPI ID or both are given.
type PaymentMethod struct {
	App   UPIApp `json:"app,omitempty"`
	UPIID string `json:"upi_id,omitempty"`
	Skip  bool   `json:"skip,omitempty"`
}

// PaymentStatus represents the outcome of a checkout
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusSkipped PaymentStatus = "skipped"
)

// Payment records the simulated settlement of an appointment
type Payment struct {
	ID            string        `json:"id"`
	AppointmentID string        `json:"appointment_id"`
	Reference     string        `json:"reference"`
	Method        PaymentMethod `json:"method"`
	Amount        float64       `json:"amount"`
	Status        PaymentStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}
