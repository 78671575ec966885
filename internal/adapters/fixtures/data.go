// Package fixtures holds the directory's mock records and the in-memory
// repositories serving them.
package fixtures

import (
	"fmt"
	"strings"
	"time"

	"github.com/zatekoja/medibook/internal/domain/entities"
)

const country = "United States"

func imageURL(photo int) string {
	return fmt.Sprintf("https://images.pexels.com/photos/%d/pexels-photo-%d.jpeg?auto=compress&cs=tinysrgb&w=400", photo, photo)
}

func placeURL(street, city, state, zip string) string {
	q := fmt.Sprintf("%s, %s, %s %s", street, city, state, zip)
	return "https://www.google.com/maps/place/" + strings.ReplaceAll(q, " ", "+")
}

type doctorSeed struct {
	id, name, speciality, city, state, zip, street string
	experience                                     int
	fees, rating                                   float64
	reviews                                        int
	about, education                               string
	slots                                          []string
	photo                                          int
	lat, lng                                       float64
}

var doctorSeeds = []doctorSeed{
	{
		id: "1", name: "Dr. Sarah Johnson", speciality: "Cardiology", experience: 12, fees: 150, rating: 4.8, reviews: 127,
		about:     "Experienced cardiologist with expertise in heart disease prevention and treatment.",
		education: "MD from Harvard Medical School",
		slots:     []string{"09:00", "10:30", "14:00", "15:30"}, photo: 5327585,
		street: "456 Heart Center Boulevard", city: "New York", state: "NY", zip: "10001", lat: 40.7589, lng: -73.9851,
	},
	{
		id: "2", name: "Dr. Michael Chen", speciality: "Dermatology", experience: 8, fees: 120, rating: 4.9, reviews: 89,
		about:     "Specialized in skin conditions and cosmetic dermatology procedures.",
		education: "MD from Stanford University",
		slots:     []string{"11:00", "13:00", "16:00", "17:30"}, photo: 5327921,
		street: "789 Skin Care Avenue", city: "Los Angeles", state: "CA", zip: "90210", lat: 34.0522, lng: -118.2437,
	},
	{
		id: "3", name: "Dr. Emily Rodriguez", speciality: "Pediatrics", experience: 15, fees: 100, rating: 4.7, reviews: 203,
		about:     "Dedicated pediatrician with a passion for child healthcare and development.",
		education: "MD from Johns Hopkins University",
		slots:     []string{"08:30", "10:00", "14:30", "16:00"}, photo: 5327656,
		street: "321 Children's Medical Plaza", city: "Chicago", state: "IL", zip: "60601", lat: 41.8781, lng: -87.6298,
	},
	{
		id: "4", name: "Dr. Robert Thompson", speciality: "Orthopedics", experience: 20, fees: 180, rating: 4.6, reviews: 156,
		about:     "Orthopedic surgeon specializing in sports medicine and joint replacement.",
		education: "MD from Mayo Clinic",
		slots:     []string{"09:30", "11:00", "15:00", "16:30"}, photo: 5327580,
		street: "654 Sports Medicine Center", city: "Houston", state: "TX", zip: "77001", lat: 29.7604, lng: -95.3698,
	},
	{
		id: "5", name: "Dr. Lisa Wang", speciality: "Neurology", experience: 10, fees: 200, rating: 4.9, reviews: 98,
		about:     "Neurologist with expertise in treating neurological disorders and brain health.",
		education: "MD from UC San Francisco",
		slots:     []string{"10:00", "12:00", "14:00", "17:00"}, photo: 5327647,
		street: "987 Neuroscience Institute", city: "San Francisco", state: "CA", zip: "94102", lat: 37.7749, lng: -122.4194,
	},
	{
		id: "6", name: "Dr. David Miller", speciality: "Psychiatry", experience: 14, fees: 160, rating: 4.8, reviews: 112,
		about:     "Psychiatrist focused on mental health treatment and therapy.",
		education: "MD from Harvard Medical School",
		slots:     []string{"09:00", "11:30", "14:30", "16:00"}, photo: 5327592,
		street: "147 Mental Health Center", city: "Boston", state: "MA", zip: "02101", lat: 42.3601, lng: -71.0589,
	},
}

// Doctors returns a fresh copy of the directory
func Doctors() []*entities.Doctor {
	out := make([]*entities.Doctor, 0, len(doctorSeeds))
	for _, s := range doctorSeeds {
		first, last := emailParts(s.name)
		out = append(out, &entities.Doctor{
			ID:             s.id,
			Name:           s.name,
			Email:          fmt.Sprintf("%s.%s@medical.com", first, last),
			Speciality:     s.speciality,
			Experience:     s.experience,
			Fees:           s.fees,
			Location:       fmt.Sprintf("%s, %s", s.city, s.state),
			Rating:         s.rating,
			TotalReviews:   s.reviews,
			About:          s.about,
			Education:      s.education,
			AvailableSlots: append([]string(nil), s.slots...),
			Image:          imageURL(s.photo),
			Verified:       true,
			Address: &entities.Address{
				Street:        s.street,
				City:          s.city,
				State:         s.state,
				ZipCode:       s.zip,
				Country:       country,
				Coordinates:   &entities.Coordinates{Latitude: s.lat, Longitude: s.lng},
				GoogleMapsURL: placeURL(s.street, s.city, s.state, s.zip),
			},
		})
	}
	return out
}

// "Dr. Sarah Johnson" -> sarah, johnson
func emailParts(name string) (string, string) {
	fields := strings.Fields(strings.TrimPrefix(name, "Dr. "))
	if len(fields) < 2 {
		return strings.ToLower(name), ""
	}
	return strings.ToLower(fields[0]), strings.ToLower(fields[len(fields)-1])
}

// Patients returns the patient profiles
func Patients() []*entities.Patient {
	return []*entities.Patient{
		{
			ID:      "1",
			Name:    "John Doe",
			Email:   "john.doe@email.com",
			Phone:   "+1 (555) 123-4567",
			Age:     35,
			Gender:  "male",
			Address: "123 Main St, New York, NY 10001",
			Image:   imageURL(1043474),
		},
	}
}

// Appointments returns the seeded bookings
func Appointments() []*entities.Appointment {
	created := time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)
	return []*entities.Appointment{
		{
			ID:        "1",
			Reference: "APT000001SEED",
			DoctorID:  "1",
			PatientID: "1",
			Date:      "2024-01-15",
			Time:      "10:30",
			Status:    entities.AppointmentStatusConfirmed,
			Symptoms:  "Chest pain and shortness of breath",
			Notes:     "Patient reports symptoms during exercise",
			CreatedAt: created,
			UpdatedAt: created,
		},
	}
}

// Medications returns the seeded prescriptions, most recent first
func Medications() []*entities.Medication {
	return []*entities.Medication{
		{
			ID:           "1",
			PatientID:    "1",
			Name:         "Lisinopril",
			Dosage:       "10mg",
			Frequency:    "Once daily",
			Type:         entities.MedicationTypeTablet,
			Status:       entities.MedicationStatusActive,
			PrescribedBy: "1",
			StartDate:    "2024-01-15",
			Instructions: "Take in the morning with water",
		},
		{
			ID:           "2",
			PatientID:    "1",
			Name:         "Hydrocortisone",
			Dosage:       "1%",
			Frequency:    "Twice daily",
			Type:         entities.MedicationTypeCream,
			Status:       entities.MedicationStatusCompleted,
			PrescribedBy: "2",
			StartDate:    "2023-11-02",
			EndDate:      "2023-11-16",
			Instructions: "Apply a thin layer to the affected area",
		},
		{
			ID:           "3",
			PatientID:    "1",
			Name:         "Amoxicillin",
			Dosage:       "500mg",
			Frequency:    "Three times daily",
			Type:         entities.MedicationTypeCapsule,
			Status:       entities.MedicationStatusDiscontinued,
			PrescribedBy: "3",
			StartDate:    "2023-09-20",
			EndDate:      "2023-09-24",
		},
	}
}

// KnownUser maps a directory email to the matching doctor or patient profile
func KnownUser(email string, role entities.Role) (*entities.User, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	switch role {
	case entities.RoleDoctor:
		for _, d := range Doctors() {
			if d.Email == email {
				return &entities.User{ID: d.ID, Name: d.Name, Email: d.Email, Role: role}, true
			}
		}
	case entities.RolePatient:
		for _, p := range Patients() {
			if p.Email == email {
				return &entities.User{ID: p.ID, Name: p.Name, Email: p.Email, Role: role}, true
			}
		}
	}
	return nil, false
}
