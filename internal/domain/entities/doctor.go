package entities

import (
	"fmt"
	"strings"
)

// Doctor represents a practitioner listed in the directory
type Doctor struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Speciality     string   `json:"speciality"`
	Experience     int      `json:"experience"`
	Fees           float64  `json:"fees"`
	Location       string   `json:"location"`
	Rating         float64  `json:"rating"`
	TotalReviews   int      `json:"total_reviews"`
	About          string   `json:"about"`
	Education      string   `json:"education"`
	AvailableSlots []string `json:"available_slots"`
	Image          string   `json:"image,omitempty"`
	Verified       bool     `json:"verified"`
	Address        *Address `json:"address,omitempty"`
}

// HasSlot reports whether the doctor offers the given time slot
func (d *Doctor) HasSlot(slot string) bool {
	for _, s := range d.AvailableSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Coordinates returns the clinic coordinates when the doctor has mapped their address
func (d *Doctor) Coordinates() (Coordinates, bool) {
	if d.Address == nil || d.Address.Coordinates == nil {
		return Coordinates{}, false
	}
	return *d.Address.Coordinates, true
}

// Address represents a clinic address
type Address struct {
	Street        string       `json:"street"`
	City          string       `json:"city"`
	State         string       `json:"state"`
	ZipCode       string       `json:"zip_code"`
	Country       string       `json:"country"`
	Coordinates   *Coordinates `json:"coordinates,omitempty"`
	GoogleMapsURL string       `json:"google_maps_url,omitempty"`
}

// FullAddress renders the address on a single line
func (a Address) FullAddress() string {
	line := strings.TrimSpace(fmt.Sprintf("%s %s", a.State, a.ZipCode))
	return fmt.Sprintf("%s, %s, %s, %s", a.Street, a.City, line, a.Country)
}

// Coordinates represents geographical coordinates in degrees
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}
