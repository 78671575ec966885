package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/zatekoja/medibook/internal/domain/entities"
)

func (a *app) printJSON(v interface{}) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// table writes tab separated rows aligned in columns
func (a *app) table(header []string, rows [][]string) error {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}

func (a *app) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func doctorRows(doctors []*entities.Doctor) [][]string {
	rows := make([][]string, 0, len(doctors))
	for _, d := range doctors {
		rows = append(rows, []string{
			d.ID,
			d.Name,
			d.Speciality,
			d.Location,
			fmt.Sprintf("%d yrs", d.Experience),
			fmt.Sprintf("$%.0f", d.Fees),
			fmt.Sprintf("%.1f (%d)", d.Rating, d.TotalReviews),
		})
	}
	return rows
}

var doctorHeader = []string{"ID", "NAME", "SPECIALITY", "LOCATION", "EXPERIENCE", "FEES", "RATING"}

func appointmentRows(views []*entities.AppointmentView) [][]string {
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		doctor := v.Appointment.DoctorID
		if v.Doctor != nil {
			doctor = v.Doctor.Name
		}
		rows = append(rows, []string{
			v.Appointment.ID,
			v.Appointment.Reference,
			v.Appointment.Date,
			v.Appointment.Time,
			doctor,
			string(v.Appointment.Status),
		})
	}
	return rows
}

var appointmentHeader = []string{"ID", "REFERENCE", "DATE", "TIME", "DOCTOR", "STATUS"}
