package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zatekoja/medibook/internal/domain/entities"
	apperrors "github.com/zatekoja/medibook/pkg/errors"
)

func medicationsCmd(a *app) *cobra.Command {
	var active, recent bool
	cmd := &cobra.Command{
		Use:   "medications",
		Short: "List your prescriptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if active && recent {
				return apperrors.NewValidationError("use either --active or --recent")
			}

			ctx := cmd.Context()
			user, err := a.sessions.RequireRole(ctx, entities.RolePatient)
			if err != nil {
				return err
			}

			var meds []*entities.Medication
			switch {
			case active:
				meds, err = a.medications.Active(ctx, user.ID)
			case recent:
				meds, err = a.medications.Recent(ctx, user.ID, a.cfg.Booking.RecentMedication)
			default:
				meds, err = a.medications.ListForPatient(ctx, user.ID)
			}
			if err != nil {
				return err
			}

			if a.json {
				return a.printJSON(meds)
			}
			if len(meds) == 0 {
				a.printf("No medications\n")
				return nil
			}
			rows := make([][]string, 0, len(meds))
			for _, m := range meds {
				rows = append(rows, []string{m.Name, m.Dosage, m.Frequency, string(m.Type), string(m.Status), m.StartDate})
			}
			return a.table([]string{"NAME", "DOSAGE", "FREQUENCY", "TYPE", "STATUS", "STARTED"}, rows)
		},
	}
	cmd.Flags().BoolVar(&active, "active", false, "Only prescriptions still being taken")
	cmd.Flags().BoolVar(&recent, "recent", false, "Only the most recent prescriptions")
	return cmd
}

func verifyCmd(a *app) *cobra.Command {
	var license, degree string
	var certificates, other []string
	var address string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Submit credentials for the verified badge (doctors only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := a.sessions.RequireRole(ctx, entities.RoleDoctor)
			if err != nil {
				return err
			}

			var docs []*entities.VerificationDocument
			add := func(t entities.DocumentType, paths ...string) {
				for _, p := range paths {
					if p != "" {
						docs = append(docs, &entities.VerificationDocument{Name: filepath.Base(p), Type: t})
					}
				}
			}
			add(entities.DocumentTypeLicense, license)
			add(entities.DocumentTypeDegree, degree)
			add(entities.DocumentTypeCertificate, certificates...)
			add(entities.DocumentTypeOther, other...)

			req, err := a.verification.Submit(ctx, &entities.VerificationRequest{
				DoctorID:      user.ID,
				Documents:     docs,
				ClinicAddress: address,
			})
			if err != nil {
				return err
			}

			if a.json {
				return a.printJSON(req)
			}
			rows := make([][]string, 0, len(req.Documents))
			for _, d := range req.Documents {
				rows = append(rows, []string{d.Name, string(d.Type), string(d.Status)})
			}
			if err := a.table([]string{"DOCUMENT", "TYPE", "STATUS"}, rows); err != nil {
				return err
			}
			a.printf("\nRequest %s submitted for review\n", req.ID)
			if req.MapURL != "" {
				a.printf("Clinic map: %s\n", req.MapURL)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&license, "license", "", "Medical license file")
	cmd.Flags().StringVar(&degree, "degree", "", "Medical degree file")
	cmd.Flags().StringSliceVar(&certificates, "certificate", nil, "Board certificate files")
	cmd.Flags().StringSliceVar(&other, "other", nil, "Other supporting files")
	cmd.Flags().StringVar(&address, "address", "", "Clinic address")
	return cmd
}

func clinicCmd(a *app) *cobra.Command {
	var address entities.Address
	cmd := &cobra.Command{
		Use:   "clinic",
		Short: "Show or update your clinic address (doctors only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := a.sessions.RequireRole(ctx, entities.RoleDoctor)
			if err != nil {
				return err
			}

			var saved *entities.Address
			if anyChanged(cmd, "street", "city", "state", "zip", "country") {
				saved, err = a.locations.SaveClinicAddress(ctx, user.ID, address)
			} else {
				saved, err = a.locations.ClinicAddress(ctx, user.ID)
			}
			if err != nil {
				return err
			}

			if a.json {
				return a.printJSON(saved)
			}
			a.printf("%s\n", saved.FullAddress())
			if saved.Coordinates != nil {
				a.printf("Coordinates: %.4f, %.4f\n", saved.Coordinates.Latitude, saved.Coordinates.Longitude)
			}
			if saved.GoogleMapsURL != "" {
				a.printf("Map: %s\n", saved.GoogleMapsURL)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&address.Street, "street", "", "Street address")
	cmd.Flags().StringVar(&address.City, "city", "", "City")
	cmd.Flags().StringVar(&address.State, "state", "", "State")
	cmd.Flags().StringVar(&address.ZipCode, "zip", "", "ZIP code")
	cmd.Flags().StringVar(&address.Country, "country", "", "Country")
	return cmd
}

func anyChanged(cmd *cobra.Command, names ...string) bool {
	for _, n := range names {
		if cmd.Flags().Changed(n) {
			return true
		}
	}
	return false
}
