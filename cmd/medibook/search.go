package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zatekoja/medibook/internal/adapters/providers/geolocation"
	"github.com/zatekoja/medibook/internal/application/services"
	"github.com/zatekoja/medibook/internal/domain/entities"
	"github.com/zatekoja/medibook/internal/query/engine"
	apperrors "github.com/zatekoja/medibook/pkg/errors"
)

// searchFlags are the filter panel controls shared by search and nearby
type searchFlags struct {
	term        string
	specialties []string
	locations   []string
	slots       []string
	minFees     float64
	maxFees     float64
	minRating   float64
	minExp      int
	maxExp      int
	sortBy      string
	order       string
	reverse     bool
}

func (f *searchFlags) register(cmd *cobra.Command) {
	defaults := entities.DefaultFilterCriteria()
	flags := cmd.Flags()
	flags.StringVar(&f.term, "q", "", "Search name, speciality or location")
	flags.StringSliceVar(&f.specialties, "specialty", nil, "Only these specialities (repeatable)")
	flags.StringSliceVar(&f.locations, "location", nil, "Only these locations (repeatable)")
	flags.StringSliceVar(&f.slots, "slot", nil, "Only doctors offering one of these slots, e.g. 10:30")
	flags.Float64Var(&f.minFees, "min-fees", defaults.MinFees, "Minimum consultation fee")
	flags.Float64Var(&f.maxFees, "max-fees", defaults.MaxFees, "Maximum consultation fee")
	flags.Float64Var(&f.minRating, "min-rating", 0, "Minimum rating")
	flags.IntVar(&f.minExp, "min-exp", defaults.MinExperience, "Minimum years of experience")
	flags.IntVar(&f.maxExp, "max-exp", defaults.MaxExperience, "Maximum years of experience")
	flags.StringVar(&f.sortBy, "sort", string(defaults.SortBy), "Sort by rating, fees, experience, name or location")
	flags.StringVar(&f.order, "order", string(defaults.SortOrder), "Sort order, asc or desc")
	flags.BoolVar(&f.reverse, "reverse", false, "Flip the sort order")
}

func (f *searchFlags) criteria() (entities.FilterCriteria, error) {
	c := entities.DefaultFilterCriteria()

	key, err := entities.ParseSortKey(f.sortBy)
	if err != nil {
		return c, err
	}
	order, err := entities.ParseSortDirection(f.order)
	if err != nil {
		return c, err
	}

	c.SearchTerm = f.term
	c.Specialties = f.specialties
	c.Locations = f.locations
	c.Availability = f.slots
	c.MinFees = f.minFees
	c.MaxFees = f.maxFees
	c.MinRating = f.minRating
	c.MinExperience = f.minExp
	c.MaxExperience = f.maxExp
	c.SortBy = key
	c.SortOrder = order
	if f.reverse {
		c.SortOrder = order.Toggle()
	}
	return c, nil
}

func searchCmd(a *app) *cobra.Command {
	f := &searchFlags{}
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the doctor directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := f.criteria()
			if err != nil {
				return err
			}
			result, err := a.search.Search(cmd.Context(), criteria)
			if err != nil {
				return err
			}
			if a.json {
				return a.printJSON(result)
			}
			if err := a.table(doctorHeader, doctorRows(result.Doctors)); err != nil {
				return err
			}
			a.printf("\n%d of %d doctors, %d active filters\n", len(result.Doctors), result.Total, result.ActiveFilters)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func nearbyCmd(a *app) *cobra.Command {
	f := &searchFlags{}
	var (
		lat, lng float64
		near     string
		radius   float64
	)
	cmd := &cobra.Command{
		Use:   "nearby",
		Short: "List doctors within a radius of a point, nearest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := f.criteria()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("radius") {
				radius = a.cfg.Search.DefaultRadiusMiles
			}
			radius = a.cfg.Search.ClampRadius(radius)

			latSet, lngSet := cmd.Flags().Changed("lat"), cmd.Flags().Changed("lng")
			if latSet != lngSet {
				return apperrors.NewValidationError("--lat and --lng must be given together")
			}
			if latSet && near != "" {
				return apperrors.NewValidationError("use either --lat/--lng or --near")
			}

			var result *services.NearbyResult
			if near != "" {
				result, err = a.search.NearbyLocation(cmd.Context(), criteria, near, radius)
			} else {
				var origin *entities.Coordinates
				if latSet {
					origin = &entities.Coordinates{Latitude: lat, Longitude: lng}
				}
				result, err = a.search.Nearby(cmd.Context(), criteria, origin, radius)
			}
			if err != nil {
				return err
			}

			if a.json {
				return a.printJSON(result)
			}
			rows := distanceRows(result.Doctors, result.Located)
			if err := a.table([]string{"ID", "NAME", "SPECIALITY", "LOCATION", "MILES"}, rows); err != nil {
				return err
			}
			if result.Located {
				a.printf("\n%d doctors within %.0f miles\n", len(rows), radius)
			} else {
				a.printf("\n%d doctors, location unknown\n", len(rows))
			}
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude of the search origin")
	cmd.Flags().Float64Var(&lng, "lng", 0, "Longitude of the search origin")
	cmd.Flags().StringVar(&near, "near", "", "City to search around: "+strings.Join(geolocation.KnownCities(), ", "))
	cmd.Flags().Float64Var(&radius, "radius", 0, "Radius in miles (default from SEARCH_DEFAULT_RADIUS_MILES)")
	return cmd
}

func distanceRows(doctors []engine.DoctorDistance, located bool) [][]string {
	rows := make([][]string, 0, len(doctors))
	for _, d := range doctors {
		miles := "-"
		if located {
			miles = fmt.Sprintf("%.1f", d.Miles)
		}
		rows = append(rows, []string{d.Doctor.ID, d.Doctor.Name, d.Doctor.Speciality, d.Doctor.Location, miles})
	}
	return rows
}

func specialtiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "specialties",
		Short: "List specialities with their number of doctors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := a.search.SpecialtyCounts(cmd.Context())
			if err != nil {
				return err
			}
			if a.json {
				return a.printJSON(counts)
			}
			names := make([]string, 0, len(counts))
			for name := range counts {
				names = append(names, name)
			}
			sort.Strings(names)
			rows := make([][]string, 0, len(names))
			for _, name := range names {
				rows = append(rows, []string{name, fmt.Sprint(counts[name])})
			}
			return a.table([]string{"SPECIALITY", "DOCTORS"}, rows)
		},
	}
}

func showCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show DOCTOR_ID",
		Short: "Show a doctor's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.doctors.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if a.json {
				return a.printJSON(d)
			}
			verified := ""
			if d.Verified {
				verified = " (verified)"
			}
			a.printf("%s%s\n%s, %d years experience\n", d.Name, verified, d.Speciality, d.Experience)
			a.printf("Location:  %s\n", d.Location)
			if d.Address != nil {
				a.printf("Clinic:    %s\n", d.Address.FullAddress())
				if d.Address.GoogleMapsURL != "" {
					a.printf("Map:       %s\n", d.Address.GoogleMapsURL)
				}
			}
			a.printf("Fees:      $%.0f\n", d.Fees)
			a.printf("Rating:    %.1f from %d reviews\n", d.Rating, d.TotalReviews)
			a.printf("Education: %s\n", d.Education)
			a.printf("Slots:     %v\n", d.AvailableSlots)
			if d.About != "" {
				a.printf("\n%s\n", d.About)
			}
			return nil
		},
	}
}
