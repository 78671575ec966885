package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/medibook/internal/adapters/cache"
	"github.com/zatekoja/medibook/internal/adapters/fixtures"
	"github.com/zatekoja/medibook/internal/adapters/providers/geolocation"
	"github.com/zatekoja/medibook/internal/adapters/session"
	"github.com/zatekoja/medibook/internal/application/services"
	"github.com/zatekoja/medibook/internal/domain/providers"
	"github.com/zatekoja/medibook/internal/domain/repositories"
	"github.com/zatekoja/medibook/internal/infrastructure/clients/redis"
	"github.com/zatekoja/medibook/internal/infrastructure/observability"
	"github.com/zatekoja/medibook/internal/query/loaders"
	"github.com/zatekoja/medibook/pkg/config"
	"github.com/zatekoja/medibook/pkg/retry"
)

// app holds the wired services shared by every command
type app struct {
	cfg     *config.Config
	out     io.Writer
	errOut  io.Writer
	json    bool
	verbose bool

	doctors      repositories.DoctorRepository
	patients     repositories.PatientRepository
	search       *services.DoctorSearchService
	appointments *services.AppointmentService
	payments     *services.PaymentService
	sessions     *services.SessionService
	verification *services.VerificationService
	locations    *services.LocationService
	medications  *services.MedicationService

	closers []func(context.Context) error
}

// setup loads configuration and builds the service graph
func (a *app) setup(ctx context.Context, configPath string) error {
	var err error
	if configPath != "" {
		a.cfg, err = config.LoadFile(configPath)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level := a.cfg.App.LogLevel
	if a.verbose {
		level = "debug"
	}
	log.Logger = observability.NewLogger(a.errOut, a.cfg.App.Name, a.cfg.App.IsDevelopment(), level)

	if a.cfg.OTEL.Enabled && a.cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, a.cfg.OTEL.ServiceName, a.cfg.OTEL.ServiceVersion, a.cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			observability.EnableLogExport(a.cfg.OTEL.ServiceName)
			a.closers = append(a.closers, shutdown)
			log.Debug().Str("endpoint", a.cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}

	store, err := a.sessionStore(ctx)
	if err != nil {
		return err
	}

	directory := fixtures.Doctors()
	a.doctors = fixtures.NewDoctorStore(directory)
	a.patients = fixtures.NewPatientStore(fixtures.Patients())
	geo := geolocation.NewMockGeolocationProvider()

	a.search = services.NewDoctorSearchService(a.doctors, geo, metrics)
	booked := fixtures.NewAppointmentStore(fixtures.Appointments())
	a.appointments = services.NewAppointmentService(
		booked,
		a.doctors,
		metrics,
		a.cfg.Booking.WindowDays,
		a.cfg.Booking.RecentDays,
	)
	a.payments = services.NewPaymentService(fixtures.NewPaymentStore(), booked, a.doctors, metrics)
	a.sessions = services.NewSessionService(store, metrics).WithKnownUsers(fixtures.KnownUser)
	a.verification = services.NewVerificationService(fixtures.NewVerificationStore(), geo)
	a.locations = services.NewLocationService(fixtures.NewClinicStore(directory), geo)
	a.medications = services.NewMedicationService(fixtures.NewMedicationStore(fixtures.Medications()))

	return nil
}

func (a *app) sessionStore(ctx context.Context) (providers.SessionStore, error) {
	switch a.cfg.Session.Backend {
	case config.SessionBackendRedis:
		retryCfg := retry.DefaultConfig()
		client, err := redis.NewClient(ctx, &a.cfg.Redis, retryCfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func(context.Context) error { return client.Close() })
		log.Debug().Str("addr", a.cfg.Redis.RedisAddr()).Str("session", a.cfg.Session.Name).Msg("using redis session store")
		return session.NewRedisStore(client.Client(), a.cfg.Session.Name, a.cfg.Session.TTL), nil
	case config.SessionBackendMemory:
		return session.NewCacheStore(cache.NewMemoryAdapter(), a.cfg.Session.Name, a.cfg.Session.TTL), nil
	default:
		return session.NewFileStore(a.cfg.Session.Path), nil
	}
}

// context attaches per-invocation loaders
func (a *app) context(ctx context.Context) context.Context {
	return loaders.WithLoaders(ctx, loaders.NewLoaders(a.doctors))
}

// close releases clients in reverse order of creation
func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			log.Warn().Err(err).Msg("shutdown error")
		}
	}
	a.closers = nil
}
