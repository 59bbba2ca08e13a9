package repositories

import (
	"context"
	"errors"

	"tour-backoffice/config"
	"tour-backoffice/internal/module/booking/models/entity"
	"tour-backoffice/internal/pkg/database"
	"tour-backoffice/internal/pkg/log"
)

var (
	// ErrNotInitialized is returned by the relational store when it was
	// selected but holds no live connection.
	ErrNotInitialized = errors.New("storage backend not initialized")
	// ErrDuplicate reports a unique constraint violation.
	ErrDuplicate = errors.New("duplicate record")
)

// Repositories is the storage contract shared by the in-memory and the
// relational backend. Lookups by id return (nil, nil) when the record does
// not exist. Updates of an unknown id return (nil, nil) and write nothing.
type Repositories interface {
	// users
	GetUser(ctx context.Context, id int64) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	CreateUser(ctx context.Context, user entity.User) (entity.User, error)
	// tours
	GetTours(ctx context.Context) ([]entity.Tour, error)
	GetTour(ctx context.Context, id int64) (*entity.Tour, error)
	CreateTour(ctx context.Context, tour entity.Tour) (entity.Tour, error)
	UpdateTour(ctx context.Context, id int64, patch entity.TourPatch) (*entity.Tour, error)
	// customers
	GetCustomers(ctx context.Context) ([]entity.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*entity.Customer, error)
	CreateCustomer(ctx context.Context, customer entity.Customer) (entity.Customer, error)
	// bookings
	GetBookings(ctx context.Context) ([]entity.Booking, error)
	GetBooking(ctx context.Context, id int64) (*entity.Booking, error)
	CreateBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error)
	UpdateBooking(ctx context.Context, id int64, patch entity.BookingPatch) (*entity.Booking, error)
	// payments
	GetPayments(ctx context.Context) ([]entity.Payment, error)
	CreatePayment(ctx context.Context, payment entity.Payment) (entity.Payment, error)
	// lifecycle
	Ping(ctx context.Context) error
	Close() error
}

// New picks the backend once at startup: the relational store when a
// database URL is configured, the in-memory store otherwise. A configured
// but unreachable database still selects the relational store, whose
// operations then fail with ErrNotInitialized.
func New(cfg *config.Config, log log.Logger) Repositories {
	ctx := context.Background()

	if cfg.Database.URL == "" {
		log.Info(ctx, "DATABASE_URL not found, running with in-memory storage")
		return NewMemory(cfg.Storage.SeedOnStart)
	}

	db, err := database.GetConnection(&cfg.Database)
	if err != nil {
		log.Error(ctx, "relational storage selected but the database is unreachable", err)
		return NewPostgres(nil, log)
	}
	log.Info(ctx, "DATABASE_URL found, using relational storage")

	if cfg.Database.AutoMigrate {
		if err := Migrate(ctx, db); err != nil {
			log.Error(ctx, "error migrate database", err)
		}
	}

	return NewPostgres(db, log)
}
