package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"tour-backoffice/internal/module/booking/models/entity"
	"tour-backoffice/internal/pkg/errors"
	"tour-backoffice/internal/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	userColumns     = `id, username, password, full_name, role, email, created_at`
	tourColumns     = `id, title, description, base_price, currency, duration_days, capacity, is_active, images, created_at`
	customerColumns = `id, full_name, email, phone, nationality, passport_details, notes, created_at`
	bookingColumns  = `id, customer_id, tour_id, booking_date, travel_date, head_count, total_amount, status, notes`
	paymentColumns  = `id, booking_id, amount, currency, method, status, transaction_ref, payment_date`
)

type postgres struct {
	db  *sqlx.DB
	log log.Logger
}

// NewPostgres builds the relational store. A nil db yields a store whose
// every operation fails with ErrNotInitialized.
func NewPostgres(db *sqlx.DB, log log.Logger) Repositories {
	return &postgres{
		db:  db,
		log: log,
	}
}

func (r *postgres) ready(ctx context.Context) error {
	if r.db == nil {
		r.log.Error(ctx, "relational storage selected but has no connection")
		return ErrNotInitialized
	}
	return nil
}

// GetUser implements Repositories.
func (r *postgres) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	var user entity.User
	err := r.getOne(ctx, &user, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return orNil(&user, err, "find user by id")
}

// GetUserByUsername implements Repositories.
func (r *postgres) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	err := r.getOne(ctx, &user, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return orNil(&user, err, "find user by username")
}

// CreateUser implements Repositories.
func (r *postgres) CreateUser(ctx context.Context, user entity.User) (entity.User, error) {
	user.ApplyDefaults()
	var out entity.User
	err := r.getOne(ctx, &out, `
		INSERT INTO users (username, password, full_name, role, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		user.Username, user.Password, user.FullName, user.Role, user.Email)
	if err != nil {
		return entity.User{}, r.wrap("create user", err)
	}
	return out, nil
}

// GetTours implements Repositories.
func (r *postgres) GetTours(ctx context.Context) ([]entity.Tour, error) {
	tours := []entity.Tour{}
	if err := r.getMany(ctx, &tours, `SELECT `+tourColumns+` FROM tours`); err != nil {
		return nil, r.wrap("find tours", err)
	}
	return tours, nil
}

// GetTour implements Repositories.
func (r *postgres) GetTour(ctx context.Context, id int64) (*entity.Tour, error) {
	var tour entity.Tour
	err := r.getOne(ctx, &tour, `SELECT `+tourColumns+` FROM tours WHERE id = $1`, id)
	return orNil(&tour, err, "find tour by id")
}

// CreateTour implements Repositories.
func (r *postgres) CreateTour(ctx context.Context, tour entity.Tour) (entity.Tour, error) {
	tour.ApplyDefaults()
	var out entity.Tour
	err := r.getOne(ctx, &out, `
		INSERT INTO tours (title, description, base_price, currency, duration_days, capacity, is_active, images)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+tourColumns,
		tour.Title, tour.Description, tour.BasePrice, tour.Currency, tour.DurationDays, tour.Capacity, tour.IsActive, tour.Images)
	if err != nil {
		return entity.Tour{}, r.wrap("create tour", err)
	}
	return out, nil
}

// UpdateTour implements Repositories.
func (r *postgres) UpdateTour(ctx context.Context, id int64, patch entity.TourPatch) (*entity.Tour, error) {
	sets := patch.Assignments()
	if len(sets) == 0 {
		return r.GetTour(ctx, id)
	}
	var tour entity.Tour
	query, args := updateQuery("tours", tourColumns, id, sets)
	err := r.getOne(ctx, &tour, query, args...)
	return orNil(&tour, err, "update tour")
}

// GetCustomers implements Repositories.
func (r *postgres) GetCustomers(ctx context.Context) ([]entity.Customer, error) {
	customers := []entity.Customer{}
	if err := r.getMany(ctx, &customers, `SELECT `+customerColumns+` FROM customers`); err != nil {
		return nil, r.wrap("find customers", err)
	}
	return customers, nil
}

// GetCustomer implements Repositories.
func (r *postgres) GetCustomer(ctx context.Context, id int64) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.getOne(ctx, &customer, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	return orNil(&customer, err, "find customer by id")
}

// CreateCustomer implements Repositories.
func (r *postgres) CreateCustomer(ctx context.Context, customer entity.Customer) (entity.Customer, error) {
	var out entity.Customer
	err := r.getOne(ctx, &out, `
		INSERT INTO customers (full_name, email, phone, nationality, passport_details, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+customerColumns,
		customer.FullName, customer.Email, customer.Phone, customer.Nationality, customer.PassportDetails, customer.Notes)
	if err != nil {
		return entity.Customer{}, r.wrap("create customer", err)
	}
	return out, nil
}

// GetBookings implements Repositories.
func (r *postgres) GetBookings(ctx context.Context) ([]entity.Booking, error) {
	bookings := []entity.Booking{}
	if err := r.getMany(ctx, &bookings, `SELECT `+bookingColumns+` FROM bookings`); err != nil {
		return nil, r.wrap("find bookings", err)
	}
	return bookings, nil
}

// GetBooking implements Repositories.
func (r *postgres) GetBooking(ctx context.Context, id int64) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.getOne(ctx, &booking, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	return orNil(&booking, err, "find booking by id")
}

// CreateBooking implements Repositories.
func (r *postgres) CreateBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	booking.ApplyDefaults()
	var out entity.Booking
	err := r.getOne(ctx, &out, `
		INSERT INTO bookings (customer_id, tour_id, travel_date, head_count, total_amount, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+bookingColumns,
		booking.CustomerID, booking.TourID, booking.TravelDate, booking.HeadCount, booking.TotalAmount, booking.Status, booking.Notes)
	if err != nil {
		return entity.Booking{}, r.wrap("create booking", err)
	}
	return out, nil
}

// UpdateBooking implements Repositories.
func (r *postgres) UpdateBooking(ctx context.Context, id int64, patch entity.BookingPatch) (*entity.Booking, error) {
	sets := patch.Assignments()
	if len(sets) == 0 {
		return r.GetBooking(ctx, id)
	}
	var booking entity.Booking
	query, args := updateQuery("bookings", bookingColumns, id, sets)
	err := r.getOne(ctx, &booking, query, args...)
	return orNil(&booking, err, "update booking")
}

// GetPayments implements Repositories.
func (r *postgres) GetPayments(ctx context.Context) ([]entity.Payment, error) {
	payments := []entity.Payment{}
	if err := r.getMany(ctx, &payments, `SELECT `+paymentColumns+` FROM payments`); err != nil {
		return nil, r.wrap("find payments", err)
	}
	return payments, nil
}

// CreatePayment implements Repositories.
func (r *postgres) CreatePayment(ctx context.Context, payment entity.Payment) (entity.Payment, error) {
	payment.ApplyDefaults()
	var out entity.Payment
	err := r.getOne(ctx, &out, `
		INSERT INTO payments (booking_id, amount, currency, method, status, transaction_ref)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+paymentColumns,
		payment.BookingID, payment.Amount, payment.Currency, payment.Method, payment.Status, payment.TransactionRef)
	if err != nil {
		return entity.Payment{}, r.wrap("create payment", err)
	}
	return out, nil
}

// Ping implements Repositories.
func (r *postgres) Ping(ctx context.Context) error {
	if err := r.ready(ctx); err != nil {
		return err
	}
	return r.db.PingContext(ctx)
}

// Close implements Repositories.
func (r *postgres) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *postgres) getOne(ctx context.Context, dest any, query string, args ...any) error {
	if err := r.ready(ctx); err != nil {
		return err
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgres) getMany(ctx context.Context, dest any, query string, args ...any) error {
	if err := r.ready(ctx); err != nil {
		return err
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}

func (r *postgres) wrap(op string, err error) error {
	if errors.Is(err, ErrNotInitialized) {
		return err
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// orNil maps sql.ErrNoRows to an absent record.
func orNil[T any](row *T, err error, op string) (*T, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		if errors.Is(err, ErrNotInitialized) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return row, nil
}

func updateQuery(tableName, columns string, id int64, sets []entity.Assignment) (string, []any) {
	clauses := make([]string, 0, len(sets))
	args := make([]any, 0, len(sets)+1)
	for i, s := range sets {
		clauses = append(clauses, fmt.Sprintf("%s = $%d", s.Column, i+1))
		args = append(args, s.Value)
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		tableName, strings.Join(clauses, ", "), len(args), columns)
	return query, args
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
