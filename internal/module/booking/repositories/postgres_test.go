package repositories

import (
	"context"
	stderrors "errors"
	"regexp"
	"testing"
	"time"

	"tour-backoffice/internal/module/booking/models/entity"
	"tour-backoffice/internal/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	mock    sqlmock.Sqlmock
	dbx     *sqlx.DB
	logMock log.Logger
)

func setup(t *testing.T) *postgres {
	t.Helper()
	db, m, err := sqlmock.New()
	require.NoError(t, err)
	dbx = sqlx.NewDb(db, "postgres")
	mock = m
	logMock = log.Setup()
	t.Cleanup(func() { dbx.Close() })
	return NewPostgres(dbx, logMock).(*postgres)
}

var tourCols = []string{"id", "title", "description", "base_price", "currency", "duration_days", "capacity", "is_active", "images", "created_at"}

func TestPostgresGetTour(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	active := true

	testCases := []struct {
		name          string
		rows          *sqlmock.Rows
		queryErr      error
		expectedTour  *entity.Tour
		expectedError bool
	}{
		{
			name: "Tour found",
			rows: sqlmock.NewRows(tourCols).
				AddRow(int64(1), "Pyramids of Giza & Sphinx", "desc", int64(15000), "USD", int64(1), int64(20), true, []byte(`["https://example.com/p.jpg"]`), created),
			expectedTour: &entity.Tour{
				ID:           1,
				Title:        "Pyramids of Giza & Sphinx",
				Description:  "desc",
				BasePrice:    15000,
				Currency:     "USD",
				DurationDays: 1,
				Capacity:     20,
				IsActive:     &active,
				Images:       entity.StringList{"https://example.com/p.jpg"},
				CreatedAt:    created,
			},
		},
		{
			name:         "Tour not found",
			rows:         sqlmock.NewRows(tourCols),
			expectedTour: nil,
		},
		{
			name:          "Database error",
			queryErr:      stderrors.New("connection reset"),
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := setup(t)
			expect := mock.ExpectQuery(`SELECT (.+) FROM tours WHERE id = \$1`).WithArgs(int64(1))
			if tc.queryErr != nil {
				expect.WillReturnError(tc.queryErr)
			} else {
				expect.WillReturnRows(tc.rows)
			}

			tour, err := repo.GetTour(context.Background(), 1)

			if tc.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.expectedTour, tour)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresCreateTourAppliesDefaults(t *testing.T) {
	repo := setup(t)
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO tours`).
		WithArgs("Abu Simbel", "Day trip", int64(22000), "USD", int64(1), int64(12), true, nil).
		WillReturnRows(sqlmock.NewRows(tourCols).
			AddRow(int64(7), "Abu Simbel", "Day trip", int64(22000), "USD", int64(1), int64(12), true, nil, created))

	tour, err := repo.CreateTour(context.Background(), entity.Tour{
		Title:        "Abu Simbel",
		Description:  "Day trip",
		BasePrice:    22000,
		DurationDays: 1,
		Capacity:     12,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), tour.ID)
	assert.Nil(t, tour.Images)
	assert.Equal(t, created, tour.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateTour(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	query := regexp.QuoteMeta(`UPDATE tours SET base_price = $1, images = $2 WHERE id = $3 RETURNING`)
	patch := entity.TourPatch{
		BasePrice: entity.Some[int64](47500),
		Images:    entity.Null[entity.StringList](),
	}

	t.Run("updated", func(t *testing.T) {
		repo := setup(t)
		mock.ExpectQuery(query).
			WithArgs(int64(47500), nil, int64(3)).
			WillReturnRows(sqlmock.NewRows(tourCols).
				AddRow(int64(3), "White Desert", "Camping", int64(47500), "USD", int64(2), int64(8), true, nil, created))

		tour, err := repo.UpdateTour(context.Background(), 3, patch)

		require.NoError(t, err)
		require.NotNil(t, tour)
		assert.Equal(t, int64(47500), tour.BasePrice)
		assert.Nil(t, tour.Images)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := setup(t)
		mock.ExpectQuery(query).
			WithArgs(int64(47500), nil, int64(404)).
			WillReturnRows(sqlmock.NewRows(tourCols))

		tour, err := repo.UpdateTour(context.Background(), 404, patch)

		assert.NoError(t, err)
		assert.Nil(t, tour)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty patch reads the row", func(t *testing.T) {
		repo := setup(t)
		mock.ExpectQuery(`SELECT (.+) FROM tours WHERE id = \$1`).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(tourCols))

		tour, err := repo.UpdateTour(context.Background(), 3, entity.TourPatch{})

		assert.NoError(t, err)
		assert.Nil(t, tour)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresUpdateBooking(t *testing.T) {
	repo := setup(t)
	booked := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	travel := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE bookings SET status = $1 WHERE id = $2 RETURNING`)).
		WithArgs("confirmed", int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "tour_id", "booking_date", "travel_date", "head_count", "total_amount", "status", "notes"}).
			AddRow(int64(5), int64(1), int64(2), booked, travel, int64(2), int64(30000), "confirmed", nil))

	booking, err := repo.UpdateBooking(context.Background(), 5, entity.BookingPatch{Status: entity.Some(entity.BookingConfirmed)})

	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.Equal(t, entity.BookingConfirmed, booking.Status)
	assert.Equal(t, booked, booking.BookingDate)
	assert.Nil(t, booking.Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateCustomerPassesJSON(t *testing.T) {
	repo := setup(t)
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO customers`).
		WithArgs("Alice Smith", "alice@example.com", nil, nil, []byte(`{"number":"A12345678","expiry":"2030-01-01"}`), nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "phone", "nationality", "passport_details", "notes", "created_at"}).
			AddRow(int64(1), "Alice Smith", "alice@example.com", nil, nil, []byte(`{"number":"A12345678","expiry":"2030-01-01"}`), nil, created))

	customer, err := repo.CreateCustomer(context.Background(), entity.Customer{
		FullName:        "Alice Smith",
		Email:           "alice@example.com",
		PassportDetails: &entity.PassportDetails{Number: "A12345678", Expiry: "2030-01-01"},
	})

	require.NoError(t, err)
	assert.Equal(t, &entity.PassportDetails{Number: "A12345678", Expiry: "2030-01-01"}, customer.PassportDetails)
	assert.Nil(t, customer.Phone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateUserDuplicate(t *testing.T) {
	repo := setup(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := repo.CreateUser(context.Background(), entity.User{Username: "nadia", Password: "hash", FullName: "Nadia"})

	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListsAreNeverNil(t *testing.T) {
	repo := setup(t)

	mock.ExpectQuery(`SELECT (.+) FROM payments`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "amount", "currency", "method", "status", "transaction_ref", "payment_date"}))

	payments, err := repo.GetPayments(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, payments)
	assert.Empty(t, payments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresNotInitialized(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgres(nil, log.Setup())

	_, err := repo.GetTours(ctx)
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = repo.GetTour(ctx, 1)
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = repo.CreateBooking(ctx, entity.Booking{CustomerID: 1, TourID: 1})
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = repo.UpdateBooking(ctx, 1, entity.BookingPatch{})
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = repo.GetUserByUsername(ctx, "nadia")
	assert.ErrorIs(t, err, ErrNotInitialized)

	assert.ErrorIs(t, repo.Ping(ctx), ErrNotInitialized)
	assert.NoError(t, repo.Close())
}

func TestMigrate(t *testing.T) {
	setup(t)
	for range schema {
		mock.ExpectExec(`.+`).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, Migrate(context.Background(), dbx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateStopsOnError(t *testing.T) {
	setup(t)
	mock.ExpectExec(`CREATE TYPE user_role`).WillReturnError(stderrors.New("permission denied"))

	err := Migrate(context.Background(), dbx)
	assert.ErrorContains(t, err, "migrate statement 1")
}

func TestSchemaStoresInt64Columns(t *testing.T) {
	for i, stmt := range schema {
		assert.NotRegexp(t, `\bINTEGER\b`, stmt, "statement %d", i+1)
		assert.NotRegexp(t, `\bSERIAL\b`, stmt, "statement %d", i+1)
	}
	assert.Contains(t, schema[len(schema)-1], "amount BIGINT NOT NULL")
}
