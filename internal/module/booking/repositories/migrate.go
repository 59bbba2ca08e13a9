package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schema = []string{
	`DO $$ BEGIN
		CREATE TYPE user_role AS ENUM ('admin', 'manager', 'sales', 'operations', 'accountant');
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`DO $$ BEGIN
		CREATE TYPE booking_status AS ENUM ('pending', 'confirmed', 'cancelled', 'completed');
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`DO $$ BEGIN
		CREATE TYPE payment_status AS ENUM ('pending', 'paid', 'failed', 'refunded');
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`DO $$ BEGIN
		CREATE TYPE payment_method AS ENUM ('cash', 'paypal', 'paymob', 'bank_transfer');
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		full_name TEXT NOT NULL,
		role user_role NOT NULL DEFAULT 'sales',
		email TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS tours (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		base_price BIGINT NOT NULL,
		currency TEXT NOT NULL DEFAULT 'USD',
		duration_days BIGINT NOT NULL,
		capacity BIGINT NOT NULL,
		is_active BOOLEAN DEFAULT true,
		images JSONB,
		created_at TIMESTAMP NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id BIGSERIAL PRIMARY KEY,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		nationality TEXT,
		passport_details JSONB,
		notes TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGSERIAL PRIMARY KEY,
		customer_id BIGINT NOT NULL,
		tour_id BIGINT NOT NULL,
		booking_date TIMESTAMP NOT NULL DEFAULT now(),
		travel_date TIMESTAMP NOT NULL,
		head_count BIGINT NOT NULL DEFAULT 1,
		total_amount BIGINT NOT NULL,
		status booking_status NOT NULL DEFAULT 'pending',
		notes TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id BIGSERIAL PRIMARY KEY,
		booking_id BIGINT NOT NULL,
		amount BIGINT NOT NULL,
		currency TEXT NOT NULL DEFAULT 'USD',
		method payment_method NOT NULL,
		status payment_status NOT NULL DEFAULT 'pending',
		transaction_ref TEXT,
		payment_date TIMESTAMP NOT NULL DEFAULT now()
	)`,
}

// Migrate creates the enum types and tables when they are missing. It is
// safe to run on every start.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate statement %d: %w", i+1, err)
		}
	}
	return nil
}
