package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

func NewPostgresDB(cfg Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)

	var db *sql.DB
	var err error
	maxRetries := 10

	for i := 1; i <= maxRetries; i++ {
		log.Printf("Connecting to database (Attempt %d/%d)...", i, maxRetries)
		db, err = sql.Open("postgres", connStr)
		if err == nil {
			err = db.Ping()
		}

		if err == nil {
			log.Println("Database connected successfully!")
			return db, nil
		}

		log.Printf("Database not ready yet. Waiting 2 seconds...")
		time.Sleep(2 * time.Second)
	}

	return nil, fmt.Errorf("failed to connect to database: %v", err)
}

// schema carries the storage-level guarantees the engine relies on:
// the unique room number, the check_out > check_in check, and the gist
// exclusion constraint that makes overlapping active bookings on one
// room impossible to commit regardless of request interleaving.
const schema = `
CREATE EXTENSION IF NOT EXISTS btree_gist;

CREATE TABLE IF NOT EXISTS rooms (
	id UUID PRIMARY KEY,
	room_number TEXT NOT NULL UNIQUE,
	room_type TEXT NOT NULL,
	price_cents BIGINT NOT NULL CHECK (price_cents > 0),
	status TEXT NOT NULL DEFAULT 'AVAILABLE',
	description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS bookings (
	id UUID PRIMARY KEY,
	customer_id UUID NOT NULL,
	room_id UUID NOT NULL REFERENCES rooms(id),
	check_in DATE NOT NULL,
	check_out DATE NOT NULL,
	status TEXT NOT NULL DEFAULT 'PENDING',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CHECK (check_out > check_in),
	CONSTRAINT bookings_no_active_overlap EXCLUDE USING gist (
		room_id WITH =,
		daterange(check_in, check_out) WITH &&
	) WHERE (status IN ('PENDING', 'CONFIRMED'))
);

CREATE TABLE IF NOT EXISTS payments (
	id UUID PRIMARY KEY,
	booking_id UUID NOT NULL REFERENCES bookings(id),
	amount_cents BIGINT NOT NULL CHECK (amount_cents > 0),
	payment_mode TEXT NOT NULL,
	paid_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_bookings_room_status ON bookings (room_id, status);
CREATE INDEX IF NOT EXISTS idx_bookings_customer ON bookings (customer_id);
CREATE INDEX IF NOT EXISTS idx_payments_booking ON payments (booking_id);
`

func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	log.Println("Database schema is up to date.")
	return nil
}
