package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/kavindu27/hotel_reservation/internal/core/domain"
)

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = "id, customer_id, room_id, check_in, check_out, status, created_at"

func scanBooking(row interface{ Scan(...any) error }) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID,
		&b.CustomerID,
		&b.RoomID,
		&b.CheckIn,
		&b.CheckOut,
		&b.Status,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CheckIn = domain.NormalizeDate(b.CheckIn)
	b.CheckOut = domain.NormalizeDate(b.CheckOut)

	return &b, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, bookingID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}

		return nil, err
	}

	return booking, nil
}

func (r *BookingRepository) GetActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]domain.Booking, error) {
	query := `
	SELECT ` + bookingColumns + `
	FROM bookings
	WHERE room_id = $1 AND status IN ('PENDING', 'CONFIRMED')
	ORDER BY check_in
	`

	return r.queryBookings(ctx, query, roomID)
}

// Create runs the availability re-check and the insert inside one
// transaction. The SELECT ... FOR UPDATE on the room row serializes
// concurrent creators for the same room, so the overlap check cannot
// go stale between read and insert. The bookings_no_active_overlap
// exclusion constraint backs this up at commit time.
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	var roomID uuid.UUID
	err = tx.QueryRowContext(ctx, `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`, booking.RoomID).Scan(&roomID)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.ErrNotFound
		}

		return fmt.Errorf("failed to lock room: %w", err)
	}

	var conflict bool
	err = tx.QueryRowContext(ctx, `
	SELECT EXISTS (
		SELECT 1 FROM bookings
		WHERE room_id = $1
		  AND status IN ('PENDING', 'CONFIRMED')
		  AND check_in < $3
		  AND check_out > $2
	)`, booking.RoomID, booking.CheckIn, booking.CheckOut).Scan(&conflict)
	if err != nil {
		return fmt.Errorf("failed to check availability: %w", err)
	}

	if conflict {
		return domain.ErrRoomUnavailable
	}

	_, err = tx.ExecContext(ctx, `
	INSERT INTO bookings (id, customer_id, room_id, check_in, check_out, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, booking.ID, booking.CustomerID, booking.RoomID, booking.CheckIn, booking.CheckOut, booking.Status, booking.CreatedAt)
	if err != nil {
		if isExclusionViolation(err) {
			return domain.ErrRoomUnavailable
		}

		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		if isExclusionViolation(err) {
			return domain.ErrRoomUnavailable
		}

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status domain.BookingStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE bookings SET status = $1 WHERE id = $2`, status, bookingID)
	if err != nil {
		if isExclusionViolation(err) {
			return domain.ErrRoomUnavailable
		}

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Booking, error) {
	query := `
	SELECT ` + bookingColumns + `
	FROM bookings
	WHERE customer_id = $1
	ORDER BY created_at DESC
	`

	return r.queryBookings(ctx, query, customerID)
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC`

	return r.queryBookings(ctx, query)
}

func (r *BookingRepository) CountByStatus(ctx context.Context) (map[domain.BookingStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM bookings GROUP BY status`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	counts := make(map[domain.BookingStatus]int)
	for rows.Next() {
		var status domain.BookingStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}

		counts[status] = n
	}

	return counts, rows.Err()
}

func (r *BookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}

		bookings = append(bookings, *booking)
	}

	return bookings, rows.Err()
}
