package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/kavindu27/hotel_reservation/internal/core/domain"
)

type PaymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const paymentColumns = "id, booking_id, amount_cents, payment_mode, paid_at"

func scanPayment(row interface{ Scan(...any) error }) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(
		&p.ID,
		&p.BookingID,
		&p.AmountCents,
		&p.Mode,
		&p.PaidAt,
	)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// Create appends the payment and confirms a still-pending booking in
// the same transaction. Callers never observe a payment row without
// the matching status transition.
func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
	INSERT INTO payments (id, booking_id, amount_cents, payment_mode, paid_at)
	VALUES ($1, $2, $3, $4, $5)
	`, payment.ID, payment.BookingID, payment.AmountCents, payment.Mode, payment.PaidAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}

		return fmt.Errorf("failed to insert payment: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
	UPDATE bookings SET status = 'CONFIRMED'
	WHERE id = $1 AND status = 'PENDING'
	`, payment.BookingID)
	if err != nil {
		return fmt.Errorf("failed to confirm booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, paymentID uuid.UUID) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	payment, err := scanPayment(r.db.QueryRowContext(ctx, query, paymentID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}

		return nil, err
	}

	return payment, nil
}

func (r *PaymentRepository) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE booking_id = $1 ORDER BY paid_at`

	return r.queryPayments(ctx, query, bookingID)
}

func (r *PaymentRepository) ListAll(ctx context.Context) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY paid_at DESC`

	return r.queryPayments(ctx, query)
}

func (r *PaymentRepository) TotalPaidCents(ctx context.Context, bookingID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `
	SELECT COALESCE(SUM(amount_cents), 0) FROM payments WHERE booking_id = $1
	`, bookingID).Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}

func (r *PaymentRepository) SumAllCents(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount_cents), 0) FROM payments`).Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}

func (r *PaymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}

		payments = append(payments, *payment)
	}

	return payments, rows.Err()
}
