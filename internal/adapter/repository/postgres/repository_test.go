package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavindu27/hotel_reservation/internal/core/domain"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db, mock
}

func fixtureBooking() *domain.Booking {
	return &domain.Booking{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		RoomID:     uuid.New(),
		CheckIn:    time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC),
		Status:     domain.BookingPending,
		CreatedAt:  time.Now().UTC(),
	}
}

// The engine's commit-time conflict handling hangs on these code
// strings; a typo here would silently turn every constraint rejection
// into a generic 500.
func TestPqErrorCodeMapping(t *testing.T) {
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("unique_violation")))

	assert.True(t, isForeignKeyViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isForeignKeyViolation(&pq.Error{Code: "23505"}))
	assert.False(t, isForeignKeyViolation(errors.New("foreign_key_violation")))

	assert.True(t, isExclusionViolation(&pq.Error{Code: "23P01"}))
	assert.False(t, isExclusionViolation(&pq.Error{Code: "23505"}))
	assert.False(t, isExclusionViolation(sql.ErrNoRows))
	assert.False(t, isExclusionViolation(nil))
}

func TestBookingCreate_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)
	booking := fixtureBooking()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM rooms").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(booking.RoomID.String()))
	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), booking)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingCreate_RoomMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM rooms").WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.Create(context.Background(), fixtureBooking())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingCreate_OverlapDetectedInTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)
	booking := fixtureBooking()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM rooms").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(booking.RoomID.String()))
	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), booking)

	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingCreate_ExclusionConstraintOnInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)
	booking := fixtureBooking()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM rooms").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(booking.RoomID.String()))
	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: "23P01", Constraint: "bookings_no_active_overlap"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), booking)

	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingUpdateStatus_ExclusionConstraint(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectExec("UPDATE bookings SET status").
		WillReturnError(&pq.Error{Code: "23P01", Constraint: "bookings_no_active_overlap"})

	err := repo.UpdateStatus(context.Background(), uuid.New(), domain.BookingConfirmed)

	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingUpdateStatus_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectExec("UPDATE bookings SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), uuid.New(), domain.BookingCancelled)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomCreate_DuplicateNumber(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepository(db)

	mock.ExpectExec("INSERT INTO rooms").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "rooms_room_number_key"})

	err := repo.Create(context.Background(), &domain.Room{
		ID:         uuid.New(),
		Number:     "101",
		Type:       domain.RoomSingle,
		PriceCents: 150000,
		Status:     domain.RoomAvailable,
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateRoomNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomDelete_InUse(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepository(db)

	mock.ExpectExec("DELETE FROM rooms").
		WillReturnError(&pq.Error{Code: "23503", Constraint: "bookings_room_id_fkey"})

	err := repo.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrRoomInUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentCreate_ConfirmsInSameTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO payments").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bookings SET status").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), &domain.Payment{
		ID:          uuid.New(),
		BookingID:   uuid.New(),
		AmountCents: 450000,
		Mode:        domain.PaymentCard,
		PaidAt:      time.Now().UTC(),
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentCreate_UnknownBooking(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO payments").
		WillReturnError(&pq.Error{Code: "23503", Constraint: "payments_booking_id_fkey"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &domain.Payment{
		ID:          uuid.New(),
		BookingID:   uuid.New(),
		AmountCents: 10000,
		Mode:        domain.PaymentCash,
		PaidAt:      time.Now().UTC(),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
