package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/kavindu27/hotel_reservation/internal/core/domain"
)

type RoomRepository interface {
	GetByID(ctx context.Context, roomID uuid.UUID) (*domain.Room, error)
	GetByNumber(ctx context.Context, number string) (*domain.Room, error)
	List(ctx context.Context, statusFilter *domain.RoomStatus, typeFilter *domain.RoomType) ([]domain.Room, error)
	Create(ctx context.Context, room *domain.Room) error
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, roomID uuid.UUID) error
	CountByStatus(ctx context.Context) (map[domain.RoomStatus]int, error)
}

type BookingRepository interface {
	GetByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error)
	GetActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]domain.Booking, error)

	// Create must re-check availability and insert as one atomic unit
	// with respect to other Create calls on the same room.
	Create(ctx context.Context, booking *domain.Booking) error

	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status domain.BookingStatus) error
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	CountByStatus(ctx context.Context) (map[domain.BookingStatus]int, error)
}

type PaymentRepository interface {
	// Create appends a payment and, in the same transaction, moves the
	// booking from Pending to Confirmed. Repeat payments leave the
	// status untouched.
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, paymentID uuid.UUID) (*domain.Payment, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]domain.Payment, error)
	ListAll(ctx context.Context) ([]domain.Payment, error)
	TotalPaidCents(ctx context.Context, bookingID uuid.UUID) (int64, error)
	SumAllCents(ctx context.Context) (int64, error)
}
