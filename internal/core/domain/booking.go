package domain

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	RoomID     uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	Status     BookingStatus
	CreatedAt  time.Time
}

// Active bookings are the ones that count toward overlap checks.
func (b *Booking) Active() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

// CanTransitionTo enforces the booking state machine. Completed and
// Cancelled are terminal; a reflexive transition is always a no-op.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	if b.Status == next {
		return true
	}
	switch b.Status {
	case BookingPending:
		return next == BookingConfirmed || next == BookingCompleted || next == BookingCancelled
	case BookingConfirmed:
		return next == BookingCompleted || next == BookingCancelled
	}
	return false
}
