package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kavindu27/hotel_reservation/internal/core/domain"
)

func TestBookingCanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to domain.BookingStatus
		want     bool
	}{
		{domain.BookingPending, domain.BookingConfirmed, true},
		{domain.BookingPending, domain.BookingCompleted, true},
		{domain.BookingPending, domain.BookingCancelled, true},
		{domain.BookingConfirmed, domain.BookingCompleted, true},
		{domain.BookingConfirmed, domain.BookingCancelled, true},
		{domain.BookingConfirmed, domain.BookingPending, false},
		{domain.BookingCompleted, domain.BookingCancelled, false},
		{domain.BookingCompleted, domain.BookingPending, false},
		{domain.BookingCancelled, domain.BookingConfirmed, false},
		{domain.BookingCancelled, domain.BookingCompleted, false},
		// reflexive no-ops
		{domain.BookingPending, domain.BookingPending, true},
		{domain.BookingCompleted, domain.BookingCompleted, true},
		{domain.BookingCancelled, domain.BookingCancelled, true},
	}

	for _, tt := range tests {
		b := domain.Booking{Status: tt.from}
		assert.Equal(t, tt.want, b.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestBookingActive(t *testing.T) {
	assert.True(t, (&domain.Booking{Status: domain.BookingPending}).Active())
	assert.True(t, (&domain.Booking{Status: domain.BookingConfirmed}).Active())
	assert.False(t, (&domain.Booking{Status: domain.BookingCompleted}).Active())
	assert.False(t, (&domain.Booking{Status: domain.BookingCancelled}).Active())
}
