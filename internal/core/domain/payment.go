package domain

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMode string

const (
	PaymentCard       PaymentMode = "CARD"
	PaymentUPI        PaymentMode = "UPI"
	PaymentCash       PaymentMode = "CASH"
	PaymentNetBanking PaymentMode = "NETBANKING"
)

func ValidPaymentMode(m PaymentMode) bool {
	switch m {
	case PaymentCard, PaymentUPI, PaymentCash, PaymentNetBanking:
		return true
	}
	return false
}

// Payment is an append-only ledger entry. Amounts are integer cents so
// sums never accumulate floating-point error.
type Payment struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	AmountCents int64
	Mode        PaymentMode
	PaidAt      time.Time
}
