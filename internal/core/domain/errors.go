package domain

import "errors"

var (
	ErrInvalidRange        = errors.New("check-out must be after check-in")
	ErrRoomUnavailable     = errors.New("room is not available for the requested dates")
	ErrNotFound            = errors.New("not found")
	ErrInvalidAmount       = errors.New("payment amount must be positive")
	ErrBookingCancelled    = errors.New("booking is cancelled")
	ErrInvalidTransition   = errors.New("invalid booking status transition")
	ErrDuplicateRoomNumber = errors.New("room number already exists")
	ErrInvalidRoom         = errors.New("invalid room fields")
	ErrRoomInUse           = errors.New("room has bookings and cannot be deleted")
	ErrStorageUnavailable  = errors.New("storage unavailable")
)
