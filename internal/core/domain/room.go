package domain

import "github.com/google/uuid"

type RoomType string

const (
	RoomSingle RoomType = "SINGLE"
	RoomDouble RoomType = "DOUBLE"
	RoomSuite  RoomType = "SUITE"
)

// RoomStatus is a staff-facing flag. Availability is always recomputed
// from active bookings; only MAINTENANCE removes a room from search.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomBooked      RoomStatus = "BOOKED"
	RoomMaintenance RoomStatus = "MAINTENANCE"
)

type Room struct {
	ID          uuid.UUID
	Number      string
	Type        RoomType
	PriceCents  int64
	Status      RoomStatus
	Description string
}

func (r *Room) Bookable() bool {
	return r.Status != RoomMaintenance
}

func ValidRoomType(t RoomType) bool {
	switch t {
	case RoomSingle, RoomDouble, RoomSuite:
		return true
	}
	return false
}

func ValidRoomStatus(s RoomStatus) bool {
	switch s {
	case RoomAvailable, RoomBooked, RoomMaintenance:
		return true
	}
	return false
}
