package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/kavindu27/hotel_reservation/internal/core/domain"
	"github.com/kavindu27/hotel_reservation/internal/core/ports"
)

// statsCacheKey holds the cached dashboard snapshot. Every write path
// deletes it so the next read recomputes. Availability itself is never
// cached; it is recomputed from booking rows on every query.
const statsCacheKey = "stats:dashboard"

type ReservationService struct {
	roomRepo    ports.RoomRepository
	bookingRepo ports.BookingRepository
	cache       *redis.Client
}

func NewReservationService(roomRepo ports.RoomRepository, bookingRepo ports.BookingRepository, cache *redis.Client) *ReservationService {
	return &ReservationService{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		cache:       cache,
	}
}

// IsAvailable re-scans the room's active bookings on every call. Stale
// answers are acceptable for search; CreateBooking re-validates inside
// the store transaction.
func (s *ReservationService) IsAvailable(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	bookings, err := s.bookingRepo.GetActiveByRoom(ctx, roomID)
	if err != nil {
		return false, err
	}

	for _, b := range bookings {
		if domain.Overlaps(checkIn, checkOut, b.CheckIn, b.CheckOut) {
			return false, nil
		}
	}

	return true, nil
}

// SearchAvailableRooms returns bookable rooms with no active-booking
// overlap for [checkIn, checkOut), ordered by room number.
func (s *ReservationService) SearchAvailableRooms(ctx context.Context, checkIn, checkOut time.Time, typeFilter *domain.RoomType) ([]domain.Room, error) {
	checkIn = domain.NormalizeDate(checkIn)
	checkOut = domain.NormalizeDate(checkOut)

	if !checkOut.After(checkIn) {
		return nil, domain.ErrInvalidRange
	}

	rooms, err := s.roomRepo.List(ctx, nil, typeFilter)
	if err != nil {
		return nil, err
	}

	var available []domain.Room
	for _, room := range rooms {
		if !room.Bookable() {
			continue
		}

		ok, err := s.IsAvailable(ctx, room.ID, checkIn, checkOut)
		if err != nil {
			return nil, err
		}

		if ok {
			available = append(available, room)
		}
	}

	return available, nil
}

// CreateBooking inserts a Pending booking. The availability re-check
// and the insert run as one atomic unit in the store, so two
// concurrent requests for overlapping dates cannot both succeed.
func (s *ReservationService) CreateBooking(ctx context.Context, customerID, roomID uuid.UUID, checkIn, checkOut time.Time) (*domain.Booking, error) {
	checkIn = domain.NormalizeDate(checkIn)
	checkOut = domain.NormalizeDate(checkOut)

	if !checkOut.After(checkIn) {
		return nil, domain.ErrInvalidRange
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if !room.Bookable() {
		return nil, domain.ErrRoomUnavailable
	}

	booking := &domain.Booking{
		ID:         uuid.New(),
		CustomerID: customerID,
		RoomID:     roomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     domain.BookingPending,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)

	return booking, nil
}

// CancelBooking frees the room's capacity for the booking's interval.
// Cancelling an already-cancelled booking is a no-op, not an error.
func (s *ReservationService) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status == domain.BookingCancelled {
		return booking, nil
	}

	if !booking.CanTransitionTo(domain.BookingCancelled) {
		return nil, domain.ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.BookingCancelled); err != nil {
		return nil, err
	}

	booking.Status = domain.BookingCancelled
	s.invalidateStats(ctx)

	return booking, nil
}

// SetBookingStatus is the staff override. It enforces the transition
// table but deliberately skips the availability re-check, matching the
// original administrative behavior. The storage-level exclusion
// constraint still rejects an override that would put two active
// bookings on the same dates.
func (s *ReservationService) SetBookingStatus(ctx context.Context, bookingID uuid.UUID, status domain.BookingStatus) error {
	if !domain.ValidBookingStatus(status) {
		return domain.ErrInvalidTransition
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.Status == status {
		return nil
	}

	if !booking.CanTransitionTo(status) {
		return domain.ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, status); err != nil {
		return err
	}

	s.invalidateStats(ctx)

	return nil
}

func (s *ReservationService) ListBookingsByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Booking, error) {
	return s.bookingRepo.ListByCustomer(ctx, customerID)
}

func (s *ReservationService) ListAllBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.ListAll(ctx)
}

func (s *ReservationService) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Del(ctx, statsCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate stats cache: %v", err)
	}
}
