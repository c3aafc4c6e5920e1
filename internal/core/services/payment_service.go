package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/kavindu27/hotel_reservation/internal/core/domain"
	"github.com/kavindu27/hotel_reservation/internal/core/ports"
)

const statsCacheTTL = 30 * time.Second

type DashboardStats struct {
	TotalRooms        int   `json:"total_rooms"`
	AvailableRooms    int   `json:"available_rooms"`
	MaintenanceRooms  int   `json:"maintenance_rooms"`
	TotalBookings     int   `json:"total_bookings"`
	PendingBookings   int   `json:"pending_bookings"`
	ConfirmedBookings int   `json:"confirmed_bookings"`
	CompletedBookings int   `json:"completed_bookings"`
	CancelledBookings int   `json:"cancelled_bookings"`
	TotalRevenueCents int64 `json:"total_revenue_cents"`
}

type PaymentService struct {
	roomRepo    ports.RoomRepository
	bookingRepo ports.BookingRepository
	paymentRepo ports.PaymentRepository
	cache       *redis.Client
}

func NewPaymentService(roomRepo ports.RoomRepository, bookingRepo ports.BookingRepository, paymentRepo ports.PaymentRepository, cache *redis.Client) *PaymentService {
	return &PaymentService{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		cache:       cache,
	}
}

// RecordPayment appends a ledger entry. The store confirms the booking
// in the same transaction when it is still Pending, so the status never
// regresses on repeat payments and the pair commits or fails as one.
func (s *PaymentService) RecordPayment(ctx context.Context, bookingID uuid.UUID, amountCents int64, mode domain.PaymentMode) (*domain.Payment, error) {
	if amountCents <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status == domain.BookingCancelled {
		return nil, domain.ErrBookingCancelled
	}

	payment := &domain.Payment{
		ID:          uuid.New(),
		BookingID:   bookingID,
		AmountCents: amountCents,
		Mode:        mode,
		PaidAt:      time.Now().UTC(),
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)

	return payment, nil
}

func (s *PaymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.paymentRepo.ListAll(ctx)
}

func (s *PaymentService) ListPaymentsForBooking(ctx context.Context, bookingID uuid.UUID) ([]domain.Payment, error) {
	if _, err := s.bookingRepo.GetByID(ctx, bookingID); err != nil {
		return nil, err
	}

	return s.paymentRepo.ListByBooking(ctx, bookingID)
}

func (s *PaymentService) TotalPaid(ctx context.Context, bookingID uuid.UUID) (int64, error) {
	if _, err := s.bookingRepo.GetByID(ctx, bookingID); err != nil {
		return 0, err
	}

	return s.paymentRepo.TotalPaidCents(ctx, bookingID)
}

// DashboardStats aggregates counts for the admin view. The snapshot is
// cached briefly; every write path deletes the key.
func (s *PaymentService) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, statsCacheKey).Result()
		if err == nil {
			var cached DashboardStats
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		} else if err != redis.Nil {
			log.Printf("Stats cache read failed: %v", err)
		}
	}

	roomCounts, err := s.roomRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	bookingCounts, err := s.bookingRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := s.paymentRepo.SumAllCents(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		AvailableRooms:    roomCounts[domain.RoomAvailable],
		MaintenanceRooms:  roomCounts[domain.RoomMaintenance],
		PendingBookings:   bookingCounts[domain.BookingPending],
		ConfirmedBookings: bookingCounts[domain.BookingConfirmed],
		CompletedBookings: bookingCounts[domain.BookingCompleted],
		CancelledBookings: bookingCounts[domain.BookingCancelled],
		TotalRevenueCents: revenue,
	}

	for _, n := range roomCounts {
		stats.TotalRooms += n
	}
	for _, n := range bookingCounts {
		stats.TotalBookings += n
	}

	if s.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, raw, statsCacheTTL).Err(); err != nil {
				log.Printf("Stats cache write failed: %v", err)
			}
		}
	}

	return stats, nil
}

func (s *PaymentService) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Del(ctx, statsCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate stats cache: %v", err)
	}
}
