package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/kavindu27/hotel_reservation/internal/core/domain"
	"github.com/kavindu27/hotel_reservation/internal/core/ports"
)

// RoomService covers the staff catalog operations. The reservation
// engine only reads price and status; everything else here exists for
// the admin surface.
type RoomService struct {
	roomRepo ports.RoomRepository
	cache    *redis.Client
}

func NewRoomService(roomRepo ports.RoomRepository, cache *redis.Client) *RoomService {
	return &RoomService{roomRepo: roomRepo, cache: cache}
}

func validateRoom(room *domain.Room) error {
	if strings.TrimSpace(room.Number) == "" {
		return domain.ErrInvalidRoom
	}
	if !domain.ValidRoomType(room.Type) {
		return domain.ErrInvalidRoom
	}
	if !domain.ValidRoomStatus(room.Status) {
		return domain.ErrInvalidRoom
	}
	if room.PriceCents <= 0 {
		return domain.ErrInvalidRoom
	}
	return nil
}

func (s *RoomService) CreateRoom(ctx context.Context, room *domain.Room) error {
	if err := validateRoom(room); err != nil {
		return err
	}

	if room.ID == uuid.Nil {
		room.ID = uuid.New()
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		return err
	}

	s.invalidateStats(ctx)

	return nil
}

func (s *RoomService) UpdateRoom(ctx context.Context, room *domain.Room) error {
	if err := validateRoom(room); err != nil {
		return err
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		return err
	}

	s.invalidateStats(ctx)

	return nil
}

// DeleteRoom refuses while any booking still references the room.
func (s *RoomService) DeleteRoom(ctx context.Context, roomID uuid.UUID) error {
	if err := s.roomRepo.Delete(ctx, roomID); err != nil {
		return err
	}

	s.invalidateStats(ctx)

	return nil
}

func (s *RoomService) GetRoom(ctx context.Context, roomID uuid.UUID) (*domain.Room, error) {
	return s.roomRepo.GetByID(ctx, roomID)
}

// GetRoomByNumber resolves the human-facing room number staff use at
// the desk.
func (s *RoomService) GetRoomByNumber(ctx context.Context, number string) (*domain.Room, error) {
	if strings.TrimSpace(number) == "" {
		return nil, domain.ErrInvalidRoom
	}

	return s.roomRepo.GetByNumber(ctx, number)
}

func (s *RoomService) ListRooms(ctx context.Context, statusFilter *domain.RoomStatus, typeFilter *domain.RoomType) ([]domain.Room, error) {
	return s.roomRepo.List(ctx, statusFilter, typeFilter)
}

func (s *RoomService) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Del(ctx, statsCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate stats cache: %v", err)
	}
}
