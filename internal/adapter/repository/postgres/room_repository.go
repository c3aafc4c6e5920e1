package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/kavindu27/hotel_reservation/internal/core/domain"
)

type RoomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

const roomColumns = "id, room_number, room_type, price_cents, status, description"

func scanRoom(row interface{ Scan(...any) error }) (*domain.Room, error) {
	var room domain.Room
	err := row.Scan(
		&room.ID,
		&room.Number,
		&room.Type,
		&room.PriceCents,
		&room.Status,
		&room.Description,
	)
	if err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *RoomRepository) GetByID(ctx context.Context, roomID uuid.UUID) (*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	room, err := scanRoom(r.db.QueryRowContext(ctx, query, roomID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}

		return nil, err
	}

	return room, nil
}

func (r *RoomRepository) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE room_number = $1`

	room, err := scanRoom(r.db.QueryRowContext(ctx, query, number))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}

		return nil, err
	}

	return room, nil
}

func (r *RoomRepository) List(ctx context.Context, statusFilter *domain.RoomStatus, typeFilter *domain.RoomType) ([]domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms`

	var conds []string
	var args []any

	if statusFilter != nil {
		args = append(args, *statusFilter)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	if typeFilter != nil {
		args = append(args, *typeFilter)
		conds = append(conds, fmt.Sprintf("room_type = $%d", len(args)))
	}

	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	query += " ORDER BY room_number"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}

		rooms = append(rooms, *room)
	}

	return rooms, rows.Err()
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `
	INSERT INTO rooms (id, room_number, room_type, price_cents, status, description)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query, room.ID, room.Number, room.Type, room.PriceCents, room.Status, room.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRoomNumber
		}

		return fmt.Errorf("failed to insert room: %w", err)
	}

	return nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	query := `
	UPDATE rooms
	SET room_number = $1, room_type = $2, price_cents = $3, status = $4, description = $5
	WHERE id = $6
	`

	result, err := r.db.ExecContext(ctx, query, room.Number, room.Type, room.PriceCents, room.Status, room.Description, room.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRoomNumber
		}

		return fmt.Errorf("failed to update room: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete fails while any booking still references the room; the
// bookings foreign key enforces it.
func (r *RoomRepository) Delete(ctx context.Context, roomID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, roomID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrRoomInUse
		}

		return fmt.Errorf("failed to delete room: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *RoomRepository) CountByStatus(ctx context.Context) (map[domain.RoomStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM rooms GROUP BY status`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	counts := make(map[domain.RoomStatus]int)
	for rows.Next() {
		var status domain.RoomStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}

		counts[status] = n
	}

	return counts, rows.Err()
}

func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}

	return false
}

func isForeignKeyViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23503"
	}

	return false
}

func isExclusionViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23P01"
	}

	return false
}
