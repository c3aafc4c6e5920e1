package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/kavindu27/hotel_reservation/internal/core/domain"
	"github.com/kavindu27/hotel_reservation/internal/core/services"
)

type RoomHandler struct {
	rooms        *services.RoomService
	reservations *services.ReservationService
}

func NewRoomHandler(rooms *services.RoomService, reservations *services.ReservationService) *RoomHandler {
	return &RoomHandler{rooms: rooms, reservations: reservations}
}

type roomPayload struct {
	Number      string `json:"number"`
	Type        string `json:"type"`
	PriceCents  int64  `json:"price_cents"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

type roomResponse struct {
	ID          string `json:"id"`
	Number      string `json:"number"`
	Type        string `json:"type"`
	PriceCents  int64  `json:"price_cents"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

func toRoomResponse(room *domain.Room) roomResponse {
	return roomResponse{
		ID:          room.ID.String(),
		Number:      room.Number,
		Type:        string(room.Type),
		PriceCents:  room.PriceCents,
		Status:      string(room.Status),
		Description: room.Description,
	}
}

func roomResponses(rooms []domain.Room) []roomResponse {
	out := make([]roomResponse, 0, len(rooms))
	for i := range rooms {
		out = append(out, toRoomResponse(&rooms[i]))
	}

	return out
}

func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	var statusFilter *domain.RoomStatus
	var typeFilter *domain.RoomType

	if s := r.URL.Query().Get("status"); s != "" {
		status := domain.RoomStatus(s)
		if !domain.ValidRoomStatus(status) {
			respondBadRequest(w, "unknown room status")
			return
		}
		statusFilter = &status
	}

	if t := r.URL.Query().Get("type"); t != "" {
		roomType := domain.RoomType(t)
		if !domain.ValidRoomType(roomType) {
			respondBadRequest(w, "unknown room type")
			return
		}
		typeFilter = &roomType
	}

	rooms, err := h.rooms.ListRooms(r.Context(), statusFilter, typeFilter)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, roomResponses(rooms))
}

// SearchAvailableRooms answers GET /rooms/available with rooms free
// over [check_in, check_out).
func (h *RoomHandler) SearchAvailableRooms(w http.ResponseWriter, r *http.Request) {
	checkIn, err := domain.ParseDate(r.URL.Query().Get("check_in"))
	if err != nil {
		respondBadRequest(w, "check_in must be a date in YYYY-MM-DD form")
		return
	}

	checkOut, err := domain.ParseDate(r.URL.Query().Get("check_out"))
	if err != nil {
		respondBadRequest(w, "check_out must be a date in YYYY-MM-DD form")
		return
	}

	var typeFilter *domain.RoomType
	if t := r.URL.Query().Get("type"); t != "" {
		roomType := domain.RoomType(t)
		if !domain.ValidRoomType(roomType) {
			respondBadRequest(w, "unknown room type")
			return
		}
		typeFilter = &roomType
	}

	rooms, err := h.reservations.SearchAvailableRooms(r.Context(), checkIn, checkOut, typeFilter)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, roomResponses(rooms))
}

func (h *RoomHandler) GetRoomByNumber(w http.ResponseWriter, r *http.Request) {
	room, err := h.rooms.GetRoomByNumber(r.Context(), mux.Vars(r)["number"])
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toRoomResponse(room))
}

func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req roomPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid json body")
		return
	}

	room := &domain.Room{
		Number:      req.Number,
		Type:        domain.RoomType(req.Type),
		PriceCents:  req.PriceCents,
		Status:      domain.RoomStatus(req.Status),
		Description: req.Description,
	}
	if room.Status == "" {
		room.Status = domain.RoomAvailable
	}

	if err := h.rooms.CreateRoom(r.Context(), room); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toRoomResponse(room))
}

func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondBadRequest(w, "invalid room id")
		return
	}

	var req roomPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid json body")
		return
	}

	room := &domain.Room{
		ID:          roomID,
		Number:      req.Number,
		Type:        domain.RoomType(req.Type),
		PriceCents:  req.PriceCents,
		Status:      domain.RoomStatus(req.Status),
		Description: req.Description,
	}

	if err := h.rooms.UpdateRoom(r.Context(), room); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toRoomResponse(room))
}

func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondBadRequest(w, "invalid room id")
		return
	}

	if err := h.rooms.DeleteRoom(r.Context(), roomID); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
