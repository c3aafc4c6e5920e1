package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/kavindu27/hotel_reservation/internal/core/domain"
	"github.com/kavindu27/hotel_reservation/internal/core/services"
)

type BookingHandler struct {
	reservations *services.ReservationService
	payments     *services.PaymentService
}

func NewBookingHandler(reservations *services.ReservationService, payments *services.PaymentService) *BookingHandler {
	return &BookingHandler{reservations: reservations, payments: payments}
}

type createBookingRequest struct {
	CustomerID string `json:"customer_id"`
	RoomID     string `json:"room_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
}

type bookingResponse struct {
	BookingID  string `json:"booking_id"`
	CustomerID string `json:"customer_id"`
	RoomID     string `json:"room_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		BookingID:  b.ID.String(),
		CustomerID: b.CustomerID.String(),
		RoomID:     b.RoomID.String(),
		CheckIn:    b.CheckIn.Format(domain.DateOnly),
		CheckOut:   b.CheckOut.Format(domain.DateOnly),
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	}
}

func bookingResponses(bookings []domain.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}

	return out
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid json body")
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		respondBadRequest(w, "invalid customer id")
		return
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		respondBadRequest(w, "invalid room id")
		return
	}

	checkIn, err := domain.ParseDate(req.CheckIn)
	if err != nil {
		respondBadRequest(w, "check_in must be a date in YYYY-MM-DD form")
		return
	}

	checkOut, err := domain.ParseDate(req.CheckOut)
	if err != nil {
		respondBadRequest(w, "check_out must be a date in YYYY-MM-DD form")
		return
	}

	booking, err := h.reservations.CreateBooking(r.Context(), customerID, roomID, checkIn, checkOut)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toBookingResponse(booking))
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.reservations.ListAllBookings(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, bookingResponses(bookings))
}

func (h *BookingHandler) ListCustomerBookings(w http.ResponseWriter, r *http.Request) {
	customerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondBadRequest(w, "invalid customer id")
		return
	}

	bookings, err := h.reservations.ListBookingsByCustomer(r.Context(), customerID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, bookingResponses(bookings))
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondBadRequest(w, "invalid booking id")
		return
	}

	booking, err := h.reservations.CancelBooking(r.Context(), bookingID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toBookingResponse(booking))
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// SetStatus is the staff override; it bypasses payment requirements.
func (h *BookingHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondBadRequest(w, "invalid booking id")
		return
	}

	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid json body")
		return
	}

	status := domain.BookingStatus(req.Status)
	if !domain.ValidBookingStatus(status) {
		respondBadRequest(w, "unknown booking status")
		return
	}

	if err := h.reservations.SetBookingStatus(r.Context(), bookingID, status); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": string(status)})
}

type recordPaymentRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Mode        string `json:"mode"`
}

type paymentResponse struct {
	PaymentID   string `json:"payment_id"`
	BookingID   string `json:"booking_id"`
	AmountCents int64  `json:"amount_cents"`
	Mode        string `json:"mode"`
	PaidAt      string `json:"paid_at"`
}

func toPaymentResponse(p *domain.Payment) paymentResponse {
	return paymentResponse{
		PaymentID:   p.ID.String(),
		BookingID:   p.BookingID.String(),
		AmountCents: p.AmountCents,
		Mode:        string(p.Mode),
		PaidAt:      p.PaidAt.Format(time.RFC3339),
	}
}

func (h *BookingHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondBadRequest(w, "invalid booking id")
		return
	}

	var req recordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid json body")
		return
	}

	mode := domain.PaymentMode(req.Mode)
	if !domain.ValidPaymentMode(mode) {
		respondBadRequest(w, "unknown payment mode")
		return
	}

	payment, err := h.payments.RecordPayment(r.Context(), bookingID, req.AmountCents, mode)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toPaymentResponse(payment))
}

func (h *BookingHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.payments.ListPayments(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]paymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, toPaymentResponse(&payments[i]))
	}

	respondJSON(w, http.StatusOK, out)
}

func (h *BookingHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.payments.DashboardStats(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
