package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

// SetupRouter wires every exposed operation onto the HTTP router.
func SetupRouter(rooms *RoomHandler, bookings *BookingHandler) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()

	// Rooms
	api.HandleFunc("/rooms", rooms.ListRooms).Methods(http.MethodGet)
	api.HandleFunc("/rooms", rooms.CreateRoom).Methods(http.MethodPost)
	api.HandleFunc("/rooms/available", rooms.SearchAvailableRooms).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{number}", rooms.GetRoomByNumber).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id}", rooms.UpdateRoom).Methods(http.MethodPut)
	api.HandleFunc("/rooms/{id}", rooms.DeleteRoom).Methods(http.MethodDelete)

	// Bookings
	api.HandleFunc("/bookings", bookings.CreateBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings", bookings.ListBookings).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}/cancel", bookings.CancelBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}/status", bookings.SetStatus).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{id}/payments", bookings.RecordPayment).Methods(http.MethodPost)
	api.HandleFunc("/customers/{id}/bookings", bookings.ListCustomerBookings).Methods(http.MethodGet)

	// Payments and reporting
	api.HandleFunc("/payments", bookings.ListPayments).Methods(http.MethodGet)
	api.HandleFunc("/stats", bookings.GetStats).Methods(http.MethodGet)

	// Health check
	r.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
