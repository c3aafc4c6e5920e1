package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/kavindu27/hotel_reservation/internal/core/domain"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("Failed to encode response: %v", err)
		}
	}
}

func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := "internal server error"

	switch {
	case errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidRoom):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		msg = err.Error()
	case errors.Is(err, domain.ErrRoomUnavailable),
		errors.Is(err, domain.ErrDuplicateRoomNumber),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrBookingCancelled),
		errors.Is(err, domain.ErrRoomInUse):
		status = http.StatusConflict
		msg = err.Error()
	case errors.Is(err, domain.ErrStorageUnavailable):
		status = http.StatusServiceUnavailable
		msg = err.Error()
	}

	respondJSON(w, status, map[string]string{"error": msg})
}

func respondBadRequest(w http.ResponseWriter, msg string) {
	respondJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}
