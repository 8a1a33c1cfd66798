package utils

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/MarketPulse/MP-Backend/internal/apperr"
)

// RespondJSON writes v as a JSON body with the given status code.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[http] failed to encode response: %v", err)
	}
}

// RespondError maps err through the error taxonomy and writes the
// contractual status with a JSON error body. Unexpected errors are logged
// server-side and masked in the response.
func RespondError(w http.ResponseWriter, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		log.Printf("[http] internal error: %v", err)
	}
	RespondJSON(w, status, map[string]string{"error": apperr.Message(err)})
}
