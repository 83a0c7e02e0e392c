package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/SR3DR3/planncomm-v2/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// serviceError maps service failures onto HTTP responses. Validation errors
// become 400 with their own message, a missing row becomes 404, everything
// else is logged and answered with a generic 500 so internals stay private.
func serviceError(w http.ResponseWriter, err error, notFound, failed string) {
	var verr services.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, verr.Error())
		return
	}
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, notFound)
		return
	}
	log.Printf("[API] %s: %v", failed, err)
	writeError(w, http.StatusInternalServerError, failed)
}
