package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dravedigitals/careerguard/server/service"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeMessage sends the {"message": ...} body used for 2xx confirmations
// and 4xx rejections.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeServerError surfaces the underlying error detail. Acceptable for an
// internal admin tool, not a hardened public API.
func writeServerError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"message": "Server error",
		"error":   err.Error(),
	})
}

// writeUploadError maps upload validation failures to their statuses;
// anything else is a server error.
func writeUploadError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnsupportedType):
		writeMessage(w, http.StatusUnsupportedMediaType, "Invalid file type")
	case errors.Is(err, service.ErrTooLarge):
		writeMessage(w, http.StatusRequestEntityTooLarge, "File too large")
	case errors.Is(err, service.ErrTooManyFiles):
		writeMessage(w, http.StatusBadRequest, "Too many files")
	default:
		writeServerError(w, err)
	}
}
