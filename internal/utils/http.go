package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-staffing/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.DataResponse(user), http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteData writes data wrapped into the {"data": ...} envelope.
func WriteData(w http.ResponseWriter, data any, statusCode int) (int, error) {
	return WriteJSON(w, models.DataResponse(data), statusCode)
}

// WriteErrors writes messages wrapped into the {"errors": [...]} envelope.
func WriteErrors(w http.ResponseWriter, statusCode int, messages ...string) (int, error) {
	return WriteJSON(w, models.ErrorResponse(messages...), statusCode)
}
