package httputils

import (
	"encoding/json"
	"log"
	"net/http"

	"campusdocs/files_backend/internal/pkg/apperrors"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Successful bool   `json:"successful"`
	Data       any    `json:"data,omitempty"`
	Message    string `json:"message,omitempty"`
}

// ResponseData writes a success envelope with the given payload.
func ResponseData(w http.ResponseWriter, statusCode int, data any) {
	ResponseJSON(w, statusCode, Response{
		Successful: true,
		Data:       data,
	})
}

// ResponseError classifies err and writes the failure envelope.
func ResponseError(w http.ResponseWriter, err error) {
	status, message := apperrors.Classify(err)
	ResponseJSON(w, status, Response{
		Successful: false,
		Message:    message,
	})
}

func ResponseJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
	}
}
