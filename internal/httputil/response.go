package httputil

import (
	"encoding/json"
	"log"
	"net/http"
)

// MessageResponse is the body of every error response and of success
// responses that carry only a human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondJSON sends a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("ERROR [httputil.RespondJSON] failed to encode response: %v", err)
	}
}

// RespondMessage sends a {"message": ...} body with the given status code.
func RespondMessage(w http.ResponseWriter, message string, statusCode int) {
	RespondJSON(w, MessageResponse{Message: message}, statusCode)
}

// RespondError sends a {"message": ...} error body with the given status code.
func RespondError(w http.ResponseWriter, message string, statusCode int) {
	RespondMessage(w, message, statusCode)
}
