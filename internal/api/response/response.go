// Package response writes the JSON bodies of the /api endpoints.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the body of every failed API request.
// Error is the internal error chain; Details holds the messages a user would
// see on the index page for the same failure.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// RespondJSON sends data as JSON with the given status code.
// A nil data writes only the status. Encoding errors are logged, since the
// status line has already been sent by then.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondError sends err and its user-facing messages with the given status code.
//
// Example:
//
//	response.RespondError(w, http.StatusBadRequest, apperrors.ErrFutureDateRequested,
//	    []string{"Sorry but this service is currently unable to predict the future"})
func RespondError(w http.ResponseWriter, status int, err error, messages []string) {
	body := ErrorResponse{Details: messages}
	if err != nil {
		body.Error = err.Error()
	} else {
		body.Error = http.StatusText(status)
	}
	RespondJSON(w, status, body)
}
