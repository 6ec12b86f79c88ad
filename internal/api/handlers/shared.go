package handlers

import (
	"net/http"

	"github.com/ndewijer/Stock-Chart-Viewer/internal/api/response"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data any) {
	response.RespondJSON(w, status, data)
}
