// internal/handlers/http/response.go
package http

import (
	"encoding/json"
	"net/http"

	"safenet-api/internal/util"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, e util.AppError) {
	writeJSON(w, e.Status(), errorResponse{Error: e.Code, Message: e.Message})
}
