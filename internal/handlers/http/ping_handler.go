// internal/handlers/http/ping_handler.go
package http

import "net/http"

type PingResponse struct {
	Pong bool `json:"pong"`
}

// PingHandler placeholder /api/ping, selalu {"pong":true}.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, PingResponse{Pong: true})
}
