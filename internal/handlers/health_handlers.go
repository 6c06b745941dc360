package handlers

import (
	"net/http"
	"time"

	"github.com/kazimashinani/kazi-api/internal/response"
)

// Root is the liveness banner.
func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   "Kazi API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  h.databaseStatus(r),
	})
}

// Health reports liveness plus store connectivity.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   "Server is healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  h.databaseStatus(r),
	})
}

func (h *Handlers) databaseStatus(r *http.Request) string {
	if err := h.db.Ping(r.Context()); err != nil {
		return "disconnected"
	}
	return "connected"
}
