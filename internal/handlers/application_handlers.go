package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kazimashinani/kazi-api/internal/domain"
	"github.com/kazimashinani/kazi-api/internal/response"
)

// CreateApplication records an employee's application to a job
func (h *Handlers) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	app, err := h.applicationService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success":     true,
		"application": app,
	})
}

// ListApplicationsByJob returns the applications submitted for a job
func (h *Handlers) ListApplicationsByJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid job ID")
		return
	}

	apps, err := h.applicationService.ListByJob(r.Context(), jobID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	if apps == nil {
		apps = []domain.Application{}
	}

	response.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"applications": apps,
	})
}
