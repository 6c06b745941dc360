package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kazimashinani/kazi-api/internal/domain"
	"github.com/kazimashinani/kazi-api/internal/middleware"
	"github.com/kazimashinani/kazi-api/internal/response"
)

// Signup handles user registration
func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req domain.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	user, token, err := h.authService.Signup(r.Context(), &req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, domain.AuthResponse{
		Success: true,
		Token:   token,
		User:    user.ToUserInfo(),
	})
}

// Signin handles user authentication
func (h *Handlers) Signin(w http.ResponseWriter, r *http.Request) {
	var req domain.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	user, token, err := h.authService.Signin(r.Context(), &req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, domain.AuthResponse{
		Success: true,
		Token:   token,
		User:    user.ToUserInfo(),
	})
}

// CheckPhone reports whether a phone number is already registered
func (h *Handlers) CheckPhone(w http.ResponseWriter, r *http.Request) {
	var req domain.CheckPhoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	exists, err := h.authService.PhoneExists(r.Context(), req.Phone)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]bool{"exists": exists})
}

// UpdateProfile handles partial updates to the authenticated user's profile
func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.Claims(r)
	if claims == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req domain.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	user, err := h.authService.UpdateProfile(r.Context(), claims.Sub, &req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    user.ToUserInfo(),
	})
}

// ChangePassword verifies the current password and stores a new digest
func (h *Handlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	claims := middleware.Claims(r)
	if claims == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req domain.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	if err := h.authService.ChangePassword(r.Context(), claims.Sub, &req); err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Password updated successfully",
	})
}

// ListEmployees returns registered employees; the password digest is never
// part of the projection.
func (h *Handlers) ListEmployees(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListEmployees(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	infos := make([]*domain.UserInfo, 0, len(users))
	for i := range users {
		infos = append(infos, users[i].ToUserInfo())
	}

	response.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"employees": infos,
	})
}
