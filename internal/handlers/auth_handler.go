package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/skaran/portfolio/internal/middleware"
	"github.com/skaran/portfolio/internal/models"
	"github.com/skaran/portfolio/internal/services"
)

// AuthHandler serves the admin login/logout/status endpoints.
type AuthHandler struct {
	users         services.UserService
	sessions      *middleware.SessionManager
	adminUsername string
}

func NewAuthHandler(users services.UserService, sessions *middleware.SessionManager, adminUsername string) *AuthHandler {
	return &AuthHandler{
		users:         users,
		sessions:      sessions,
		adminUsername: adminUsername,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Invalid admin password"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.users.VerifyPassword(ctx, h.adminUsername, req.Password); err != nil {
		if err == services.ErrUserNotFound || err == services.ErrInvalidPassword {
			writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Invalid admin password"))
			return
		}
		log.Printf("[AdminLogin] error=%v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Login failed"))
		return
	}

	if err := h.sessions.Issue(w); err != nil {
		log.Printf("[AdminLogin] session error=%v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Login failed"))
		return
	}

	writeJSON(w, http.StatusOK, models.NewSuccessResponse("Admin logged in successfully"))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	writeJSON(w, http.StatusOK, models.NewSuccessResponse("Admin logged out successfully"))
}

func (h *AuthHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.AdminStatusResponse{
		IsAdmin: h.sessions.IsAuthenticated(r),
	})
}
