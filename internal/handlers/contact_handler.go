package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/skaran/portfolio/internal/models"
	"github.com/skaran/portfolio/internal/services"
)

// ContactHandler serves contact-form submission and the admin message list.
type ContactHandler struct {
	contacts services.ContactService
}

func NewContactHandler(contacts services.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, models.NewValidationErrorResponse("Invalid form data", errors))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	contact, err := h.contacts.Create(ctx, &req)
	if err != nil {
		log.Printf("[CreateContact] error=%v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to send message"))
		return
	}

	writeJSON(w, http.StatusOK, models.ContactCreatedResponse{
		Success: true,
		Message: "Message sent successfully!",
		Contact: contact,
	})
}

// List returns all messages newest-first. A store failure degrades to an
// empty list rather than an error page for the admin.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	contacts, err := h.contacts.List(ctx)
	if err != nil {
		log.Printf("[ListContacts] error=%v", err)
		contacts = []models.Contact{}
	}

	writeJSON(w, http.StatusOK, contacts)
}
