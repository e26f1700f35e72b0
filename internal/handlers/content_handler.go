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

// ContentHandler serves the portfolio-content document.
type ContentHandler struct {
	content services.ContentService
}

func NewContentHandler(content services.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// Get returns the singleton document, falling back to the default content
// when none exists or the store is unavailable. The public page always gets
// something renderable.
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	content, err := h.content.Get(ctx)
	if err != nil {
		if err != services.ErrContentNotFound {
			log.Printf("[GetContent] error=%v", err)
		}
		content = models.DefaultContent()
	}

	writeJSON(w, http.StatusOK, content.Payload())
}

// Update overwrites the singleton document. Requires an admin session
// (enforced by middleware on the route).
func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload models.ContentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}

	if errors := payload.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, models.NewValidationErrorResponse("Invalid content data", errors))
		return
	}

	content, err := payload.Content()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid content data"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.content.Update(ctx, content)
	if err != nil {
		if err == services.ErrVersionConflict {
			writeJSON(w, http.StatusConflict, models.NewErrorResponse("Content was modified by another session"))
			return
		}
		log.Printf("[UpdateContent] error=%v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to update content"))
		return
	}

	writeJSON(w, http.StatusOK, models.ContentUpdatedResponse{
		Success: true,
		Message: "Portfolio content updated successfully",
		Content: updated.Payload(),
	})
}
