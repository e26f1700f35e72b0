package services

import (
	"context"
	"errors"

	"github.com/skaran/portfolio/internal/models"
)

var (
	ErrContentNotFound = errors.New("portfolio content not found")
	ErrVersionConflict = errors.New("portfolio content version conflict")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

// ContentService manages the singleton portfolio-content document.
type ContentService interface {
	// Get returns the document, or ErrContentNotFound when none exists yet.
	Get(ctx context.Context) (*models.PortfolioContent, error)
	// Update overwrites the document, creating it if absent. A non-zero
	// Version on the input is checked against the stored document and a
	// mismatch fails with ErrVersionConflict. At most one document exists
	// after any sequence of calls.
	Update(ctx context.Context, content *models.PortfolioContent) (*models.PortfolioContent, error)
}

// ContactService stores contact-form submissions. Append-only.
type ContactService interface {
	Create(ctx context.Context, req *models.ContactRequest) (*models.Contact, error)
	// List returns all submissions newest-first.
	List(ctx context.Context) ([]models.Contact, error)
}

// UserService backs the admin credential.
type UserService interface {
	// EnsureAdmin seeds the admin user with a bcrypt hash of password, or
	// rehashes if the configured password changed.
	EnsureAdmin(ctx context.Context, username, password string) error
	// VerifyPassword checks password against the stored hash. Returns
	// ErrUserNotFound or ErrInvalidPassword on failure.
	VerifyPassword(ctx context.Context, username, password string) error
}
