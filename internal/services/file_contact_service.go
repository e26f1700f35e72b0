package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skaran/portfolio/internal/models"
	"github.com/skaran/portfolio/internal/storage"
)

// FileContactService is the file-backed ContactService used when MongoDB is
// unreachable.
type FileContactService struct {
	mu    sync.Mutex
	store *storage.JSONStore
}

func NewFileContactService(dataDir string) (*FileContactService, error) {
	store, err := storage.NewJSONStore(dataDir, "contacts.json")
	if err != nil {
		return nil, err
	}
	return &FileContactService{store: store}, nil
}

func (s *FileContactService) Create(ctx context.Context, req *models.ContactRequest) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var contacts []models.Contact
	if err := s.store.Load(&contacts); err != nil {
		return nil, err
	}

	contact := models.Contact{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: time.Now().UTC(),
	}

	contacts = append(contacts, contact)
	if err := s.store.Save(contacts); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (s *FileContactService) List(ctx context.Context) ([]models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var contacts []models.Contact
	if err := s.store.Load(&contacts); err != nil {
		return nil, err
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].CreatedAt.After(contacts[j].CreatedAt)
	})
	return contacts, nil
}
