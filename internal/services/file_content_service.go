package services

import (
	"context"
	"sync"
	"time"

	"github.com/skaran/portfolio/internal/models"
	"github.com/skaran/portfolio/internal/storage"
)

// FileContentService is the file-backed ContentService used when MongoDB is
// unreachable. The singleton document lives in content.json under the data
// directory.
type FileContentService struct {
	mu    sync.RWMutex
	store *storage.JSONStore
}

func NewFileContentService(dataDir string) (*FileContentService, error) {
	store, err := storage.NewJSONStore(dataDir, "content.json")
	if err != nil {
		return nil, err
	}
	return &FileContentService{store: store}, nil
}

func (s *FileContentService) Get(ctx context.Context) (*models.PortfolioContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.store.Exists() {
		return nil, ErrContentNotFound
	}

	var content models.PortfolioContent
	if err := s.store.Load(&content); err != nil {
		return nil, err
	}
	return &content, nil
}

func (s *FileContentService) Update(ctx context.Context, content *models.PortfolioContent) (*models.PortfolioContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := *content
	doc.ID = contentDocID
	doc.Version = 1

	if s.store.Exists() {
		var existing models.PortfolioContent
		if err := s.store.Load(&existing); err != nil {
			return nil, err
		}
		if content.Version > 0 && content.Version != existing.Version {
			return nil, ErrVersionConflict
		}
		doc.Version = existing.Version + 1
	}

	doc.UpdatedAt = time.Now().UTC()
	if err := s.store.Save(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
