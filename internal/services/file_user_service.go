package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/skaran/portfolio/internal/models"
	"github.com/skaran/portfolio/internal/storage"
)

// FileUserService is the file-backed UserService used when MongoDB is
// unreachable.
type FileUserService struct {
	mu    sync.Mutex
	store *storage.JSONStore
}

func NewFileUserService(dataDir string) (*FileUserService, error) {
	store, err := storage.NewJSONStore(dataDir, "users.json")
	if err != nil {
		return nil, err
	}
	return &FileUserService{store: store}, nil
}

func (s *FileUserService) EnsureAdmin(ctx context.Context, username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []models.User
	if err := s.store.Load(&users); err != nil {
		return err
	}

	for i, u := range users {
		if u.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil {
			return nil
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		users[i].PasswordHash = string(hash)
		return s.store.Save(users)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users = append(users, models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	return s.store.Save(users)
}

func (s *FileUserService) VerifyPassword(ctx context.Context, username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []models.User
	if err := s.store.Load(&users); err != nil {
		return err
	}

	for _, u := range users {
		if u.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return ErrInvalidPassword
		}
		return nil
	}
	return ErrUserNotFound
}
