package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skaran/portfolio/internal/models"
)

func testContent() *models.PortfolioContent {
	return &models.PortfolioContent{
		HeroTitle:       "Jane Doe",
		HeroSubtitle:    "Developer",
		HeroDescription: "I build things.",
		AboutText:       "About me.",
		Skills:          []string{"Go"},
		Projects:        []models.Project{},
	}
}

func TestFileContentServiceUpsert(t *testing.T) {
	ctx := context.Background()
	svc, err := NewFileContentService(t.TempDir())
	require.NoError(t, err)

	_, err = svc.Get(ctx)
	assert.ErrorIs(t, err, ErrContentNotFound)

	created, err := svc.Update(ctx, testContent())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.Version)
	assert.False(t, created.UpdatedAt.IsZero())

	// Repeated updates overwrite the same document in place.
	for i := 0; i < 3; i++ {
		next := testContent()
		next.HeroTitle = "Updated"
		next.Version = 0 // unconditional
		_, err = svc.Update(ctx, next)
		require.NoError(t, err)
	}

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Updated", got.HeroTitle)
	assert.Equal(t, int64(4), got.Version)
}

func TestFileContentServiceVersionConflict(t *testing.T) {
	ctx := context.Background()
	svc, err := NewFileContentService(t.TempDir())
	require.NoError(t, err)

	created, err := svc.Update(ctx, testContent())
	require.NoError(t, err)

	// Save from a session holding the current version succeeds.
	current := testContent()
	current.Version = created.Version
	updated, err := svc.Update(ctx, current)
	require.NoError(t, err)
	assert.Equal(t, created.Version+1, updated.Version)

	// A second session still holding the old version loses with a conflict.
	stale := testContent()
	stale.Version = created.Version
	_, err = svc.Update(ctx, stale)
	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestFileContactServiceOrdering(t *testing.T) {
	ctx := context.Background()
	svc, err := NewFileContactService(t.TempDir())
	require.NoError(t, err)

	first, err := svc.Create(ctx, &models.ContactRequest{Name: "A", Email: "a@example.com", Message: "first"})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := svc.Create(ctx, &models.ContactRequest{Name: "B", Email: "b@example.com", Message: "second"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	contacts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, second.ID, contacts[0].ID, "newest message listed first")
	assert.Equal(t, first.ID, contacts[1].ID)
}

func TestFileContactServiceEmptyList(t *testing.T) {
	svc, err := NewFileContactService(t.TempDir())
	require.NoError(t, err)

	contacts, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)
}

func TestFileUserService(t *testing.T) {
	ctx := context.Background()
	svc, err := NewFileUserService(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "secret"))

	assert.NoError(t, svc.VerifyPassword(ctx, "admin", "secret"))
	assert.ErrorIs(t, svc.VerifyPassword(ctx, "admin", "wrong"), ErrInvalidPassword)
	assert.ErrorIs(t, svc.VerifyPassword(ctx, "nobody", "secret"), ErrUserNotFound)

	// Seeding again is a no-op; a rotated password rehashes the credential.
	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "secret"))
	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "rotated"))
	assert.NoError(t, svc.VerifyPassword(ctx, "admin", "rotated"))
	assert.ErrorIs(t, svc.VerifyPassword(ctx, "admin", "secret"), ErrInvalidPassword)
}
