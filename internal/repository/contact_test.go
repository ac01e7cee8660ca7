package repository

import (
	"context"
	"testing"
	"time"

	"showcase/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactRepository_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()

	first := &models.ContactMessage{Name: "A", Email: "a@x.com", Message: "hi", CreatedAt: time.Now().Add(-time.Hour)}
	second := &models.ContactMessage{Name: "B", Email: "b@x.com", Message: "hello"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	messages, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "B", messages[0].Name, "newest message first")
	assert.False(t, messages[0].Read, "messages start unread")
}

func TestContactRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()

	msg := &models.ContactMessage{Name: "A", Email: "a@x.com", Message: "hi"}
	require.NoError(t, repo.Create(ctx, msg))
	require.NoError(t, repo.Delete(ctx, msg.ID))

	messages, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestContactRepository_DeleteMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepository(db)

	err := repo.Delete(context.Background(), 42)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
