package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursetrack/internal/model"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestConnection(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.User{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	byEmail, err := repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, created, byEmail)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", byID.Name)
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	db := newTestConnection(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db := newTestConnection(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := newTestConnection(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, model.User{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, model.User{Name: "Ada2", Email: "ada@example.com"})
	assert.Error(t, err)

	// The original row is untouched.
	user, err := repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
}
