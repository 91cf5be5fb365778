package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError maps the driver's duplicate-key error onto
// gorm.ErrDuplicatedKey, which the adapter handles alongside the
// PostgreSQL unique-violation code.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func newTestUser(email string) *entity.User {
	return &entity.User{
		Name:         "Alice",
		Email:        email,
		PasswordHash: "hashed_password",
	}
}

func TestUserPostgres_Create(t *testing.T) {
	t.Run("successful user creation assigns an ID", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		user := newTestUser("test@example.com")
		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotEmpty(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		err := repo.Create(context.Background(), newTestUser("duplicate@example.com"))
		require.NoError(t, err, "failed to create first user")

		err = repo.Create(context.Background(), newTestUser("duplicate@example.com"))

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists, "should map the unique violation")
	})
}

func TestUserPostgres_FindByEmail(t *testing.T) {
	t.Run("find user by email successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		expected := newTestUser("find@example.com")
		require.NoError(t, repo.Create(context.Background(), expected))

		found, err := repo.FindByEmail(context.Background(), "find@example.com")

		assert.NoError(t, err, "failed to find user")
		require.NotNil(t, found, "user is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.PasswordHash, found.PasswordHash, "password hash does not match")
	})

	t.Run("email not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		found, err := repo.FindByEmail(context.Background(), "notfound@example.com")

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserPostgres_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserPostgres(db)

	expected := newTestUser("byid@example.com")
	require.NoError(t, repo.Create(context.Background(), expected))

	found, err := repo.FindByID(context.Background(), expected.ID)
	assert.NoError(t, err)
	assert.Equal(t, expected.Email, found.Email)

	_, err = repo.FindByID(context.Background(), "missing-id")
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)
}

func TestUserPostgres_SetRefreshToken(t *testing.T) {
	t.Run("overwrites and clears the single slot", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		user := newTestUser("slot@example.com")
		require.NoError(t, repo.Create(context.Background(), user))

		// Write the slot and find the user through it
		require.NoError(t, repo.SetRefreshToken(context.Background(), user.ID, "refresh-1"))
		found, err := repo.FindByRefreshToken(context.Background(), "refresh-1")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)

		// A second write displaces the first token
		require.NoError(t, repo.SetRefreshToken(context.Background(), user.ID, "refresh-2"))
		_, err = repo.FindByRefreshToken(context.Background(), "refresh-1")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "displaced token must not resolve")
		found, err = repo.FindByRefreshToken(context.Background(), "refresh-2")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)

		// Clearing empties the slot
		require.NoError(t, repo.SetRefreshToken(context.Background(), user.ID, ""))
		_, err = repo.FindByRefreshToken(context.Background(), "refresh-2")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		err := repo.SetRefreshToken(context.Background(), "missing-id", "refresh-1")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
