// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"
)

// uniqueViolation is the PostgreSQL error code for a unique-constraint violation.
const uniqueViolation = "23505"

// userPostgres is the PostgreSQL implementation of the UserRepository
// interface, backed by gorm.
type userPostgres struct {
	db *gorm.DB
}

// Compile-time check that userPostgres implements UserRepository.
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres creates a new userPostgres with the given gorm handle.
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Create inserts the user. A duplicate email is reported as
// usecase.ErrEmailAlreadyExists based on the unique index.
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return usecase.ErrEmailAlreadyExists
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email address.
func (r *userPostgres) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

// FindByID retrieves a user by ID.
func (r *userPostgres) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByRefreshToken retrieves the user currently holding the given refresh
// token. The token column is the single slot, so at most one row matches.
func (r *userPostgres) FindByRefreshToken(ctx context.Context, refreshToken string) (*entity.User, error) {
	return r.findOne(ctx, "refresh_token = ?", refreshToken)
}

func (r *userPostgres) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// SetRefreshToken overwrites the user's refresh-token slot with a single
// UPDATE. Concurrent writers race and the last write wins, which is the
// intended single-slot behavior.
func (r *userPostgres) SetRefreshToken(ctx context.Context, userID, refreshToken string) error {
	res := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", userID).
		Update("refresh_token", refreshToken)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}
