// Package adapters provides the repository implementations for the profile feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"auth_backend/internal/feature/profile/domain/entity"
	"auth_backend/internal/feature/profile/usecase"
)

// profilePostgres reads profile projections from the users table.
type profilePostgres struct {
	db *gorm.DB
}

var _ usecase.ProfileRepository = (*profilePostgres)(nil)

// NewProfilePostgres creates a new profilePostgres with the given gorm handle.
func NewProfilePostgres(db *gorm.DB) *profilePostgres {
	return &profilePostgres{db: db}
}

// FindByID retrieves a profile by user ID.
func (r *profilePostgres) FindByID(ctx context.Context, id string) (*entity.Profile, error) {
	var p entity.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}
