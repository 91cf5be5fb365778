// Package usecase implements the business logic for the profile feature.
package usecase

import (
	"context"
	"errors"

	"auth_backend/internal/feature/profile/domain/entity"
)

// ErrProfileNotFound is returned when no profile exists for the given user ID.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository abstracts read access to profiles.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type ProfileRepository interface {
	// FindByID retrieves the profile for the given user ID.
	// Returns ErrProfileNotFound when no profile matches.
	FindByID(ctx context.Context, id string) (*entity.Profile, error)
}

type profileUsecase struct {
	profiles ProfileRepository
}

// NewProfileUsecase creates a new profileUsecase.
func NewProfileUsecase(profiles ProfileRepository) *profileUsecase {
	return &profileUsecase{profiles: profiles}
}

// GetProfile returns the sanitized profile of the given user.
func (u *profileUsecase) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	return u.profiles.FindByID(ctx, userID)
}
