// Package entity defines the domain entities for the auth feature.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user, assigned at creation.
	ID string `gorm:"primaryKey;size:36"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users; the database index is the
	// authoritative guard against duplicates.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Plaintext passwords are never stored.
	PasswordHash string `gorm:"size:255;not null"`

	// AvatarURL points at the user's avatar in object storage.
	// Empty when no avatar was uploaded.
	AvatarURL string `gorm:"size:512"`

	// RefreshToken is the most recently issued refresh token. A single
	// slot: every login overwrites it, which silently revokes the
	// previous session; logout clears it.
	RefreshToken string `gorm:"size:512;index"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// BeforeCreate assigns a UUID when no ID was set by the caller.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
