// Package entity defines the domain entities for the profile feature.
package entity

// Profile is the client-facing projection of a user record. It deliberately
// carries no credentials: no password hash, no refresh token.
type Profile struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar"`
}

// TableName maps the projection onto the users table owned by the auth feature.
func (Profile) TableName() string {
	return "users"
}
