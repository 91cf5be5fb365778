package dto

import "auth_backend/internal/feature/auth/domain/entity"

// UserView is the sanitized projection of a user that is safe to return to
// clients. It never carries the password hash or refresh token.
type UserView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// NewUserView projects a user entity into its sanitized view.
func NewUserView(u *entity.User) UserView {
	return UserView{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Avatar: u.AvatarURL,
	}
}

// RegisterRes is the response for a successful registration.
type RegisterRes struct {
	Success bool     `json:"success"`
	User    UserView `json:"user"`
}

// LoginRes is the response for a successful login. The access token is also
// set as a cookie; it is repeated in the body for clients that prefer headers.
type LoginRes struct {
	Success     bool     `json:"success"`
	User        UserView `json:"user"`
	AccessToken string   `json:"accessToken"`
}

// RefreshRes is the response for a successful token refresh.
type RefreshRes struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"accessToken"`
}

// MessageRes is a generic success message response.
type MessageRes struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorRes is the error response body for all failure statuses.
type ErrorRes struct {
	Error string `json:"error"`
}
