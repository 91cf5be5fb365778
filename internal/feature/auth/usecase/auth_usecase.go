package usecase

import (
	"context"
	"errors"
	"fmt"

	"auth_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when the
	// email is already taken; the store's unique index is the authoritative
	// check.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user matching the given email.
	// Returns ErrUserNotFound when no user matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves the user with the given ID.
	// Returns ErrUserNotFound when no user matches.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByRefreshToken retrieves the user whose stored refresh token
	// equals the given value. Returns ErrUserNotFound when no user matches.
	FindByRefreshToken(ctx context.Context, refreshToken string) (*entity.User, error)

	// SetRefreshToken overwrites the user's single refresh-token slot.
	// An empty token clears the slot. Last write wins; there is no
	// transactional isolation between concurrent logins and logouts.
	SetRefreshToken(ctx context.Context, userID, refreshToken string) error
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Verify reports whether plain matches the stored hash.
	Verify(plain, hashed string) bool
	// VerifyDummy performs a comparison against a throwaway hash and
	// always returns false, keeping the unknown-user path as expensive
	// as a real check.
	VerifyDummy(plain string) bool
}

// TokenService issues the signed access/refresh token pair and verifies
// refresh tokens handed back by clients.
type TokenService interface {
	Issue(userID string) (accessToken, refreshToken string, err error)
	VerifyRefresh(tokenStr string) (userID string, err error)
}

// AvatarStorage uploads an avatar image and returns its public URL.
type AvatarStorage interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}

// RegisterInput carries the validated registration fields. Avatar is nil
// when no file was uploaded.
type RegisterInput struct {
	Name              string
	Email             string
	Password          string
	ConfirmPassword   string
	Avatar            []byte
	AvatarContentType string
}

// TokenPair is an issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// authUsecase orchestrates registration, login, logout, and token refresh.
type authUsecase struct {
	users   UserRepository
	hasher  PasswordHasher
	tokens  TokenService
	avatars AvatarStorage
}

// NewAuthUsecase creates a new authUsecase. avatars may be nil when no
// object storage is configured; registrations then ignore avatar files.
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, tokens TokenService, avatars AvatarStorage) *authUsecase {
	return &authUsecase{
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
		avatars: avatars,
	}
}

// Register creates a new user with a hashed password and an optionally
// uploaded avatar. The email-existence check here only produces a friendly
// conflict in the common case; two racing registrations are ultimately
// resolved by the store's unique index, surfaced through Create.
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return nil, ErrMissingFields
	}
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	if _, err := u.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	var avatarURL string
	if len(in.Avatar) > 0 && u.avatars != nil {
		avatarURL, err = u.avatars.Upload(ctx, in.Avatar, in.AvatarContentType)
		if err != nil {
			return nil, fmt.Errorf("failed to store avatar: %w", err)
		}
	}

	user := &entity.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hashed,
		AvatarURL:    avatarURL,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates the user and issues a fresh token pair. The new
// refresh token overwrites the stored slot, revoking any prior session.
// Unknown email and wrong password produce the identical error, and the
// dummy comparison keeps both paths equally expensive.
func (u *authUsecase) Login(ctx context.Context, email, pass string) (*entity.User, *TokenPair, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}

	var ok bool
	if err != nil {
		ok = u.hasher.VerifyDummy(pass)
	} else {
		ok = u.hasher.Verify(pass, user.PasswordHash)
	}
	if err != nil || !ok {
		return nil, nil, ErrInvalidCredentials
	}

	access, refresh, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err := u.users.SetRefreshToken(ctx, user.ID, refresh); err != nil {
		return nil, nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}
	user.RefreshToken = refresh

	return user, &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Logout clears the stored refresh-token slot of whichever user holds the
// given token. A stale or unknown token is not an error: there is simply no
// session left to invalidate.
func (u *authUsecase) Logout(ctx context.Context, refreshToken string) error {
	user, err := u.users.FindByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up session: %w", err)
	}
	return u.users.SetRefreshToken(ctx, user.ID, "")
}

// Refresh rotates the token pair. The presented token must both verify
// against the refresh secret and still occupy the stored single slot; a
// token displaced by a later login fails here even before it expires.
func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if _, err := u.tokens.VerifyRefresh(refreshToken); err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := u.users.FindByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	access, refresh, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}
	if err := u.users.SetRefreshToken(ctx, user.ID, refresh); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
