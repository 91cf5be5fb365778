// Package token issues and verifies the signed access/refresh token pair.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token lifetimes. The cookie max-ages in the transport layer mirror these.
const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// Kind selects which secret and lifetime a token is checked against.
type Kind int

const (
	KindAccess Kind = iota
	KindRefresh
)

// Verification failures. Each outcome is distinguishable so the consuming
// layer can decide how to respond.
var (
	// ErrExpired is returned when the token's exp claim is in the past.
	ErrExpired = errors.New("token has expired")

	// ErrMalformed is returned when the token is not a parseable JWT.
	ErrMalformed = errors.New("token is malformed")

	// ErrSignatureInvalid is returned when the signature does not match
	// the secret for the requested kind.
	ErrSignatureInvalid = errors.New("token signature is invalid")
)

// Service issues and verifies HS256-signed JWTs. Access and refresh tokens
// use independent secrets, so neither kind verifies as the other and either
// secret can be rotated on its own.
type Service struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewService creates a Service with the provided secrets and the standard
// lifetimes (15 minutes access, 7 days refresh).
func NewService(accessSecret, refreshSecret string) *Service {
	return &Service{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     AccessTokenTTL,
		refreshTTL:    RefreshTokenTTL,
	}
}

// Issue generates a signed access/refresh token pair for the given user.
// Both tokens carry the user ID as the sub claim.
func (s *Service) Issue(userID string) (accessToken, refreshToken string, err error) {
	accessToken, err = s.sign(userID, s.accessSecret, s.accessTTL)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign access token: %w", err)
	}
	refreshToken, err = s.sign(userID, s.refreshSecret, s.refreshTTL)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return accessToken, refreshToken, nil
}

func (s *Service) sign(userID string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
		// jti keeps tokens unique even when two are issued for the same
		// user within the same second; the single-slot rotation check
		// depends on issued tokens being distinct.
		"jti": uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Verify validates the token's signature and expiration against the secret
// matching kind and returns the embedded user ID. Failures map to ErrExpired,
// ErrMalformed, or ErrSignatureInvalid; no claim is trusted before the
// signature checks out.
func (s *Service) Verify(tokenStr string, kind Kind) (string, error) {
	secret := s.accessSecret
	if kind == KindRefresh {
		secret = s.refreshSecret
	}

	parsed, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is ever issued; reject anything else outright.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", ErrMalformed
		default:
			return "", ErrSignatureInvalid
		}
	}
	if !parsed.Valid {
		return "", ErrSignatureInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrMalformed
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrMalformed
	}
	return sub, nil
}

// VerifyAccess verifies an access token and returns the user ID.
func (s *Service) VerifyAccess(tokenStr string) (string, error) {
	return s.Verify(tokenStr, KindAccess)
}

// VerifyRefresh verifies a refresh token and returns the user ID.
func (s *Service) VerifyRefresh(tokenStr string) (string, error) {
	return s.Verify(tokenStr, KindRefresh)
}
