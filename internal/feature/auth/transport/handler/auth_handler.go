// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/transport/http/dto"
	"auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/platform/token"
)

// AuthUsecase defines the session operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, *usecase.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (*usecase.TokenPair, error)
}

// AuthHandler handles HTTP requests for registration, login, logout, and
// token refresh. It owns the cookie transport of the token pair.
type AuthHandler struct {
	auth AuthUsecase
	// secureCookies switches the Secure cookie attribute on; true only in
	// production deployments.
	secureCookies bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase, secureCookies bool) *AuthHandler {
	return &AuthHandler{auth: auth, secureCookies: secureCookies}
}

// Register handles the user registration endpoint.
// - binds the multipart form into RegisterReq
// - returns 400 on validation failure, 409 on duplicate email
// - returns 201 with the sanitized user on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "all fields are required"})
		return
	}

	in := usecase.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}

	if req.Avatar != nil && req.Avatar.Size > 0 {
		data, contentType, err := readAvatar(req.Avatar)
		if err != nil {
			slog.Warn("register avatar unreadable", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "avatar file is unreadable"})
			return
		}
		in.Avatar = data
		in.AvatarContentType = contentType
	}

	user, err := h.auth.Register(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields), errors.Is(err, usecase.ErrPasswordMismatch):
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: err.Error()})
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			c.JSON(http.StatusConflict, dto.ErrorRes{Error: "user already exists"})
		default:
			slog.Error("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "something went wrong"})
		}
		return
	}

	slog.Info("user registered", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.RegisterRes{Success: true, User: dto.NewUserView(user)})
}

// Login handles the user login endpoint.
//   - binds the JSON body into LoginReq
//   - returns 400 on validation failure, 401 on bad credentials
//   - on success sets both token cookies and returns 200 with the sanitized
//     user and the access token
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "email and password are required"})
		return
	}

	user, pair, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// Same status and body whether the email or the password was
			// wrong; do not leak which.
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "invalid email or password"})
			return
		}
		slog.Error("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "something went wrong"})
		return
	}

	h.setAuthCookies(c, pair.AccessToken, pair.RefreshToken)
	slog.Info("user login successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginRes{
		Success:     true,
		User:        dto.NewUserView(user),
		AccessToken: pair.AccessToken,
	})
}

// Logout handles the logout endpoint.
//   - returns 400 when no refresh cookie is present
//   - clears the stored refresh token when one matches; a stale or unknown
//     token still succeeds
//   - always clears both cookies on 200
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, err := c.Cookie(token.RefreshCookieName)
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "no token found"})
		return
	}

	if err := h.auth.Logout(c.Request.Context(), refreshToken); err != nil {
		slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "something went wrong"})
		return
	}

	h.clearAuthCookies(c)
	c.JSON(http.StatusOK, dto.MessageRes{Success: true, Message: "Logged out"})
}

// Refresh handles token rotation from the refresh cookie.
//   - returns 400 when no refresh cookie is present
//   - returns 401 when the token fails verification or was displaced by a
//     later login
//   - on success resets both cookies and returns the new access token
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(token.RefreshCookieName)
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "no token found"})
		return
	}

	pair, err := h.auth.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidRefreshToken) {
			slog.Warn("refresh rejected", "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "invalid refresh token"})
			return
		}
		slog.Error("refresh failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "something went wrong"})
		return
	}

	h.setAuthCookies(c, pair.AccessToken, pair.RefreshToken)
	c.JSON(http.StatusOK, dto.RefreshRes{Success: true, AccessToken: pair.AccessToken})
}

// readAvatar loads the uploaded file into memory and reports its content type.
func readAvatar(fh *multipart.FileHeader) ([]byte, string, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, fh.Header.Get("Content-Type"), nil
}
