// Package handler provides the HTTP handlers for the profile feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/feature/profile/domain/entity"
	"auth_backend/internal/feature/profile/usecase"
	"auth_backend/internal/platform/token"
)

// ProfileUsecase defines the profile operations consumed by this handler.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*entity.Profile, error)
}

// ProfileHandler handles HTTP requests for the authenticated user's profile.
type ProfileHandler struct {
	profiles ProfileUsecase
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Me returns the sanitized profile of the user identified by the verified
// access token. It runs behind token.AuthRequired.
func (h *ProfileHandler) Me(c *gin.Context) {
	userID := c.GetString(token.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	profile, err := h.profiles.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			// Valid token for a record that no longer exists
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		slog.Error("profile fetch failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": profile})
}
