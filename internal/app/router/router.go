package router

import (
	"github.com/gin-gonic/gin"

	authhandler "auth_backend/internal/feature/auth/transport/handler"
	profilehandler "auth_backend/internal/feature/profile/transport/handler"
	"auth_backend/internal/platform/http/handler"
	"auth_backend/internal/platform/token"
)

// NewRouter wires the HTTP routes. Registration, login, logout, and refresh
// are anonymous transitions; everything under the auth group requires a
// valid access token.
func NewRouter(authHandler *authhandler.AuthHandler, profileHandler *profilehandler.ProfileHandler,
	verifier token.AccessVerifier) *gin.Engine {
	r := gin.Default()

	// Liveness probe
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)

	// Session lifecycle
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.POST("/refresh", authHandler.Refresh)

	// Routes requiring an authenticated user
	auth := r.Group("/")
	auth.Use(token.AuthRequired(verifier))
	{
		auth.GET("/me", profileHandler.Me)
	}

	return r
}
