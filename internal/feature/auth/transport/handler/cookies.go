package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/platform/token"
)

// Cookie lifetimes for the token pair, matching the token TTLs
// (15 minutes and 7 days). The names live in the token package, shared
// with the access middleware.
const (
	accessCookieMaxAge  = 15 * 60
	refreshCookieMaxAge = 7 * 24 * 60 * 60
)

// setAuthCookies attaches both tokens as httpOnly, SameSite=Lax cookies
// scoped to the whole site. Secure is set only in production.
func (h *AuthHandler) setAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(token.AccessCookieName, accessToken, accessCookieMaxAge, "/", "", h.secureCookies, true)
	c.SetCookie(token.RefreshCookieName, refreshToken, refreshCookieMaxAge, "/", "", h.secureCookies, true)
}

// clearAuthCookies expires both cookies immediately (Max-Age=0), regardless
// of whether a stored session was found.
func (h *AuthHandler) clearAuthCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(token.AccessCookieName, "", -1, "/", "", h.secureCookies, true)
	c.SetCookie(token.RefreshCookieName, "", -1, "/", "", h.secureCookies, true)
}
