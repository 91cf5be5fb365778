package router

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authadapters "auth_backend/internal/feature/auth/adapters"
	authentity "auth_backend/internal/feature/auth/domain/entity"
	authhandler "auth_backend/internal/feature/auth/transport/handler"
	authusecase "auth_backend/internal/feature/auth/usecase"
	profileadapters "auth_backend/internal/feature/profile/adapters"
	profilehandler "auth_backend/internal/feature/profile/transport/handler"
	profileusecase "auth_backend/internal/feature/profile/usecase"
	"auth_backend/internal/platform/password"
	"auth_backend/internal/platform/token"
)

// newTestServer wires the real components against an in-memory database:
// no mocks, no redis, no object storage.
func newTestServer(t *testing.T) (*gin.Engine, *token.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authentity.User{}))

	tokens := token.NewService("test-access-secret", "test-refresh-secret")
	authUC := authusecase.NewAuthUsecase(authadapters.NewUserPostgres(db), password.NewHasher(), tokens, nil)
	profileUC := profileusecase.NewProfileUsecase(profileadapters.NewProfilePostgres(db))

	authH := authhandler.NewAuthHandler(authUC, false)
	profileH := profilehandler.NewProfileHandler(profileUC)

	return NewRouter(authH, profileH, tokens), tokens
}

func registerForm(t *testing.T, name, email, pass, confirm string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("name", name))
	require.NoError(t, w.WriteField("email", email))
	require.NoError(t, w.WriteField("password", pass))
	require.NoError(t, w.WriteField("confirmPassword", confirm))
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func doJSON(r *gin.Engine, method, path string, payload any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if payload != nil {
		b, _ := json.Marshal(payload)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = &bytes.Buffer{}
	}
	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestSessionLifecycle(t *testing.T) {
	r, tokens := newTestServer(t)

	// Register
	body, contentType := registerForm(t, "Alice", "a@x.com", "pw123456", "pw123456")
	req, _ := http.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var registered struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	require.NotEmpty(t, registered.User.ID)

	// Registering the same email again conflicts
	body, contentType = registerForm(t, "Alice", "a@x.com", "pw123456", "pw123456")
	req, _ = http.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set("Content-Type", contentType)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Login with the wrong password
	w = doJSON(r, http.MethodPost, "/login", gin.H{"email": "a@x.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Login
	w = doJSON(r, http.MethodPost, "/login", gin.H{"email": "a@x.com", "password": "pw123456"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	access := findCookie(w.Result().Cookies(), "accessToken")
	refresh := findCookie(w.Result().Cookies(), "refreshToken")
	require.NotNil(t, access)
	require.NotNil(t, refresh)
	assert.Equal(t, 900, access.MaxAge)
	assert.Equal(t, 604800, refresh.MaxAge)

	// The issued access token identifies the registered user
	userID, err := tokens.VerifyAccess(access.Value)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, userID)

	// Authenticated profile fetch
	w = doJSON(r, http.MethodGet, "/me", nil, access)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "a@x.com")
	assert.NotContains(t, w.Body.String(), "pw123456")

	// Rotate the pair
	w = doJSON(r, http.MethodPost, "/refresh", nil, refresh)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	rotated := findCookie(w.Result().Cookies(), "refreshToken")
	require.NotNil(t, rotated)

	// The displaced refresh token no longer works
	w = doJSON(r, http.MethodPost, "/refresh", nil, refresh)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Logout with the current refresh token
	w = doJSON(r, http.MethodPost, "/logout", nil, rotated)
	require.Equal(t, http.StatusOK, w.Code)
	cleared := findCookie(w.Result().Cookies(), "refreshToken")
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)

	// After logout the refresh token is rejected
	w = doJSON(r, http.MethodPost, "/refresh", nil, rotated)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Logout without a cookie is a validation error
	w = doJSON(r, http.MethodPost, "/logout", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Logout with a stale token is idempotent
	w = doJSON(r, http.MethodPost, "/logout", nil, rotated)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterAndLoginAcceptUnvalidatedShapes(t *testing.T) {
	r, _ := newTestServer(t)

	// A short password and a non-address email are the caller's business;
	// the boundary only requires the fields to be present.
	body, contentType := registerForm(t, "Bob", "bob-at-home", "pw1", "pw1")
	req, _ := http.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(r, http.MethodPost, "/login", gin.H{"email": "bob-at-home", "password": "pw1"})
	assert.Equal(t, http.StatusOK, w.Code)

	// A malformed address that matches no account fails authentication,
	// not validation
	w = doJSON(r, http.MethodPost, "/login", gin.H{"email": "not-an-email", "password": "pw123456"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSecondLoginDisplacesFirstSession(t *testing.T) {
	r, _ := newTestServer(t)

	body, contentType := registerForm(t, "Alice", "a@x.com", "pw123456", "pw123456")
	req, _ := http.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	login := func() *http.Cookie {
		w := doJSON(r, http.MethodPost, "/login", gin.H{"email": "a@x.com", "password": "pw123456"})
		require.Equal(t, http.StatusOK, w.Code)
		c := findCookie(w.Result().Cookies(), "refreshToken")
		require.NotNil(t, c)
		return c
	}

	first := login()
	second := login()

	// Only the most recent refresh token occupies the slot
	w = doJSON(r, http.MethodPost, "/refresh", nil, first)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/refresh", nil, second)
	assert.Equal(t, http.StatusOK, w.Code)
}
