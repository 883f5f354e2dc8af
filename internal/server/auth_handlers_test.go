package server

import (
	"net/http"
	"testing"

	"gymhum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterAndLoginFlow(t *testing.T) {
	t.Parallel()
	_, app, db := newTestServer(t)

	reg := registerUser(t, app, "alice", "alice@example.com")

	// Stored hash verifies only against the original password.
	var user models.User
	require.NoError(t, db.First(&user, reg.User.ID).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password124")))

	var login authResponse
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "alice",
		"password": "password123",
	}, "", &login)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, login.AccessToken)
	assert.NotEmpty(t, login.RefreshToken)

	// Email works as an alternative identifier.
	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
	}, "", &login)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Wrong password yields a generic 401.
	var errBody models.ErrorResponse
	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong-password",
	}, "", &errBody)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", errBody.Message)

	// Unknown email yields the same generic 401.
	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "password123",
	}, "", &errBody)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", errBody.Message)
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()
	_, app, _ := newTestServer(t)

	// Password shorter than 8 characters is rejected.
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"username": "bob123",
		"email":    "bob@example.com",
		"password": "short1",
		"bio":      "hi",
	}, "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Bio is required.
	resp = doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"username": "bob123",
		"email":    "bob@example.com",
		"password": "password123",
	}, "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterDuplicate(t *testing.T) {
	t.Parallel()
	_, app, _ := newTestServer(t)

	registerUser(t, app, "carol", "carol@example.com")

	// Same email.
	var errBody models.ErrorResponse
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"username": "carol2",
		"email":    "carol@example.com",
		"password": "password123",
		"bio":      "dup",
	}, "", &errBody)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User already exists", errBody.Message)

	// Same username.
	resp = doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"username": "carol",
		"email":    "carol2@example.com",
		"password": "password123",
		"bio":      "dup",
	}, "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRefreshRotatesToken(t *testing.T) {
	t.Parallel()
	_, app, _ := newTestServer(t)

	reg := registerUser(t, app, "dave", "dave@example.com")

	var refreshed authResponse
	resp := doJSON(t, app, http.MethodPost, "/api/auth/refresh", map[string]string{
		"refresh_token": reg.RefreshToken,
	}, "", &refreshed)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)
	assert.NotEqual(t, reg.RefreshToken, refreshed.RefreshToken)

	// The presented token was rotated out and no longer works.
	resp = doJSON(t, app, http.MethodPost, "/api/auth/refresh", map[string]string{
		"refresh_token": reg.RefreshToken,
	}, "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// The new one does.
	resp = doJSON(t, app, http.MethodPost, "/api/auth/refresh", map[string]string{
		"refresh_token": refreshed.RefreshToken,
	}, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	t.Parallel()
	_, app, _ := newTestServer(t)

	reg := registerUser(t, app, "erin", "erin@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/logout", map[string]string{
		"refresh_token": reg.RefreshToken,
	}, reg.AccessToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/refresh", map[string]string{
		"refresh_token": reg.RefreshToken,
	}, "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	t.Parallel()
	_, app, _ := newTestServer(t)

	resp := doJSON(t, app, http.MethodGet, "/api/profile", nil, "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/profile", nil, "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
