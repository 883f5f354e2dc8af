package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gymhum/internal/config"
	"gymhum/internal/database"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(database.Models()...); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

func newTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)

	cfg := &config.Config{
		JWTSecret: "test-secret-key-for-handler-tests-only",
		Port:      "0",
		Env:       "test",
	}

	srv, err := NewServerWithDeps(cfg, db, nil)
	if err != nil {
		t.Fatalf("NewServerWithDeps: %v", err)
	}

	app := fiber.New()
	srv.SetupRoutes(app)

	return srv, app, db
}

// doJSON performs a JSON request against the test app, optionally with a
// bearer token, and decodes the response body into out when non-nil.
func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string, out interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test %s %s: %v", method, path, err)
	}

	if out != nil {
		defer func() { _ = resp.Body.Close() }()
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response for %s %s: %v", method, path, err)
		}
	}

	return resp
}

type authResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
	} `json:"user"`
}

// registerUser creates an account through the API and returns the auth payload.
func registerUser(t *testing.T, app *fiber.App, username, email string) authResponse {
	t.Helper()

	var got authResponse
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": "password123",
		"bio":      "test account",
	}, "", &got)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d", username, resp.StatusCode)
	}
	if got.AccessToken == "" || got.RefreshToken == "" {
		t.Fatalf("register %s: missing tokens in response", username)
	}
	return got
}
