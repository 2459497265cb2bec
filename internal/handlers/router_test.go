package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tanmay1202/macnmanage/internal/config"
	"github.com/Tanmay1202/macnmanage/internal/database"
	"github.com/Tanmay1202/macnmanage/internal/events"
	"github.com/Tanmay1202/macnmanage/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRouter builds a Router backed by an in-memory SQLite database.
// Each call gets its own database so tests stay independent.
func newTestRouter(t *testing.T) *Router {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Resource{}, &models.ProductionLog{}))

	hub := events.NewHub()
	go hub.Run()

	cfg := &config.Config{
		Env:       "test",
		JWTSecret: "test-secret-key-12345",
	}

	return NewRouter(&database.DB{DB: gdb}, cfg, hub)
}

// doRequest performs an in-process request against the router
func doRequest(t *testing.T, r *Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// registerUser creates an account through the API and returns its id and token
func registerUser(t *testing.T, r *Router, name, email string) (string, string) {
	t.Helper()

	rec := doRequest(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.User.ID)
	require.NotEmpty(t, resp.Token)
	return resp.User.ID, resp.Token
}

// decode unmarshals a recorded response body into out
func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(t)

	rec := doRequest(t, r, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	require.Equal(t, "ok", body["status"])
}

func TestGuardedRoutesRejectMissingToken(t *testing.T) {
	r := newTestRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/resources"},
		{http.MethodPost, "/api/resources"},
		{http.MethodPut, "/api/resources/some-id"},
		{http.MethodDelete, "/api/resources/some-id"},
		{http.MethodGet, "/api/production"},
		{http.MethodPost, "/api/production"},
		{http.MethodGet, "/api/dashboard"},
		{http.MethodGet, "/api/auth/me"},
		{http.MethodGet, "/api/print/report"},
	}
	for _, p := range paths {
		rec := doRequest(t, r, p.method, p.path, "", nil)
		require.Equalf(t, http.StatusUnauthorized, rec.Code, "%s %s", p.method, p.path)
	}
}

func TestGuardedRoutesRejectBadToken(t *testing.T) {
	r := newTestRouter(t)

	rec := doRequest(t, r, http.MethodGet, "/api/resources", "not-a-real-token", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGuardRejectionsAreJSON(t *testing.T) {
	r := newTestRouter(t)

	// Missing header and invalid token both use the API's standard
	// {"error": msg} shape, not plain text.
	cases := map[string]string{
		"missing header": "",
		"invalid token":  "not-a-real-token",
	}
	for name, token := range cases {
		rec := doRequest(t, r, http.MethodGet, "/api/resources", token, nil)
		require.Equalf(t, http.StatusUnauthorized, rec.Code, "case %q", name)
		require.Equalf(t, "application/json", rec.Header().Get("Content-Type"), "case %q", name)

		var body map[string]string
		decode(t, rec, &body)
		require.NotEmptyf(t, body["error"], "case %q", name)
	}
}
