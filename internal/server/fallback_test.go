package server

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDegradedServer(t *testing.T) *fiber.App {
	t.Helper()

	srv := newDegradedServer(testConfig())
	app := fiber.New()
	srv.SetupRoutes(app)
	return app
}

func TestDegradedListServesPlaceholders(t *testing.T) {
	app := setupDegradedServer(t)

	resp, list := doJSONList(t, app, http.MethodGet, "/api/projects", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list, 3)
	assert.Equal(t, "Auto Mail Reply", list[0]["title"])
	assert.Equal(t, "CalDAV Calendar", list[2]["title"])
}

func TestDegradedGetPlaceholderByID(t *testing.T) {
	app := setupDegradedServer(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/projects/2", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Car Rental System", body["title"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/projects/99", nil, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Project not found", body["message"])
}

func TestDegradedStoreBackedRoutesAnswer503(t *testing.T) {
	app := setupDegradedServer(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/projects"},
		{http.MethodPost, "/api/auth/login"},
		{http.MethodPost, "/api/contact"},
		{http.MethodGet, "/api/contact"},
	} {
		resp, body := doJSON(t, app, tc.method, tc.path, map[string]any{}, "")
		require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, "%s %s", tc.method, tc.path)
		assert.Equal(t, "Database unavailable", body["message"])
	}
}

func TestDegradedReadinessReportsDegraded(t *testing.T) {
	app := setupDegradedServer(t)

	resp, body := doJSON(t, app, http.MethodGet, "/health/ready", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "degraded", body["status"])
}
