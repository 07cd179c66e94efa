package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"notes-api/app"
	"notes-api/config"
	"notes-api/config/setup"
	"notes-api/database"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:          "test",
		CORSOrigins:  "*",
		LogLevel:     "error",
		RateLimitMax: 1000,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupTestServer wires the full middleware and route stack on top of a
// fresh SQLite database.
func setupTestServer(t *testing.T) *fiber.App {
	t.Helper()

	url := "sqlite://" + filepath.Join(t.TempDir(), "test.db")
	db, err := setup.InitDatabase(context.Background(), url, testLogger())
	require.NoError(t, err, "Failed to initialize test database")
	t.Cleanup(func() { db.Disconnect() })

	return newServer(testConfig(), setup.InitApp(db, testLogger()))
}

func newServer(cfg *config.Config, application *app.App) *fiber.App {
	fiberApp := setup.NewFiberApp(cfg, testLogger())
	setup.ApplyMiddleware(fiberApp, cfg, testLogger())
	setup.RegisterRoutes(fiberApp, application)
	return fiberApp
}

// disconnectedApp returns an application whose database was never opened.
func disconnectedApp(t *testing.T) *app.App {
	t.Helper()

	db, err := database.Configure("sqlite://" + filepath.Join(t.TempDir(), "never.db"))
	require.NoError(t, err)
	return app.New(database.NewRepository(db), db, testLogger())
}

func doRequest(t *testing.T, fiberApp *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
