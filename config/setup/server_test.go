package setup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes-api/config"
	"notes-api/middleware"
)

func TestCustomErrorHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Env: "test"}

	app := NewFiberApp(cfg, logger)
	app.Use(middleware.StructuredLogger(logger))
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("disk on fire")
	})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fmt.Errorf("wrapped: %w", fiber.NewError(fiber.StatusTeapot, "short and stout"))
	})

	tests := []struct {
		name        string
		target      string
		wantStatus  int
		wantMessage string
	}{
		{"Unknown route", "/nowhere", http.StatusNotFound, "Cannot GET /nowhere"},
		{"Plain error hides details", "/boom", http.StatusInternalServerError, "Internal server error"},
		{"Wrapped fiber error keeps its code", "/teapot", http.StatusTeapot, "short and stout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.target, nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			var body struct {
				Error     string `json:"error"`
				RequestID string `json:"request_id"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantMessage, body.Error)
			assert.NotEmpty(t, body.RequestID)
			assert.Equal(t, resp.Header.Get("X-Request-ID"), body.RequestID)
		})
	}
}
