package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOrigins = []string{"http://localhost:3000", "http://localhost:3001"}

func corsApp(requireOrigin bool) (*fiber.App, *int) {
	hits := new(int)
	app := fiber.New()
	app.Use(OriginGuard(testOrigins, requireOrigin), CORS(testOrigins))
	app.Get("/ping", func(c *fiber.Ctx) error {
		*hits++
		return c.SendString("pong")
	})
	return app, hits
}

func TestOriginGuard(t *testing.T) {
	tests := []struct {
		name          string
		origin        string
		requireOrigin bool
		wantStatus    int
		wantHits      int
	}{
		{"allowed origin", "http://localhost:3000", false, http.StatusOK, 1},
		{"second allowed origin", "http://localhost:3001", true, http.StatusOK, 1},
		{"disallowed origin", "http://evil.example", false, http.StatusForbidden, 0},
		{"no origin", "", false, http.StatusOK, 1},
		{"no origin when required", "", true, http.StatusForbidden, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, hits := corsApp(tt.requireOrigin)
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantHits, *hits)
			if tt.wantStatus == http.StatusForbidden {
				body, _ := io.ReadAll(resp.Body)
				assert.JSONEq(t, `{"message":"Not allowed by CORS."}`, string(body))
			}
		})
	}
}

func TestCORSHeaders(t *testing.T) {
	app, _ := corsApp(false)
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}
