package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(key string) *fiber.App {
	app := fiber.New()
	app.Use(New(Config{ApiKey: key}))
	app.Get("/restaurants", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		target string
		header string
		want   int
	}{
		{"Disabled", "", "/restaurants", "", fiber.StatusOK},
		{"Missing", "secret", "/restaurants", "", fiber.StatusUnauthorized},
		{"Wrong Header", "secret", "/restaurants", "nope", fiber.StatusUnauthorized},
		{"Header", "secret", "/restaurants", "secret", fiber.StatusOK},
		{"Query", "secret", "/restaurants?api_key=secret", "", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)
			if tt.header != "" {
				req.Header.Set(Header, tt.header)
			}

			resp, err := newApp(tt.key).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
