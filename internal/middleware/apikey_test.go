package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKey(t *testing.T) {
	app := fiber.New()
	app.Use(APIKey("pub"))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	cases := []struct {
		name   string
		header map[string]string
		target string
		want   int
	}{
		{"missing", nil, "/", fiber.StatusUnauthorized},
		{"header", map[string]string{"apikey": "pub"}, "/", fiber.StatusOK},
		{"bearer", map[string]string{"Authorization": "Bearer pub"}, "/", fiber.StatusOK},
		{"query", nil, "/?apikey=pub", fiber.StatusOK},
		{"wrong", map[string]string{"apikey": "nope"}, "/", fiber.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.target, nil)
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}
