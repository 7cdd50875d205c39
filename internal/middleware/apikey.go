package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// APIKey lets a request through only when it presents the public key, either
// in the apikey header, as a bearer token, or as an apikey query parameter
// for clients such as EventSource that cannot set headers.
func APIKey(key string) fiber.Handler {
	want := []byte(key)
	return func(c *fiber.Ctx) error {
		got := c.Get("apikey")
		if got == "" {
			auth := c.Get("Authorization")
			if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
				got = strings.TrimSpace(auth[7:])
			}
		}
		if got == "" {
			got = c.Query("apikey")
		}
		if got == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing api key")
		}
		if subtle.ConstantTimeCompare([]byte(got), want) != 1 {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid api key")
		}
		return c.Next()
	}
}
