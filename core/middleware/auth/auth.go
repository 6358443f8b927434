package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Config holds the auth middleware settings.
type Config struct {
	// ApiKey is the expected key. An empty key disables the check.
	ApiKey string
	// Skip lists path prefixes served without a key.
	Skip []string
}

// New returns a middleware requiring the API key in X-API-Key or as a Bearer token.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}
		for _, prefix := range cfg.Skip {
			if strings.HasPrefix(c.Path(), prefix) {
				return c.Next()
			}
		}

		key := c.Get("X-API-Key")
		if key == "" {
			key = strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		}
		if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.ApiKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		return c.Next()
	}
}
