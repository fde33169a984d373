// Package auth implements HTTP Basic authentication for the API surface.
package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Config holds the expected Basic Auth credentials.
type Config struct {
	Username string
	Password string
}

// New returns a middleware enforcing HTTP Basic Auth. Credentials are
// compared in constant time to avoid timing side channels. Both the
// username and the password must match.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username, password, ok := parseBasicAuth(c.Get(fiber.HeaderAuthorization))
		if !ok || !credentialsMatch(cfg, username, password) {
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="restricted"`)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid credentials",
			})
		}
		c.Locals("username", username)
		return c.Next()
	}
}

func credentialsMatch(cfg Config, username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.Password)) == 1
	return userOK && passOK
}

func parseBasicAuth(header string) (username, password string, ok bool) {
	const prefix = "Basic "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}
	username, password, ok = strings.Cut(string(decoded), ":")
	return username, password, ok
}
