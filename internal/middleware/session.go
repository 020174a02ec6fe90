package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

var protectedPrefixes = []string{"/admin", "/psychologist", "/patient"}

const loginPath = "/login"

// SessionRequired gates the dashboard path prefixes on the presence of the
// session cookie. The cookie is not validated here; issuing and verifying it
// belongs to the auth provider.
func SessionRequired(cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		if strings.HasPrefix(path, "/api/") || isStaticAsset(path) {
			return c.Next()
		}

		if isProtected(path) && c.Cookies(cookieName) == "" {
			return c.Redirect(loginPath, fiber.StatusFound)
		}

		return c.Next()
	}
}

func isProtected(path string) bool {
	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func isStaticAsset(path string) bool {
	if strings.HasPrefix(path, "/static/") || strings.HasPrefix(path, "/assets/") {
		return true
	}
	return strings.Contains(path[strings.LastIndex(path, "/")+1:], ".")
}
