package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/pixel-portfolio/utils/response"
)

// MethodNotAllowed is registered with All after a path's real handlers and
// answers every other method with 405 and an Allow header.
func MethodNotAllowed(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return response.MethodNotAllowed(c, allowed...)
	}
}
