// Package rayid assigns a unique ray id to every incoming request for
// end-to-end tracing across logs and responses.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the header carrying the ray id on requests and responses.
const HeaderName = "X-Ray-ID"

// New returns a middleware that reuses an incoming ray id or generates a
// fresh one, storing it in locals and echoing it on the response.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
