package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request id.
const HeaderName = "X-Ray-ID"

// LocalsKey is the fiber locals key read by logger.WithRayID.
const LocalsKey = "ray_id"

// New returns a middleware that tags every request with a RayID.
// An incoming X-Ray-ID header is reused when present.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}
