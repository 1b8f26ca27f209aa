package middlewares

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"
)

// RequestContext tags every request with X-Request-ID (reusing the
// client's when sent) and bounds its user context by timeout. Multipart
// uploads get uploadTimeout instead.
func RequestContext(timeout, uploadTimeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = utils.UUID()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.Locals("reqid", id)

		d := timeout
		if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
			d = uploadTimeout
		}
		ctx, cancel := context.WithTimeout(c.Context(), d)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
