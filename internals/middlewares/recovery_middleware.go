package middlewares

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	helper "altroway_backend/internals/helpers"
	"altroway_backend/internals/helpers/logger"
)

const locPanicked = "panicked"

// RecoveryMiddleware turns a panic into the masked 500 envelope.
func RecoveryMiddleware() fiber.Handler {
	rec := recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			c.Locals(locPanicked, true)
			logger.L().Error("panic recovered",
				"request_id", helper.RequestID(c),
				"path", c.Path(),
				"panic", fmt.Sprint(e),
				"stack", string(debug.Stack()),
			)
		},
	})
	return func(c *fiber.Ctx) error {
		err := rec(c)
		if err != nil && c.Locals(locPanicked) == true {
			return helper.Internal(err)
		}
		return err
	}
}
