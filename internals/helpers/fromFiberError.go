package helper

import "github.com/gofiber/fiber/v2"

// FiberErrorHandler is the app-level fiber.Config.ErrorHandler: unmatched routes,
// body-limit and limiter errors, and anything a handler returned unanswered
// all leave in the standard failure envelope.
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok && fe.Code < fiber.StatusInternalServerError {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonFail(c, err)
}
