// file: internals/helpers/json_response.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"altroway_backend/internals/helpers/logger"
)

/* ===============================
   Success envelope
=================================*/

// JsonOK: {"success":true,"data":...} plus "message" when given.
func JsonOK(c *fiber.Ctx, message string, data any) error {
	body := fiber.Map{
		"success": true,
		"data":    data,
	}
	if strings.TrimSpace(message) != "" {
		body["message"] = message
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// JsonCreated answers 200, not 201; clients only look at "success".
func JsonCreated(c *fiber.Ctx, message string, data any) error {
	return JsonOK(c, message, data)
}

// JsonList: list with pagination block.
func JsonList(c *fiber.Ctx, data any, pagination Pagination) error {
	if pagination.Count == 0 {
		pagination.Count = lenOf(data)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"data":       data,
		"pagination": pagination,
	})
}

/* ===============================
   Failure envelope
=================================*/

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" || status >= fiber.StatusInternalServerError {
		message = InternalServerErrorMessage
	}
	return c.Status(status).JSON(ErrorResponse{Success: false, Error: message})
}

// JsonFail classifies err and writes the failure envelope.
// Masked (5xx) errors are logged with the request id first.
func JsonFail(c *fiber.Ctx, err error) error {
	status, msg := Classify(err)
	if status >= fiber.StatusInternalServerError {
		logger.L().Error("request failed",
			"request_id", RequestID(c),
			"method", c.Method(),
			"path", c.Path(),
			"err", err,
		)
	}
	return JsonError(c, status, msg)
}

// RequestID returns the id set by the request-id middleware ("" outside it).
func RequestID(c *fiber.Ctx) string {
	if v, ok := c.Locals("reqid").(string); ok {
		return v
	}
	return ""
}
