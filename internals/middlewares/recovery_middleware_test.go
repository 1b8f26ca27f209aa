package middlewares

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	helper "altroway_backend/internals/helpers"
)

func TestRecoveryMiddlewareMasksPanics(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	app.Use(RecoveryMiddleware())
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("nil map write in handler")
	})
	app.Get("/fine", func(c *fiber.Ctx) error {
		return helper.JsonOK(c, "", "ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/panic", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("status: want=500 got=%d", resp.StatusCode)
	}
	if string(body) != `{"success":false,"error":"Internal server error"}` {
		t.Fatalf("body: %s", body)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/fine", nil))
	if err != nil || resp.StatusCode != fiber.StatusOK {
		t.Fatalf("non panicking route broken: %v %v", err, resp.StatusCode)
	}
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	resp, err := app.Test(httptest.NewRequest("GET", "/nope", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status: want=404 got=%d", resp.StatusCode)
	}
	if string(body) != `{"success":false,"error":"Cannot GET /nope"}` {
		t.Fatalf("body: %s", body)
	}
}
