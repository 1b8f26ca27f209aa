package middlewares

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	helper "altroway_backend/internals/helpers"
)

func TestRequestContextSetsID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestContext(time.Second, 5*time.Second))
	app.Get("/", func(c *fiber.Ctx) error {
		dl, ok := c.UserContext().Deadline()
		if !ok || time.Until(dl) > time.Second {
			t.Errorf("deadline not applied: %v %v", dl, ok)
		}
		return c.SendString(helper.RequestID(c))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.Header.Get(fiber.HeaderXRequestID) == "" {
		t.Fatal("missing generated request id")
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(fiber.HeaderXRequestID, "client-id")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if got := resp.Header.Get(fiber.HeaderXRequestID); got != "client-id" {
		t.Fatalf("request id: want=client-id got=%q", got)
	}
}
