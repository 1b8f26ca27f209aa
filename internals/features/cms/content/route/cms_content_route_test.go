package route

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"altroway_backend/internals/databases/dbtest"
	helper "altroway_backend/internals/helpers"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode: %v", method, path, err)
	}
	return resp.StatusCode, env
}

func newApp(t *testing.T) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	open := func(c *fiber.Ctx) error { return c.Next() }
	ContentRoutes(app.Group("/api"), dbtest.New(t), open)
	return app
}

func TestContentCreateThenDelete(t *testing.T) {
	app := newApp(t)

	status, env := do(t, app, "POST", "/api/cms/content", `{"type":"faq","title":"X","content":"Y","status":"draft"}`)
	if status != 200 || !env.Success {
		t.Fatalf("create: status=%d env=%+v", status, env)
	}
	if env.Message != "Content created successfully" {
		t.Fatalf("create message: %q", env.Message)
	}
	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.ID == "" || created.Status != "draft" {
		t.Fatalf("created record: %+v", created)
	}

	status, env = do(t, app, "DELETE", "/api/cms/content/"+created.ID, "")
	if status != 200 || !env.Success || env.Message != "Content deleted successfully" {
		t.Fatalf("delete: status=%d env=%+v", status, env)
	}

	status, env = do(t, app, "GET", "/api/cms/content?type=faq", "")
	if status != 200 || !env.Success {
		t.Fatalf("list: status=%d env=%+v", status, env)
	}
	var rows []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	for _, r := range rows {
		if r.ID == created.ID {
			t.Fatal("deleted record still listed")
		}
	}

	// a second delete reports the store error verbatim
	status, env = do(t, app, "DELETE", "/api/cms/content/"+created.ID, "")
	if status != 400 || env.Success || env.Error != "record not found" {
		t.Fatalf("second delete: status=%d env=%+v", status, env)
	}
}

func TestContentCreateValidation(t *testing.T) {
	app := newApp(t)

	cases := []struct {
		body string
		want string
	}{
		{`{"title":"X"}`, "type is required"},
		{`{"type":"blog","title":"X"}`, "type must be one of: page, job, guide, testimonial, faq"},
		{`{"type":"testimonial","title":"X","metadata":{"author":"A","rating":0}}`, "metadata.rating must be between 1 and 5"},
		{`{"type":"testimonial","title":"X"}`, "metadata.rating must be between 1 and 5"},
	}
	for _, tc := range cases {
		status, env := do(t, app, "POST", "/api/cms/content", tc.body)
		if status != 400 || env.Success || env.Error != tc.want {
			t.Fatalf("%s: status=%d env=%+v", tc.body, status, env)
		}
	}
}

func TestContentListRejectsUnknownFilter(t *testing.T) {
	app := newApp(t)
	status, env := do(t, app, "GET", "/api/cms/content?status=archived", "")
	if status != 400 || env.Success {
		t.Fatalf("status=%d env=%+v", status, env)
	}
}
