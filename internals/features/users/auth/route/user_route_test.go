package route

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"altroway_backend/internals/databases/dbtest"
	authModel "altroway_backend/internals/features/users/auth/model"
	authService "altroway_backend/internals/features/users/auth/service"
	helper "altroway_backend/internals/helpers"
)

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func TestSignUpValidatesEmail(t *testing.T) {
	db := dbtest.New(t)
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	AuthRoutes(app.Group("/api"), db, authService.NewAuthService(db, "test-secret", time.Hour))

	// the sign-up limiter allows three attempts per window
	cases := []struct {
		body       string
		wantStatus int
		wantError  string
	}{
		{`{"email":"Bob <bob@example.com>","password":"secret12"}`, 400, "email must be a valid email"},
		{`{"email":"bob@example.com"}`, 400, "Email and password are required"},
		{`{"email":" Bob@Example.com ","password":"secret12"}`, 200, ""},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("POST", "/api/auth/signup", strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: %v", tc.body, err)
		}
		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			t.Fatalf("%s: decode: %v", tc.body, err)
		}
		resp.Body.Close()
		if resp.StatusCode != tc.wantStatus || env.Error != tc.wantError {
			t.Fatalf("%s: status=%d env=%+v", tc.body, resp.StatusCode, env)
		}
	}

	var emails []string
	db.Model(&authModel.AuthUserModel{}).Pluck("email", &emails)
	if len(emails) != 1 || emails[0] != "bob@example.com" {
		t.Fatalf("stored identities: %v", emails)
	}
}
