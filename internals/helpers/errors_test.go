package helper

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"required field", Required("userId"), 400, "userId is required"},
		{"custom validation", Invalid("Missing required fields"), 400, "Missing required fields"},
		{"record not found passes through", gorm.ErrRecordNotFound, 400, "record not found"},
		{"wrapped store error", fmt.Errorf("save: %w", errors.New("duplicate key")), 400, "save: duplicate key"},
		{"unique violation", &pgconn.PgError{Severity: "ERROR", Code: "23505", Message: "duplicate key value violates unique constraint"}, 400, "ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)"},
		{"statement timeout", &pgconn.PgError{Code: "57014", Message: "canceling statement"}, 500, InternalServerErrorMessage},
		{"internal", Internal(errors.New("boom")), 500, InternalServerErrorMessage},
		{"bad conn", fmt.Errorf("query: %w", driver.ErrBadConn), 500, InternalServerErrorMessage},
		{"deadline", context.DeadlineExceeded, 500, InternalServerErrorMessage},
		{"fiber 404", fiber.ErrNotFound, 404, "Not Found"},
		{"fiber 503", fiber.ErrServiceUnavailable, 503, InternalServerErrorMessage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := Classify(tc.err)
			if status != tc.wantStatus || msg != tc.wantMsg {
				t.Fatalf("want=(%d,%q) got=(%d,%q)", tc.wantStatus, tc.wantMsg, status, msg)
			}
		})
	}
}

func TestInternalNil(t *testing.T) {
	if Internal(nil) != nil {
		t.Fatalf("Internal(nil) must stay nil")
	}
}

func TestJsonFailEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/store", func(c *fiber.Ctx) error { return JsonFail(c, errors.New("Invalid login credentials")) })
	app.Get("/boom", func(c *fiber.Ctx) error { return JsonFail(c, Internal(errors.New("dial tcp: refused"))) })
	app.Get("/ok", func(c *fiber.Ctx) error { return JsonCreated(c, "Job created successfully", fiber.Map{"id": "1"}) })

	cases := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/store", 400, `{"success":false,"error":"Invalid login credentials"}`},
		{"/boom", 500, `{"success":false,"error":"Internal server error"}`},
		{"/ok", 200, `"message":"Job created successfully"`},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil))
		if err != nil {
			t.Fatalf("%s: %v", tc.path, err)
		}
		b, _ := io.ReadAll(resp.Body)
		if resp.StatusCode != tc.wantStatus {
			t.Fatalf("%s status: want=%d got=%d", tc.path, tc.wantStatus, resp.StatusCode)
		}
		if !strings.Contains(string(b), tc.wantBody) {
			t.Fatalf("%s body: want contains %s got %s", tc.path, tc.wantBody, b)
		}
	}
}

func TestValidateStructMessages(t *testing.T) {
	type in struct {
		UserID   string `json:"userId" validate:"required"`
		Category string `json:"category" validate:"omitempty,oneof=migration personal"`
		Rating   int    `json:"rating" validate:"omitempty,min=1,max=5"`
	}
	err := ValidateStruct(in{})
	if err == nil || err.Error() != "userId is required" {
		t.Fatalf("unexpected: %v", err)
	}
	err = ValidateStruct(in{UserID: "u", Category: "other"})
	if err == nil || err.Error() != "category must be one of: migration, personal" {
		t.Fatalf("unexpected: %v", err)
	}
	err = ValidateStruct(in{UserID: "u", Rating: 9})
	if err == nil || !IsValidation(err) {
		t.Fatalf("rating 9 should be a validation error, got %v", err)
	}
	if err := ValidateStruct(in{UserID: "u", Category: "personal", Rating: 5}); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(45, NewPaging(2, 20, 20, 100))
	if p.TotalPages != 3 || !p.HasNext || !p.HasPrev || p.Page != 2 {
		t.Fatalf("unexpected pagination: %+v", p)
	}
	empty := BuildPagination(0, NewPaging(0, 0, 50, 100))
	if empty.TotalPages != 1 || empty.PerPage != 50 || empty.HasNext {
		t.Fatalf("unexpected empty pagination: %+v", empty)
	}
	capped := NewPaging(1, 1000, 20, 100)
	if capped.Limit != 100 {
		t.Fatalf("per_page cap: want 100 got %d", capped.Limit)
	}
}

func TestSinglePage(t *testing.T) {
	p := SinglePage(120)
	if p.Page != 1 || p.PerPage != 120 || p.TotalPages != 1 || p.HasNext {
		t.Fatalf("unexpected single page: %+v", p)
	}
	if empty := SinglePage(0); empty.PerPage != 1 || empty.TotalPages != 1 {
		t.Fatalf("unexpected empty single page: %+v", empty)
	}
	if uncapped := NewPaging(1, 1000, 20, 0); uncapped.Limit != 1000 {
		t.Fatalf("uncapped per_page: want 1000 got %d", uncapped.Limit)
	}
}
