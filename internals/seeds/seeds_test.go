package seeds

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"altroway_backend/internals/databases/dbtest"
	documentModel "altroway_backend/internals/features/documents/model"
	notificationModel "altroway_backend/internals/features/home/notifications/model"
	jobModel "altroway_backend/internals/features/jobs/jobs/model"
	savedJobModel "altroway_backend/internals/features/jobs/saved_jobs/model"
	authService "altroway_backend/internals/features/users/auth/service"
	profileModel "altroway_backend/internals/features/users/profiles/model"
	helper "altroway_backend/internals/helpers"
	"altroway_backend/internals/seeds/jobs"
)

func TestSeedJobsSkipsExisting(t *testing.T) {
	db := dbtest.New(t)

	first, err := jobs.SeedJobs(db)
	if err != nil || first == 0 {
		t.Fatalf("first run: inserted=%d err=%v", first, err)
	}
	second, err := jobs.SeedJobs(db)
	if err != nil || second != 0 {
		t.Fatalf("second run: inserted=%d err=%v", second, err)
	}
	var n int64
	db.Model(&jobModel.JobModel{}).Count(&n)
	if int(n) != first {
		t.Fatalf("jobs: want=%d got=%d", first, n)
	}
}

func TestSeedTestAccounts(t *testing.T) {
	db := dbtest.New(t)
	if _, err := jobs.SeedJobs(db); err != nil {
		t.Fatalf("seed jobs: %v", err)
	}
	auth := authService.NewAuthService(db, "test-secret", time.Hour)
	ctx := context.Background()

	accounts, err := SeedTestAccounts(ctx, db, auth)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if accounts.TestUser.Role != "user" || accounts.AdminUser.Role != "admin" {
		t.Fatalf("roles: %+v", accounts)
	}

	in, err := auth.SignIn(ctx, TestUserEmail, TestUserPassword)
	if err != nil {
		t.Fatalf("test user sign in: %v", err)
	}
	var user profileModel.UserProfileModel
	if err := db.First(&user, "id = ?", in.User.ID).Error; err != nil {
		t.Fatalf("test user profile: %v", err)
	}
	if user.IsAdmin || user.ApplicationStatus != profileModel.StatusUnderReview {
		t.Fatalf("test user profile: %+v", user)
	}

	var admin profileModel.UserProfileModel
	if err := db.First(&admin, "email = ?", AdminUserEmail).Error; err != nil {
		t.Fatalf("admin profile: %v", err)
	}
	if !admin.IsAdmin || admin.ApplicationStatus != profileModel.StatusResolved {
		t.Fatalf("admin profile: %+v", admin)
	}

	var docs, saved, unread int64
	db.Model(&documentModel.DocumentModel{}).Where("user_id = ?", user.ID).Count(&docs)
	db.Model(&savedJobModel.SavedJobModel{}).Where("user_id = ?", user.ID).Count(&saved)
	db.Model(&notificationModel.NotificationModel{}).Where("user_id = ? AND is_read = ?", user.ID, false).Count(&unread)
	if docs != 3 || saved != 3 || unread != 2 {
		t.Fatalf("sample data: docs=%d saved=%d unread=%d", docs, saved, unread)
	}

	if _, err := SeedTestAccounts(ctx, db, auth); err != authService.ErrUserExists {
		t.Fatalf("second run: want ErrUserExists got %v", err)
	}
}

func TestSeedTestAccountsWithoutJobs(t *testing.T) {
	db := dbtest.New(t)
	auth := authService.NewAuthService(db, "test-secret", time.Hour)
	if _, err := SeedTestAccounts(context.Background(), db, auth); err != nil {
		t.Fatalf("seed: %v", err)
	}
	var saved int64
	db.Model(&savedJobModel.SavedJobModel{}).Count(&saved)
	if saved != 0 {
		t.Fatalf("saved jobs: want=0 got=%d", saved)
	}
}

func TestSetupTestAccountsEndpoint(t *testing.T) {
	db := dbtest.New(t)
	auth := authService.NewAuthService(db, "test-secret", time.Hour)
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	app.Post("/api/setup-test-accounts", SetupTestAccounts(db, auth))

	resp, err := app.Test(httptest.NewRequest("POST", "/api/setup-test-accounts", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	var body struct {
		Success  bool         `json:"success"`
		Message  string       `json:"message"`
		Accounts TestAccounts `json:"accounts"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.StatusCode != 200 || !body.Success || body.Message != "Test accounts created successfully" {
		t.Fatalf("first call: %d %+v", resp.StatusCode, body)
	}
	if body.Accounts.AdminUser.Email != AdminUserEmail {
		t.Fatalf("admin email: %q", body.Accounts.AdminUser.Email)
	}

	resp, err = app.Test(httptest.NewRequest("POST", "/api/setup-test-accounts", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	var fail helper.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&fail); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.StatusCode != 400 || fail.Success || fail.Error != authService.ErrUserExists.Error() {
		t.Fatalf("second call: %d %+v", resp.StatusCode, fail)
	}
}
