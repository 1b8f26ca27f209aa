package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"altroway_backend/internals/databases/dbtest"
	notificationModel "altroway_backend/internals/features/home/notifications/model"
	applicationModel "altroway_backend/internals/features/jobs/applications/model"
	jobModel "altroway_backend/internals/features/jobs/jobs/model"
	profileModel "altroway_backend/internals/features/users/profiles/model"
)

func seed(t *testing.T, db *gorm.DB) (uuid.UUID, []jobModel.JobModel) {
	t.Helper()
	user := profileModel.UserProfileModel{Email: "applicant@example.com"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	jobs := []jobModel.JobModel{
		{Title: "Baker", Company: "Brot AG", Location: "Bern", Country: "Switzerland", Industry: "Food", IsActive: true},
		{Title: "Plumber", Company: "Pipes Ltd", Location: "Dublin", Country: "Ireland", Industry: "Construction", IsActive: true},
	}
	if err := db.Create(&jobs).Error; err != nil {
		t.Fatalf("seed jobs: %v", err)
	}
	return user.ID, jobs
}

func TestApplyAndListApplications(t *testing.T) {
	db := dbtest.New(t)
	svc := NewApplicationService(db)
	ctx := context.Background()
	userID, jobs := seed(t, db)

	first, err := svc.ApplyForJob(ctx, userID, jobs[0].ID, ApplyInput{})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if first.Status != profileModel.StatusReceived {
		t.Fatalf("default status: got %q", first.Status)
	}
	// make the second application strictly newer
	db.Model(&applicationModel.JobApplicationModel{}).Where("id = ?", first.ID).
		Update("applied_at", time.Now().Add(-time.Hour))
	letter := "Hello"
	if _, err := svc.ApplyForJob(ctx, userID, jobs[1].ID, ApplyInput{CoverLetter: &letter}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	list, err := svc.GetUserApplications(ctx, userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("want 2 applications, got %d", len(list))
	}
	if list[0].Job == nil || list[0].Job.Title != "Plumber" || list[1].Job.Title != "Baker" {
		t.Fatalf("job not preloaded or wrong order: %+v", list)
	}

	if _, err := svc.ApplyForJob(ctx, userID, uuid.New(), ApplyInput{}); err == nil {
		t.Fatal("applying to a missing job must fail")
	}
}

func TestUpdateApplicationStatusNotifiesApplicant(t *testing.T) {
	db := dbtest.New(t)
	svc := NewApplicationService(db)
	ctx := context.Background()
	userID, jobs := seed(t, db)

	app, err := svc.ApplyForJob(ctx, userID, jobs[0].ID, ApplyInput{})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	// resolved -> received is allowed, there is no transition order
	for _, st := range []profileModel.ApplicationStatus{profileModel.StatusResolved, profileModel.StatusReceived} {
		got, err := svc.UpdateApplicationStatus(ctx, app.ID, st)
		if err != nil {
			t.Fatalf("update to %s: %v", st, err)
		}
		if got.Status != st {
			t.Fatalf("status: want %s got %s", st, got.Status)
		}
	}

	var notes []notificationModel.NotificationModel
	db.Where("user_id = ? AND type = ?", userID, notificationModel.TypeApplicationUpdate).Find(&notes)
	if len(notes) != 2 {
		t.Fatalf("want 2 application_update notifications, got %d", len(notes))
	}

	if _, err := svc.UpdateApplicationStatus(ctx, uuid.New(), profileModel.StatusResolved); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
	if _, err := svc.UpdateApplicationStatus(ctx, app.ID, "approved"); err == nil {
		t.Fatal("unknown status must be rejected")
	}
}
