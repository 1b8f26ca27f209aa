package service

import (
	"context"
	"testing"

	"altroway_backend/internals/databases/dbtest"
	jobModel "altroway_backend/internals/features/jobs/jobs/model"
	profileModel "altroway_backend/internals/features/users/profiles/model"
)

func TestSavedJobLifecycle(t *testing.T) {
	db := dbtest.New(t)
	svc := NewSavedJobService(db)
	ctx := context.Background()

	user := profileModel.UserProfileModel{Email: "saver@example.com"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	job := jobModel.JobModel{Title: "Farmhand", Company: "Agro", Location: "Lodz", Country: "Poland", Industry: "Agriculture", IsActive: true}
	if err := db.Create(&job).Error; err != nil {
		t.Fatalf("seed job: %v", err)
	}

	if _, err := svc.SaveJob(ctx, user.ID, job.ID); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := svc.SaveJob(ctx, user.ID, job.ID); err == nil {
		t.Fatal("saving twice must violate the unique pair")
	}
	saved, err := svc.IsJobSaved(ctx, user.ID, job.ID)
	if err != nil || !saved {
		t.Fatalf("is saved: %v %v", saved, err)
	}
	rows, err := svc.GetSavedJobs(ctx, user.ID)
	if err != nil || len(rows) != 1 || rows[0].Job == nil || rows[0].Job.Title != "Farmhand" {
		t.Fatalf("saved jobs: %v %+v", err, rows)
	}
	ids, err := svc.GetSavedJobIDs(ctx, user.ID)
	if err != nil || len(ids) != 1 || ids[0] != job.ID {
		t.Fatalf("ids: %v %v", ids, err)
	}

	state, err := svc.ToggleSavedJob(ctx, user.ID, job.ID)
	if err != nil || state {
		t.Fatalf("toggle off: saved=%v err=%v", state, err)
	}
	state, err = svc.ToggleSavedJob(ctx, user.ID, job.ID)
	if err != nil || !state {
		t.Fatalf("toggle on: saved=%v err=%v", state, err)
	}

	if err := svc.UnsaveJob(ctx, user.ID, job.ID); err != nil {
		t.Fatalf("unsave: %v", err)
	}
	if err := svc.UnsaveJob(ctx, user.ID, job.ID); err != nil {
		t.Fatalf("unsave twice: %v", err)
	}
	saved, _ = svc.IsJobSaved(ctx, user.ID, job.ID)
	if saved {
		t.Fatal("job still saved after unsave")
	}
}
