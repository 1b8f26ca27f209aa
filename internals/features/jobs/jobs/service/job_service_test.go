package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"altroway_backend/internals/databases/dbtest"
	"altroway_backend/internals/features/jobs/jobs/dto"
	"altroway_backend/internals/features/jobs/jobs/model"
)

func seedJobs(t *testing.T, db *gorm.DB) {
	t.Helper()
	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	jobs := []model.JobModel{
		{Title: "Welder", Company: "Hansa Metall", Location: "Hamburg", Country: "Germany", Industry: "Manufacturing", IsUrgent: true, IsActive: true, CreatedAt: base},
		{Title: "Nurse", Company: "Charite", Location: "Berlin", Country: "Germany", Industry: "Healthcare", IsUrgent: false, IsActive: true, CreatedAt: base.Add(time.Hour)},
		{Title: "Care Assistant", Company: "WeldCare GmbH", Location: "Munich", Country: "Germany", Industry: "Healthcare", IsUrgent: true, IsActive: true, CreatedAt: base.Add(2 * time.Hour)},
		{Title: "Electrician", Company: "Voltaire", Location: "Lyon", Country: "France", Industry: "Construction", IsUrgent: true, IsActive: true, CreatedAt: base.Add(3 * time.Hour)},
		{Title: "Welder Senior", Company: "Old Works", Location: "Bremen", Country: "Germany", Industry: "Manufacturing", IsUrgent: true, IsActive: false, CreatedAt: base.Add(4 * time.Hour)},
		{Title: "100% Remote_Dev", Company: "Byte", Location: "Riga", Country: "Latvia", Industry: "IT", IsActive: true, CreatedAt: base.Add(5 * time.Hour)},
	}
	for i := range jobs {
		if err := db.Create(&jobs[i]).Error; err != nil {
			t.Fatalf("seed job: %v", err)
		}
	}
}

func titles(jobs []model.JobModel) string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.Title
	}
	return strings.Join(out, ",")
}

func TestGetAllJobsFilters(t *testing.T) {
	db := dbtest.New(t)
	seedJobs(t, db)
	svc := NewJobService(db)

	cases := []struct {
		name   string
		filter dto.JobFilter
		want   string
	}{
		{"active only newest first", dto.JobFilter{}, "100% Remote_Dev,Electrician,Care Assistant,Nurse,Welder"},
		{"country and urgent", dto.JobFilter{Country: "Germany", Urgent: "true"}, "Care Assistant,Welder"},
		{"urgent must be literal true", dto.JobFilter{Country: "Germany", Urgent: "1"}, "Care Assistant,Nurse,Welder"},
		{"industry", dto.JobFilter{Industry: "Healthcare"}, "Care Assistant,Nurse"},
		{"search title or company, case-insensitive", dto.JobFilter{Search: "WELD"}, "Care Assistant,Welder"},
		{"search combined with country", dto.JobFilter{Search: "weld", Country: "France"}, ""},
		{"search wildcards are literal", dto.JobFilter{Search: "0% r"}, "100% Remote_Dev"},
		{"underscore is literal", dto.JobFilter{Search: "e_d"}, "100% Remote_Dev"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			jobs, err := svc.GetAllJobs(context.Background(), tc.filter)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if got := titles(jobs); got != tc.want {
				t.Fatalf("want=%q got=%q", tc.want, got)
			}
		})
	}
}

func TestCreateJobDefaults(t *testing.T) {
	db := dbtest.New(t)
	svc := NewJobService(db)

	req := dto.CreateJobRequest{Title: "Cook", Company: "Trattoria", Location: "Rome", Country: "Italy", Industry: "Hospitality"}
	job, err := svc.CreateJob(context.Background(), req.ToModel())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := svc.GetJob(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.IsActive || got.ProcessTime != model.ProcessAverage || got.JobType != model.JobFullTime {
		t.Fatalf("defaults not applied: active=%v process=%q type=%q", got.IsActive, got.ProcessTime, got.JobType)
	}

	lo, hi := 3000, 2000
	bad := req.ToModel()
	bad.SalaryMin, bad.SalaryMax = &lo, &hi
	if _, err := svc.CreateJob(context.Background(), bad); err == nil {
		t.Fatal("expected salary range error")
	}
}

func TestUpdateAndDeactivateJob(t *testing.T) {
	db := dbtest.New(t)
	svc := NewJobService(db)
	job, err := svc.CreateJob(context.Background(), &model.JobModel{Title: "Driver", Company: "Trans", Location: "Oslo", Country: "Norway", Industry: "Logistics", IsActive: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateJob(context.Background(), job.ID, map[string]any{"is_urgent": true, "location": "Bergen"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.IsUrgent || updated.Location != "Bergen" {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := svc.DeactivateJob(context.Background(), job.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	jobs, _ := svc.GetAllJobs(context.Background(), dto.JobFilter{})
	if len(jobs) != 0 {
		t.Fatalf("deactivated job still listed: %s", titles(jobs))
	}
	if _, err := svc.GetJob(context.Background(), job.ID); err != nil {
		t.Fatalf("deactivated job should remain readable: %v", err)
	}

	other, _ := svc.CreateJob(context.Background(), &model.JobModel{Title: "x", Company: "y", Location: "z", Country: "c", Industry: "i", IsActive: true})
	if err := db.Delete(other).Error; err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if err := svc.DeactivateJob(context.Background(), other.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}
