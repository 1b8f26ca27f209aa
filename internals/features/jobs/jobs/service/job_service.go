package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"altroway_backend/internals/features/jobs/jobs/dto"
	"altroway_backend/internals/features/jobs/jobs/model"
	helper "altroway_backend/internals/helpers"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// GetAllJobs returns active jobs, newest first. Filters are AND-combined;
// search is a case-insensitive substring match on title or company.
func (s *JobService) GetAllJobs(ctx context.Context, f dto.JobFilter) ([]model.JobModel, error) {
	q := s.DB.WithContext(ctx).Model(&model.JobModel{}).Where("is_active = ?", true)
	if v := strings.TrimSpace(f.Country); v != "" {
		q = q.Where("country = ?", v)
	}
	if v := strings.TrimSpace(f.Industry); v != "" {
		q = q.Where("industry = ?", v)
	}
	if f.UrgentOnly() {
		q = q.Where("is_urgent = ?", true)
	}
	if v := strings.TrimSpace(f.Search); v != "" {
		pattern := "%" + escapeLike(strings.ToLower(v)) + "%"
		q = q.Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(company) LIKE ? ESCAPE '\')`, pattern, pattern)
	}

	jobs := []model.JobModel{}
	if err := q.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJobsByCategory lists active jobs of one industry.
func (s *JobService) GetJobsByCategory(ctx context.Context, industry string) ([]model.JobModel, error) {
	return s.GetAllJobs(ctx, dto.JobFilter{Industry: industry})
}

func (s *JobService) GetJob(ctx context.Context, id uuid.UUID) (*model.JobModel, error) {
	var j model.JobModel
	if err := s.DB.WithContext(ctx).First(&j, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &j, nil
}

func (s *JobService) CreateJob(ctx context.Context, j *model.JobModel) (*model.JobModel, error) {
	if j.ProcessTime != "" && !j.ProcessTime.Valid() {
		return nil, helper.Invalid("invalid process_time %q", j.ProcessTime)
	}
	if j.JobType != "" && !j.JobType.Valid() {
		return nil, helper.Invalid("invalid job_type %q", j.JobType)
	}
	if j.SalaryMin != nil && j.SalaryMax != nil && *j.SalaryMin > *j.SalaryMax {
		return nil, helper.Invalid("salary_min must not exceed salary_max")
	}
	if err := s.DB.WithContext(ctx).Create(j).Error; err != nil {
		return nil, err
	}
	return j, nil
}

func (s *JobService) UpdateJob(ctx context.Context, id uuid.UUID, patch map[string]any) (*model.JobModel, error) {
	if len(patch) == 0 {
		return s.GetJob(ctx, id)
	}
	var updated model.JobModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.JobModel{}).Where("id = ?", id).Updates(patch)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&updated, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeactivateJob hides a job from listings; applications keep pointing at it.
func (s *JobService) DeactivateJob(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Model(&model.JobModel{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountActive is used by the dashboard and the DB warm-up.
func (s *JobService) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&model.JobModel{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
