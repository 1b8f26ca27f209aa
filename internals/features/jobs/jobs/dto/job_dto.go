package dto

import (
	"strings"

	"altroway_backend/internals/features/jobs/jobs/model"
)

// JobFilter carries the GET /api/jobs query. Empty fields do not filter.
type JobFilter struct {
	Country  string `query:"country"`
	Industry string `query:"industry"`
	Search   string `query:"search"`
	Urgent   string `query:"urgent"`
}

// UrgentOnly is true only for the literal "true".
func (f JobFilter) UrgentOnly() bool {
	return strings.TrimSpace(f.Urgent) == "true"
}

type CreateJobRequest struct {
	Title        string  `json:"title" validate:"required,max=255"`
	Company      string  `json:"company" validate:"required,max=255"`
	Profile      *string `json:"profile" validate:"omitempty,max=255"`
	Location     string  `json:"location" validate:"required,max=255"`
	Country      string  `json:"country" validate:"required,max=100"`
	Industry     string  `json:"industry" validate:"required,max=100"`
	SalaryMin    *int    `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax    *int    `json:"salary_max" validate:"omitempty,gte=0"`
	ProcessTime  string  `json:"process_time" validate:"omitempty,oneof=fast average slow"`
	JobType      string  `json:"job_type" validate:"omitempty,oneof=full_time part_time contract"`
	Description  *string `json:"description"`
	Requirements *string `json:"requirements"`
	IsUrgent     bool    `json:"is_urgent"`
	IsActive     *bool   `json:"is_active"`
}

// ToModel defaults is_active to true when absent.
func (r CreateJobRequest) ToModel() *model.JobModel {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &model.JobModel{
		Title:        strings.TrimSpace(r.Title),
		Company:      strings.TrimSpace(r.Company),
		Profile:      r.Profile,
		Location:     strings.TrimSpace(r.Location),
		Country:      strings.TrimSpace(r.Country),
		Industry:     strings.TrimSpace(r.Industry),
		SalaryMin:    r.SalaryMin,
		SalaryMax:    r.SalaryMax,
		ProcessTime:  model.ProcessTime(r.ProcessTime),
		JobType:      model.JobType(r.JobType),
		Description:  r.Description,
		Requirements: r.Requirements,
		IsUrgent:     r.IsUrgent,
		IsActive:     active,
	}
}

type UpdateJobRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=1,max=255"`
	Company      *string `json:"company" validate:"omitempty,min=1,max=255"`
	Profile      *string `json:"profile" validate:"omitempty,max=255"`
	Location     *string `json:"location" validate:"omitempty,max=255"`
	Country      *string `json:"country" validate:"omitempty,max=100"`
	Industry     *string `json:"industry" validate:"omitempty,max=100"`
	SalaryMin    *int    `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax    *int    `json:"salary_max" validate:"omitempty,gte=0"`
	ProcessTime  *string `json:"process_time" validate:"omitempty,oneof=fast average slow"`
	JobType      *string `json:"job_type" validate:"omitempty,oneof=full_time part_time contract"`
	Description  *string `json:"description"`
	Requirements *string `json:"requirements"`
	IsUrgent     *bool   `json:"is_urgent"`
	IsActive     *bool   `json:"is_active"`
}

func (r UpdateJobRequest) ToUpdateMap() map[string]any {
	out := map[string]any{}
	str := func(col string, v *string) {
		if v != nil {
			out[col] = strings.TrimSpace(*v)
		}
	}
	str("title", r.Title)
	str("company", r.Company)
	str("profile", r.Profile)
	str("location", r.Location)
	str("country", r.Country)
	str("industry", r.Industry)
	str("process_time", r.ProcessTime)
	str("job_type", r.JobType)
	str("description", r.Description)
	str("requirements", r.Requirements)
	if r.SalaryMin != nil {
		out["salary_min"] = *r.SalaryMin
	}
	if r.SalaryMax != nil {
		out["salary_max"] = *r.SalaryMax
	}
	if r.IsUrgent != nil {
		out["is_urgent"] = *r.IsUrgent
	}
	if r.IsActive != nil {
		out["is_active"] = *r.IsActive
	}
	return out
}
