package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProcessTime string

const (
	ProcessFast    ProcessTime = "fast"
	ProcessAverage ProcessTime = "average"
	ProcessSlow    ProcessTime = "slow"
)

func (p ProcessTime) Valid() bool {
	switch p {
	case ProcessFast, ProcessAverage, ProcessSlow:
		return true
	}
	return false
}

type JobType string

const (
	JobFullTime JobType = "full_time"
	JobPartTime JobType = "part_time"
	JobContract JobType = "contract"
)

func (t JobType) Valid() bool {
	switch t {
	case JobFullTime, JobPartTime, JobContract:
		return true
	}
	return false
}

type JobModel struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Title        string      `gorm:"size:255;not null" json:"title"`
	Company      string      `gorm:"size:255;not null" json:"company"`
	Profile      *string     `gorm:"size:255" json:"profile"`
	Location     string      `gorm:"size:255;not null" json:"location"`
	Country      string      `gorm:"size:100;not null;index" json:"country"`
	Industry     string      `gorm:"size:100;not null;index" json:"industry"`
	SalaryMin    *int        `json:"salary_min"`
	SalaryMax    *int        `json:"salary_max"`
	ProcessTime  ProcessTime `gorm:"type:varchar(20);not null" json:"process_time"`
	JobType      JobType     `gorm:"type:varchar(20);not null" json:"job_type"`
	Description  *string     `gorm:"type:text" json:"description"`
	Requirements *string     `gorm:"type:text" json:"requirements"`
	IsUrgent     bool        `gorm:"not null" json:"is_urgent"`
	IsActive     bool        `gorm:"not null;index" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (JobModel) TableName() string { return "jobs" }

func (j *JobModel) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.ProcessTime == "" {
		j.ProcessTime = ProcessAverage
	}
	if j.JobType == "" {
		j.JobType = JobFullTime
	}
	return nil
}
