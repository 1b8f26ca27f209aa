package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	jobModel "altroway_backend/internals/features/jobs/jobs/model"
	profileModel "altroway_backend/internals/features/users/profiles/model"
)

type JobApplicationModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	JobID  uuid.UUID `gorm:"type:uuid;not null;index" json:"job_id"`

	Status      profileModel.ApplicationStatus `gorm:"type:varchar(20);not null;default:received" json:"status"`
	CoverLetter *string                        `gorm:"type:text" json:"cover_letter"`
	ResumePath  *string                        `gorm:"type:text" json:"resume_path"`

	AppliedAt time.Time `gorm:"autoCreateTime;index" json:"applied_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Job  *jobModel.JobModel             `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"job,omitempty"`
	User *profileModel.UserProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (JobApplicationModel) TableName() string { return "job_applications" }

func (a *JobApplicationModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = profileModel.StatusReceived
	}
	return nil
}
