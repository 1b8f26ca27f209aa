package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	jobModel "altroway_backend/internals/features/jobs/jobs/model"
	profileModel "altroway_backend/internals/features/users/profiles/model"
)

// SavedJobModel exists iff the user bookmarked the job.
type SavedJobModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_saved_jobs_user_job,priority:1" json:"user_id"`
	JobID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_saved_jobs_user_job,priority:2" json:"job_id"`
	SavedAt time.Time `gorm:"autoCreateTime;index" json:"saved_at"`

	Job  *jobModel.JobModel             `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"job,omitempty"`
	User *profileModel.UserProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SavedJobModel) TableName() string { return "saved_jobs" }

func (s *SavedJobModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
