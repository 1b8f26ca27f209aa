package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"altroway_backend/internals/helpers/dbtime"
)

type EducationLevel string

const (
	EducationSecondary   EducationLevel = "secondary"
	EducationSpecialised EducationLevel = "specialised"
	EducationHigher      EducationLevel = "higher"
)

func (e EducationLevel) Valid() bool {
	switch e {
	case EducationSecondary, EducationSpecialised, EducationHigher:
		return true
	}
	return false
}

// ApplicationStatus is shared by a profile's intake file and job applications.
type ApplicationStatus string

const (
	StatusReceived    ApplicationStatus = "received"
	StatusUnderReview ApplicationStatus = "under_review"
	StatusResolved    ApplicationStatus = "resolved"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusReceived, StatusUnderReview, StatusResolved:
		return true
	}
	return false
}

type UserProfileModel struct {
	// same id as auth_users.id
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Email                string          `gorm:"size:255;not null;index:idx_user_profiles_email" json:"email"`
	FirstName            *string         `gorm:"size:100" json:"first_name"`
	LastName             *string         `gorm:"size:100" json:"last_name"`
	Mobile               *string         `gorm:"size:30" json:"mobile"`
	CityOfBirth          *string         `gorm:"size:100" json:"city_of_birth"`
	DateOfBirth          *dbtime.Date    `gorm:"type:date" json:"date_of_birth"`
	Address              *string         `gorm:"type:text" json:"address"`
	EducationLevel       *EducationLevel `gorm:"type:varchar(20)" json:"education_level"`
	DiplomasCertificates *string         `gorm:"type:text" json:"diplomas_certificates"`
	WorkExperience       *string         `gorm:"type:text" json:"work_experience"`
	LanguageSkills       *string         `gorm:"type:text" json:"language_skills"`
	AboutMe              *string         `gorm:"type:text" json:"about_me"`

	ApplicationStatus ApplicationStatus `gorm:"type:varchar(20);not null;default:received;index" json:"application_status"`
	IsAdmin           bool              `gorm:"not null;default:false" json:"is_admin"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserProfileModel) TableName() string { return "user_profiles" }

func (p *UserProfileModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.ApplicationStatus == "" {
		p.ApplicationStatus = StatusReceived
	}
	return nil
}
