package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	profileModel "altroway_backend/internals/features/users/profiles/model"
	"altroway_backend/internals/helpers/dbtime"
)

type DocumentCategory string

const (
	CategoryMigration DocumentCategory = "migration"
	CategoryPersonal  DocumentCategory = "personal"
)

func (c DocumentCategory) Valid() bool {
	return c == CategoryMigration || c == CategoryPersonal
}

type DocumentStatus string

const (
	DocumentPending     DocumentStatus = "pending"
	DocumentValid       DocumentStatus = "valid"
	DocumentNeedsReview DocumentStatus = "needs_review"
	DocumentExpired     DocumentStatus = "expired"
)

func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentPending, DocumentValid, DocumentNeedsReview, DocumentExpired:
		return true
	}
	return false
}

type DocumentModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_documents_user_uploaded,priority:1" json:"user_id"`

	Name       string           `gorm:"size:255;not null" json:"name"`
	Type       string           `gorm:"size:100;not null" json:"type"`
	Category   DocumentCategory `gorm:"type:varchar(20);not null" json:"category"`
	FilePath   string           `gorm:"type:text;not null" json:"file_path"`
	FileSize   int64            `gorm:"not null" json:"file_size"`
	MimeType   string           `gorm:"size:255;not null" json:"mime_type"`
	Status     DocumentStatus   `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`
	ExpiryDate *dbtime.Date     `gorm:"type:date;index" json:"expiry_date"`

	UploadedAt time.Time `gorm:"autoCreateTime;index:idx_documents_user_uploaded,priority:2,sort:desc" json:"uploaded_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User *profileModel.UserProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (DocumentModel) TableName() string { return "documents" }

func (d *DocumentModel) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.Status == "" {
		d.Status = DocumentPending
	}
	return nil
}
