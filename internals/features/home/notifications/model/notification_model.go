package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	profileModel "altroway_backend/internals/features/users/profiles/model"
)

type NotificationType string

const (
	TypeDocumentExpiry    NotificationType = "document_expiry"
	TypeApplicationUpdate NotificationType = "application_update"
	TypeJobMatch          NotificationType = "job_match"
	TypeSystem            NotificationType = "system"
)

func (t NotificationType) Valid() bool {
	switch t {
	case TypeDocumentExpiry, TypeApplicationUpdate, TypeJobMatch, TypeSystem:
		return true
	}
	return false
}

type NotificationModel struct {
	ID      uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  uuid.UUID        `gorm:"type:uuid;not null;index:idx_notifications_user_read,priority:1" json:"user_id"`
	Title   string           `gorm:"size:255;not null" json:"title"`
	Message string           `gorm:"type:text;not null" json:"message"`
	Type    NotificationType `gorm:"type:varchar(30);not null" json:"type"`
	IsRead  bool             `gorm:"not null;index:idx_notifications_user_read,priority:2" json:"is_read"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	User *profileModel.UserProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (n *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
