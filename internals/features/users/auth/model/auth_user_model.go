package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthUserModel is the credential identity. Its id is shared 1:1 with user_profiles.id.
type AuthUserModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email            string     `gorm:"size:255;not null;uniqueIndex:uq_auth_users_email" json:"email"`
	PasswordHash     string     `gorm:"column:password_hash;type:text;not null" json:"-"`
	IsActive         bool       `gorm:"not null;default:true" json:"is_active"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at,omitempty"`
	LastSignInAt     *time.Time `json:"last_sign_in_at,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AuthUserModel) TableName() string {
	return "auth_users"
}

func (u *AuthUserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.Email = NormalizeEmail(u.Email)
	return nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
