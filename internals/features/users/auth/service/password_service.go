package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authModel "altroway_backend/internals/features/users/auth/model"
	helper "altroway_backend/internals/helpers"
)

var ErrWrongPassword = errors.New("Current password is incorrect")

// ChangePassword replaces the hash after checking the current password.
// Tokens already issued stay valid until they expire.
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	if current == "" || next == "" {
		return helper.Invalid("Current and new password are required")
	}
	if len(next) < minPasswordLen {
		return ErrWeakPassword
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user authModel.AuthUserModel
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidCredentials
			}
			return err
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
			return ErrWrongPassword
		}
		hash, err := hashPassword(next)
		if err != nil {
			return err
		}
		return tx.Model(&authModel.AuthUserModel{}).Where("id = ?", userID).Update("password_hash", hash).Error
	})
}
