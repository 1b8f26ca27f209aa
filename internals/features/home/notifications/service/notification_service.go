package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"altroway_backend/internals/features/home/notifications/model"
	helper "altroway_backend/internals/helpers"
)

type NotificationService struct {
	DB *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

func (s *NotificationService) CreateNotification(ctx context.Context, n *model.NotificationModel) (*model.NotificationModel, error) {
	if n.UserID == uuid.Nil {
		return nil, helper.Required("User ID")
	}
	if !n.Type.Valid() {
		return nil, helper.Invalid("type must be one of: document_expiry, application_update, job_match, system")
	}
	if err := s.DB.WithContext(ctx).Create(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}

// GetUserNotifications lists newest first, optionally unread only.
func (s *NotificationService) GetUserNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]model.NotificationModel, error) {
	q := s.DB.WithContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	out := []model.NotificationModel{}
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&model.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&n).Error
	return n, err
}

func (s *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) (*model.NotificationModel, error) {
	var n model.NotificationModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&n, "id = ?", id).Error; err != nil {
			return err
		}
		if n.IsRead {
			return nil
		}
		n.IsRead = true
		return tx.Model(&model.NotificationModel{}).Where("id = ?", id).Update("is_read", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// MarkAllAsRead flips only unread rows. Zero rows is not an error.
func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	res := s.DB.WithContext(ctx).Model(&model.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
