package dto

import (
	"strings"

	"github.com/google/uuid"

	"altroway_backend/internals/features/home/notifications/model"
)

// CreateNotificationRequest is the admin POST /api/notifications body.
type CreateNotificationRequest struct {
	UserID  string `json:"userId" validate:"required,uuid"`
	Title   string `json:"title" validate:"required,max=255"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"type" validate:"required,oneof=document_expiry application_update job_match system"`
}

func (r CreateNotificationRequest) ToModel() *model.NotificationModel {
	uid, _ := uuid.Parse(strings.TrimSpace(r.UserID))
	return &model.NotificationModel{
		UserID:  uid,
		Title:   strings.TrimSpace(r.Title),
		Message: r.Message,
		Type:    model.NotificationType(r.Type),
	}
}
