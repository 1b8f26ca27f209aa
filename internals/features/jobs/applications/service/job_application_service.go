package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"altroway_backend/internals/features/home/notifications/model"
	notificationService "altroway_backend/internals/features/home/notifications/service"
	applicationModel "altroway_backend/internals/features/jobs/applications/model"
	profileModel "altroway_backend/internals/features/users/profiles/model"
	helper "altroway_backend/internals/helpers"
	"altroway_backend/internals/helpers/logger"
)

type ApplicationService struct {
	DB            *gorm.DB
	Notifications *notificationService.NotificationService
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db, Notifications: notificationService.NewNotificationService(db)}
}

type ApplyInput struct {
	CoverLetter *string
	ResumePath  *string
}

func (s *ApplicationService) ApplyForJob(ctx context.Context, userID, jobID uuid.UUID, in ApplyInput) (*applicationModel.JobApplicationModel, error) {
	if userID == uuid.Nil {
		return nil, helper.Required("User ID")
	}
	if jobID == uuid.Nil {
		return nil, helper.Required("Job ID")
	}
	app := &applicationModel.JobApplicationModel{
		UserID:      userID,
		JobID:       jobID,
		Status:      profileModel.StatusReceived,
		CoverLetter: in.CoverLetter,
		ResumePath:  in.ResumePath,
	}
	if err := s.DB.WithContext(ctx).Create(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

// GetUserApplications returns the user's applications with their job, newest first.
func (s *ApplicationService) GetUserApplications(ctx context.Context, userID uuid.UUID) ([]applicationModel.JobApplicationModel, error) {
	out := []applicationModel.JobApplicationModel{}
	err := s.DB.WithContext(ctx).
		Preload("Job").
		Where("user_id = ?", userID).
		Order("applied_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ApplicationService) GetAllApplications(ctx context.Context) ([]applicationModel.JobApplicationModel, error) {
	out := []applicationModel.JobApplicationModel{}
	if err := s.DB.WithContext(ctx).Preload("Job").Order("applied_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateApplicationStatus sets any status value and notifies the applicant.
// A failed notification is logged; the status change stands.
func (s *ApplicationService) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status profileModel.ApplicationStatus) (*applicationModel.JobApplicationModel, error) {
	if !status.Valid() {
		return nil, helper.Invalid("status must be one of: received, under_review, resolved")
	}
	var app applicationModel.JobApplicationModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&applicationModel.JobApplicationModel{}).Where("id = ?", id).Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Preload("Job").First(&app, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}

	title := "your application"
	if app.Job != nil {
		title = app.Job.Title + " at " + app.Job.Company
	}
	_, nerr := s.Notifications.CreateNotification(ctx, &model.NotificationModel{
		UserID:  app.UserID,
		Title:   "Application status updated",
		Message: fmt.Sprintf("The status of %s is now %s.", title, humanStatus(status)),
		Type:    model.TypeApplicationUpdate,
	})
	if nerr != nil {
		logger.L().Warn("application status notification failed", "application_id", id, "err", nerr)
	}
	return &app, nil
}

func humanStatus(s profileModel.ApplicationStatus) string {
	switch s {
	case profileModel.StatusUnderReview:
		return "under review"
	default:
		return string(s)
	}
}
