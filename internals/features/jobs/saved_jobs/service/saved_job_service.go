package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"altroway_backend/internals/features/jobs/saved_jobs/model"
)

type SavedJobService struct {
	DB *gorm.DB
}

func NewSavedJobService(db *gorm.DB) *SavedJobService {
	return &SavedJobService{DB: db}
}

// SaveJob fails with the store's unique-violation error when the job is
// already saved.
func (s *SavedJobService) SaveJob(ctx context.Context, userID, jobID uuid.UUID) (*model.SavedJobModel, error) {
	row := &model.SavedJobModel{UserID: userID, JobID: jobID}
	if err := s.DB.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// UnsaveJob is a no-op when nothing is saved.
func (s *SavedJobService) UnsaveJob(ctx context.Context, userID, jobID uuid.UUID) error {
	return s.DB.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Delete(&model.SavedJobModel{}).Error
}

func (s *SavedJobService) GetSavedJobs(ctx context.Context, userID uuid.UUID) ([]model.SavedJobModel, error) {
	out := []model.SavedJobModel{}
	err := s.DB.WithContext(ctx).
		Preload("Job").
		Where("user_id = ?", userID).
		Order("saved_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SavedJobService) IsJobSaved(ctx context.Context, userID, jobID uuid.UUID) (bool, error) {
	return isSaved(s.DB.WithContext(ctx), userID, jobID)
}

func (s *SavedJobService) GetSavedJobIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	err := s.DB.WithContext(ctx).Model(&model.SavedJobModel{}).
		Where("user_id = ?", userID).
		Order("saved_at DESC").
		Pluck("job_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ToggleSavedJob flips the bookmark and reports the resulting state.
func (s *SavedJobService) ToggleSavedJob(ctx context.Context, userID, jobID uuid.UUID) (bool, error) {
	saved := false
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := isSaved(tx, userID, jobID)
		if err != nil {
			return err
		}
		if exists {
			return tx.Where("user_id = ? AND job_id = ?", userID, jobID).Delete(&model.SavedJobModel{}).Error
		}
		saved = true
		return tx.Create(&model.SavedJobModel{UserID: userID, JobID: jobID}).Error
	})
	if err != nil {
		return false, err
	}
	return saved, nil
}

func isSaved(db *gorm.DB, userID, jobID uuid.UUID) (bool, error) {
	var n int64
	err := db.Model(&model.SavedJobModel{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&n).Error
	return n > 0, err
}
