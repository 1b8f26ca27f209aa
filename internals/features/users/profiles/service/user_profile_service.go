package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	documentModel "altroway_backend/internals/features/documents/model"
	notificationModel "altroway_backend/internals/features/home/notifications/model"
	applicationModel "altroway_backend/internals/features/jobs/applications/model"
	savedJobModel "altroway_backend/internals/features/jobs/saved_jobs/model"
	authModel "altroway_backend/internals/features/users/auth/model"
	"altroway_backend/internals/features/users/profiles/model"
	helper "altroway_backend/internals/helpers"
	"altroway_backend/internals/helpers/logger"
	helperStorage "altroway_backend/internals/helpers/storage"
)

var ErrUserNotFound = errors.New("User not found")

type ProfileService struct {
	DB    *gorm.DB
	Blobs helperStorage.BlobStore
}

func NewProfileService(db *gorm.DB, blobs helperStorage.BlobStore) *ProfileService {
	return &ProfileService{DB: db, Blobs: blobs}
}

func (s *ProfileService) CreateProfile(ctx context.Context, p *model.UserProfileModel) (*model.UserProfileModel, error) {
	if p.Email == "" {
		return nil, helper.Required("email")
	}
	if p.EducationLevel != nil && !p.EducationLevel.Valid() {
		return nil, helper.Invalid("invalid education_level %q", *p.EducationLevel)
	}
	if err := s.DB.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProfileService) GetProfile(ctx context.Context, id uuid.UUID) (*model.UserProfileModel, error) {
	var p model.UserProfileModel
	if err := s.DB.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile applies a column patch and returns the stored row.
// updated_at is always stamped, even for an empty patch.
func (s *ProfileService) UpdateProfile(ctx context.Context, id uuid.UUID, patch map[string]any) (*model.UserProfileModel, error) {
	if v, ok := patch["application_status"]; ok {
		if st, _ := v.(string); !model.ApplicationStatus(st).Valid() {
			return nil, helper.Invalid("invalid application_status %q", v)
		}
	}
	if v, ok := patch["education_level"]; ok && v != nil {
		if lvl, _ := v.(string); !model.EducationLevel(lvl).Valid() {
			return nil, helper.Invalid("invalid education_level %q", v)
		}
	}

	var updated model.UserProfileModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&model.UserProfileModel{}).Where("id = ?", id)
		var res *gorm.DB
		if len(patch) == 0 {
			res = q.Update("updated_at", tx.NowFunc())
		} else {
			res = q.Updates(patch)
		}
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&updated, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ProfileService) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status model.ApplicationStatus) (*model.UserProfileModel, error) {
	if !status.Valid() {
		return nil, helper.Invalid("invalid application_status %q", status)
	}
	return s.UpdateProfile(ctx, id, map[string]any{"application_status": string(status)})
}

// GetAllUsers lists profiles newest first.
func (s *ProfileService) GetAllUsers(ctx context.Context, p helper.Paging) ([]model.UserProfileModel, int64, error) {
	var (
		rows  []model.UserProfileModel
		total int64
	)
	db := s.DB.WithContext(ctx).Model(&model.UserProfileModel{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	q := s.DB.WithContext(ctx).Order("created_at DESC").Order("id")
	if p.Limit > 0 {
		q = q.Limit(p.Limit).Offset(p.Offset)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// IsAdmin reads the flag fresh on every call; a missing profile is not an admin.
func (s *ProfileService) IsAdmin(ctx context.Context, id uuid.UUID) (bool, error) {
	var flags []bool
	err := s.DB.WithContext(ctx).
		Model(&model.UserProfileModel{}).
		Where("id = ?", id).
		Limit(1).
		Pluck("is_admin", &flags).Error
	if err != nil {
		return false, err
	}
	return len(flags) == 1 && flags[0], nil
}

// DeleteUser removes the profile, every row that references it and the
// auth identity in one transaction. Blobs of the user's documents are
// removed afterwards, best effort.
func (s *ProfileService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	var paths []string
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&documentModel.DocumentModel{}).Where("user_id = ?", id).Pluck("file_path", &paths).Error; err != nil {
			return err
		}
		for _, dep := range []any{
			&documentModel.DocumentModel{},
			&applicationModel.JobApplicationModel{},
			&savedJobModel.SavedJobModel{},
			&notificationModel.NotificationModel{},
		} {
			if err := tx.Where("user_id = ?", id).Delete(dep).Error; err != nil {
				return err
			}
		}
		prof := tx.Where("id = ?", id).Delete(&model.UserProfileModel{})
		if prof.Error != nil {
			return prof.Error
		}
		ident := tx.Where("id = ?", id).Delete(&authModel.AuthUserModel{})
		if ident.Error != nil {
			return ident.Error
		}
		if prof.RowsAffected == 0 && ident.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.Blobs != nil {
		for _, p := range paths {
			if err := s.Blobs.Delete(ctx, p); err != nil {
				logger.L().Warn("orphaned document blob after user deletion", "user_id", id, "path", p, "err", err)
			}
		}
	}
	return nil
}
