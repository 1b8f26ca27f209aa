package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"altroway_backend/internals/features/cms/content/model"
	helper "altroway_backend/internals/helpers"
)

type ContentService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{DB: db, Now: time.Now}
}

// stored timestamps keep microsecond precision on every backend
func (s *ContentService) now() time.Time {
	fn := s.Now
	if fn == nil {
		fn = time.Now
	}
	return fn().UTC().Truncate(time.Microsecond)
}

// List filters by exact type and status (both optional, AND) and orders by
// updated_at, newest first.
func (s *ContentService) List(ctx context.Context, t model.ContentType, st model.ContentStatus) ([]model.CMSContentModel, error) {
	q := s.DB.WithContext(ctx).Model(&model.CMSContentModel{})
	if t != "" {
		q = q.Where("type = ?", t)
	}
	if st != "" {
		q = q.Where("status = ?", st)
	}
	out := []model.CMSContentModel{}
	if err := q.Order("updated_at DESC").Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ContentService) Get(ctx context.Context, id uuid.UUID) (*model.CMSContentModel, error) {
	var m model.CMSContentModel
	if err := s.DB.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

type ContentInput struct {
	Type     model.ContentType
	Title    string
	Content  string
	Status   model.ContentStatus
	Metadata json.RawMessage
}

// Create stamps created_at and updated_at with the same instant.
func (s *ContentService) Create(ctx context.Context, in ContentInput) (*model.CMSContentModel, error) {
	if !in.Type.Valid() {
		return nil, helper.Invalid("type must be one of: page, job, guide, testimonial, faq")
	}
	if in.Status == "" {
		in.Status = model.ContentDraft
	}
	if !in.Status.Valid() {
		return nil, helper.Invalid("status must be one of: draft, published")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, helper.Required("title")
	}
	meta, err := encode(in.Type, in.Metadata)
	if err != nil {
		return nil, err
	}

	now := s.now()
	row := &model.CMSContentModel{
		Type:      in.Type,
		Title:     strings.TrimSpace(in.Title),
		Content:   in.Content,
		Status:    in.Status,
		Metadata:  meta,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.DB.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

type ContentPatch struct {
	Type     *model.ContentType
	Title    *string
	Content  *string
	Status   *model.ContentStatus
	Metadata json.RawMessage
}

// Update never touches created_at; updated_at always moves forward, even
// when the clock has not.
func (s *ContentService) Update(ctx context.Context, id uuid.UUID, p ContentPatch) (*model.CMSContentModel, error) {
	if p.Type != nil && !p.Type.Valid() {
		return nil, helper.Invalid("type must be one of: page, job, guide, testimonial, faq")
	}
	if p.Status != nil && !p.Status.Valid() {
		return nil, helper.Invalid("status must be one of: draft, published")
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return nil, helper.Required("title")
	}

	var row model.CMSContentModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, "id = ?", id).Error; err != nil {
			return err
		}
		cols := map[string]any{}
		typeChanged := p.Type != nil && *p.Type != row.Type
		if p.Type != nil {
			row.Type = *p.Type
			cols["type"] = row.Type
		}
		if p.Title != nil {
			row.Title = strings.TrimSpace(*p.Title)
			cols["title"] = row.Title
		}
		if p.Content != nil {
			row.Content = *p.Content
			cols["content"] = row.Content
		}
		if p.Status != nil {
			row.Status = *p.Status
			cols["status"] = row.Status
		}
		switch {
		case len(p.Metadata) > 0:
			meta, err := encode(row.Type, p.Metadata)
			if err != nil {
				return err
			}
			row.Metadata = meta
			cols["metadata"] = meta
		case typeChanged:
			// the old bag never fits the new type
			meta, err := encode(row.Type, nil)
			if err != nil {
				return err
			}
			row.Metadata = meta
			cols["metadata"] = meta
		}

		next := s.now()
		if !next.After(row.UpdatedAt) {
			next = row.UpdatedAt.Add(time.Microsecond)
		}
		row.UpdatedAt = next
		cols["updated_at"] = next

		return tx.Model(&model.CMSContentModel{}).Where("id = ?", id).Updates(cols).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Delete is permanent. A missing id is reported as record not found.
func (s *ContentService) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Delete(&model.CMSContentModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *ContentService) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&model.CMSContentModel{}).Count(&n).Error
	return n, err
}

func encode(t model.ContentType, raw json.RawMessage) (datatypes.JSON, error) {
	meta, err := model.DecodeMetadata(t, raw)
	if err != nil {
		return nil, helper.Invalid("%s", err.Error())
	}
	return model.EncodeMetadata(meta)
}
