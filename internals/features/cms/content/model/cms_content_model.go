package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ContentType string

const (
	ContentPage        ContentType = "page"
	ContentJob         ContentType = "job"
	ContentGuide       ContentType = "guide"
	ContentTestimonial ContentType = "testimonial"
	ContentFAQ         ContentType = "faq"
)

var ContentTypes = []ContentType{ContentPage, ContentJob, ContentGuide, ContentTestimonial, ContentFAQ}

func (t ContentType) Valid() bool {
	for _, v := range ContentTypes {
		if t == v {
			return true
		}
	}
	return false
}

type ContentStatus string

const (
	ContentDraft     ContentStatus = "draft"
	ContentPublished ContentStatus = "published"
)

func (s ContentStatus) Valid() bool {
	return s == ContentDraft || s == ContentPublished
}

// CMSContentModel timestamps are stamped by the service, not by GORM,
// so that create can guarantee created_at == updated_at.
type CMSContentModel struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Type     ContentType    `gorm:"type:varchar(20);not null;index:idx_cms_content_type_status,priority:1" json:"type"`
	Title    string         `gorm:"size:255;not null" json:"title"`
	Content  string         `gorm:"type:text;not null" json:"content"`
	Status   ContentStatus  `gorm:"type:varchar(20);not null;index:idx_cms_content_type_status,priority:2" json:"status"`
	Metadata datatypes.JSON `json:"metadata"`

	CreatedAt time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false;index" json:"updated_at"`
}

func (CMSContentModel) TableName() string { return "cms_content" }

func (m *CMSContentModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
