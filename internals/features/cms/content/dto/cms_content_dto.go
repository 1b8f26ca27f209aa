package dto

import "encoding/json"

type ListContentQuery struct {
	Type   string `query:"type" validate:"omitempty,oneof=page job guide testimonial faq"`
	Status string `query:"status" validate:"omitempty,oneof=draft published"`
}

type CreateContentRequest struct {
	Type     string          `json:"type" form:"type" validate:"required,oneof=page job guide testimonial faq"`
	Title    string          `json:"title" form:"title" validate:"required,max=255"`
	Content  string          `json:"content" form:"content"`
	Status   string          `json:"status" form:"status" validate:"omitempty,oneof=draft published"`
	Metadata json.RawMessage `json:"metadata"`
}

// UpdateContentRequest: nil fields are left unchanged. Changing type without
// sending metadata clears the stored metadata.
type UpdateContentRequest struct {
	Type     *string         `json:"type" validate:"omitempty,oneof=page job guide testimonial faq"`
	Title    *string         `json:"title" validate:"omitempty,min=1,max=255"`
	Content  *string         `json:"content"`
	Status   *string         `json:"status" validate:"omitempty,oneof=draft published"`
	Metadata json.RawMessage `json:"metadata"`
}
