package dto

import (
	"strings"

	"altroway_backend/internals/features/documents/model"
	"altroway_backend/internals/helpers/dbtime"
)

// UploadDocumentForm is the non-file part of the multipart upload.
type UploadDocumentForm struct {
	UserID     string `form:"userId"`
	Type       string `form:"type"`
	Category   string `form:"category"`
	ExpiryDate string `form:"expiry_date"`
}

// ParseExpiry returns nil for an empty value.
func (f UploadDocumentForm) ParseExpiry() (*dbtime.Date, error) {
	s := strings.TrimSpace(f.ExpiryDate)
	if s == "" {
		return nil, nil
	}
	d, err := dbtime.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type UpdateDocumentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending valid needs_review expired"`
}

// DocumentResponse adds the blob's public URL to the row.
type DocumentResponse struct {
	model.DocumentModel
	URL string `json:"url,omitempty"`
}

func NewDocumentResponse(d model.DocumentModel, url string) DocumentResponse {
	return DocumentResponse{DocumentModel: d, URL: url}
}
