package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"altroway_backend/internals/features/documents/model"
	notificationModel "altroway_backend/internals/features/home/notifications/model"
	helper "altroway_backend/internals/helpers"
	"altroway_backend/internals/helpers/dbtime"
	"altroway_backend/internals/helpers/logger"
	helperStorage "altroway_backend/internals/helpers/storage"
)

// ErrMissingFields matches the upload form contract.
var ErrMissingFields = errors.New("Missing required fields")

type DocumentService struct {
	DB    *gorm.DB
	Blobs helperStorage.BlobStore
	Now   func() time.Time
}

func NewDocumentService(db *gorm.DB, blobs helperStorage.BlobStore) *DocumentService {
	return &DocumentService{DB: db, Blobs: blobs, Now: time.Now}
}

func (s *DocumentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// UploadFile is the blob side of an upload.
type UploadFile struct {
	Name        string
	Size        int64
	ContentType string
	Body        io.Reader
}

type UploadMeta struct {
	Type       string
	Category   model.DocumentCategory
	Status     model.DocumentStatus
	ExpiryDate *dbtime.Date
}

// UploadDocument stores the blob at {userId}/{millis}{.ext}, then inserts
// the metadata row. If the insert fails the blob is deleted again; a failed
// deletion is logged as an orphan and the insert error is still returned.
func (s *DocumentService) UploadDocument(ctx context.Context, userID uuid.UUID, file UploadFile, meta UploadMeta) (*model.DocumentModel, error) {
	if userID == uuid.Nil || file.Body == nil || strings.TrimSpace(file.Name) == "" || strings.TrimSpace(meta.Type) == "" || meta.Category == "" {
		return nil, &helper.ValidationError{Message: ErrMissingFields.Error()}
	}
	if !meta.Category.Valid() {
		return nil, helper.Invalid("category must be one of: migration, personal")
	}
	if meta.Status == "" {
		meta.Status = model.DocumentPending
	}
	if !meta.Status.Valid() {
		return nil, helper.Invalid("invalid document status %q", meta.Status)
	}

	// sniff from the first bytes without losing them
	head := make([]byte, 512)
	n, err := io.ReadFull(file.Body, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, helper.Internal(err)
	}
	head = head[:n]
	contentType := helperStorage.DetectContentType(file.ContentType, head, file.Name)
	body := io.MultiReader(bytes.NewReader(head), file.Body)

	key := helperStorage.ObjectKey(userID, file.Name, s.now())
	counter := &countingReader{r: body}
	if err := s.Blobs.Put(ctx, key, counter, file.Size, contentType); err != nil {
		return nil, err
	}

	size := file.Size
	if size <= 0 {
		size = counter.n
	}
	doc := &model.DocumentModel{
		UserID:     userID,
		Name:       file.Name,
		Type:       strings.TrimSpace(meta.Type),
		Category:   meta.Category,
		FilePath:   key,
		FileSize:   size,
		MimeType:   contentType,
		Status:     meta.Status,
		ExpiryDate: meta.ExpiryDate,
	}
	if err := s.DB.WithContext(ctx).Create(doc).Error; err != nil {
		// the request context may be what failed the insert
		cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		if derr := s.Blobs.Delete(cctx, key); derr != nil {
			logger.L().Error("upload compensation failed, blob orphaned",
				"user_id", userID, "path", key, "insert_err", err, "delete_err", derr)
		}
		return nil, err
	}
	return doc, nil
}

// GetUserDocuments lists a user's documents, newest upload first.
// An empty category means all categories.
func (s *DocumentService) GetUserDocuments(ctx context.Context, userID uuid.UUID, category model.DocumentCategory) ([]model.DocumentModel, error) {
	if category != "" && !category.Valid() {
		return nil, helper.Invalid("category must be one of: migration, personal")
	}
	q := s.DB.WithContext(ctx).Where("user_id = ?", userID)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	docs := []model.DocumentModel{}
	if err := q.Order("uploaded_at DESC").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *DocumentService) GetDocument(ctx context.Context, id uuid.UUID) (*model.DocumentModel, error) {
	var d model.DocumentModel
	if err := s.DB.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *DocumentService) UpdateDocumentStatus(ctx context.Context, id uuid.UUID, status model.DocumentStatus) (*model.DocumentModel, error) {
	if !status.Valid() {
		return nil, helper.Invalid("status must be one of: pending, valid, needs_review, expired")
	}
	res := s.DB.WithContext(ctx).Model(&model.DocumentModel{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return s.GetDocument(ctx, id)
}

// DeleteDocument removes the blob, then the row.
func (s *DocumentService) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	doc, err := s.GetDocument(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Blobs.Delete(ctx, doc.FilePath); err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Delete(&model.DocumentModel{}, "id = ?", id).Error
}

func (s *DocumentService) GetDocumentURL(path string) string {
	return s.Blobs.PublicURL(path)
}

// ExpireDueDocuments marks documents whose expiry_date is before today as
// expired and notifies each owner once, in one transaction per sweep.
func (s *DocumentService) ExpireDueDocuments(ctx context.Context, today dbtime.Date) (int, error) {
	var due []model.DocumentModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("expiry_date IS NOT NULL AND expiry_date < ? AND status <> ?", today, model.DocumentExpired).
			Find(&due).Error; err != nil {
			return err
		}
		if len(due) == 0 {
			return nil
		}
		ids := make([]uuid.UUID, 0, len(due))
		notes := make([]notificationModel.NotificationModel, 0, len(due))
		for _, d := range due {
			ids = append(ids, d.ID)
			notes = append(notes, notificationModel.NotificationModel{
				UserID:  d.UserID,
				Title:   "Document expired",
				Message: "Your document \"" + d.Name + "\" expired on " + d.ExpiryDate.String() + ". Please upload a renewed copy.",
				Type:    notificationModel.TypeDocumentExpiry,
			})
		}
		if err := tx.Model(&model.DocumentModel{}).Where("id IN ?", ids).Update("status", model.DocumentExpired).Error; err != nil {
			return err
		}
		return tx.Create(&notes).Error
	})
	if err != nil {
		return 0, err
	}
	return len(due), nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
