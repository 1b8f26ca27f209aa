package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"altroway_backend/internals/databases/dbtest"
	"altroway_backend/internals/features/documents/model"
	notificationModel "altroway_backend/internals/features/home/notifications/model"
	profileModel "altroway_backend/internals/features/users/profiles/model"
	helper "altroway_backend/internals/helpers"
	"altroway_backend/internals/helpers/dbtime"
	helperStorage "altroway_backend/internals/helpers/storage"
)

var fixedNow = time.UnixMilli(1735689600123)

func newTestService(t *testing.T) (*DocumentService, *helperStorage.MemoryStore, *gorm.DB) {
	t.Helper()
	db := dbtest.New(t)
	blobs := helperStorage.NewMemoryStore("https://cdn.test/documents")
	svc := NewDocumentService(db, blobs)
	svc.Now = func() time.Time { return fixedNow }
	return svc, blobs, db
}

func seedProfile(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	p := profileModel.UserProfileModel{Email: uuid.NewString() + "@example.com"}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return p.ID
}

func upload(svc *DocumentService, userID uuid.UUID, name, contentType, body string) (*model.DocumentModel, error) {
	return svc.UploadDocument(context.Background(), userID,
		UploadFile{Name: name, Size: int64(len(body)), ContentType: contentType, Body: strings.NewReader(body)},
		UploadMeta{Type: "passport", Category: model.CategoryMigration})
}

func TestUploadDocumentStoresBlobAndRow(t *testing.T) {
	svc, blobs, db := newTestService(t)
	userID := seedProfile(t, db)

	doc, err := upload(svc, userID, "Passport.PDF", "application/pdf", "%PDF-1.4 passport scan")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	wantKey := userID.String() + "/1735689600123.pdf"
	if doc.FilePath != wantKey {
		t.Fatalf("file_path: want=%q got=%q", wantKey, doc.FilePath)
	}
	if doc.FileSize != int64(len("%PDF-1.4 passport scan")) {
		t.Fatalf("file_size: got=%d", doc.FileSize)
	}
	if doc.MimeType != "application/pdf" {
		t.Fatalf("mime_type: got=%q", doc.MimeType)
	}
	if doc.Status != model.DocumentPending {
		t.Fatalf("status: want=pending got=%q", doc.Status)
	}
	if doc.Name != "Passport.PDF" {
		t.Fatalf("name: got=%q", doc.Name)
	}
	obj, ok := blobs.Get(wantKey)
	if !ok || string(obj.Data) != "%PDF-1.4 passport scan" {
		t.Fatalf("blob not stored intact: %v %q", ok, obj.Data)
	}

	var stored model.DocumentModel
	if err := db.First(&stored, "id = ?", doc.ID).Error; err != nil {
		t.Fatalf("row: %v", err)
	}
	if stored.FilePath != wantKey || stored.FileSize != doc.FileSize {
		t.Fatalf("stored row mismatch: %+v", stored)
	}
}

func TestUploadDocumentSniffsMissingContentType(t *testing.T) {
	svc, _, db := newTestService(t)
	userID := seedProfile(t, db)

	doc, err := upload(svc, userID, "scan", "", "%PDF-1.7\n%binary")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if doc.MimeType != "application/pdf" {
		t.Fatalf("sniffed mime: got=%q", doc.MimeType)
	}
	if !strings.HasSuffix(doc.FilePath, "/1735689600123") {
		t.Fatalf("key without extension expected, got %q", doc.FilePath)
	}
}

func TestUploadDocumentMissingFields(t *testing.T) {
	svc, blobs, _ := newTestService(t)

	_, err := svc.UploadDocument(context.Background(), uuid.New(),
		UploadFile{Name: "a.pdf", Body: strings.NewReader("x")},
		UploadMeta{Category: model.CategoryPersonal})
	if !helper.IsValidation(err) || err.Error() != "Missing required fields" {
		t.Fatalf("want missing fields, got %v", err)
	}

	_, err = svc.UploadDocument(context.Background(), uuid.New(),
		UploadFile{Name: "a.pdf", Body: strings.NewReader("x")},
		UploadMeta{Type: "cv", Category: "other"})
	if !helper.IsValidation(err) {
		t.Fatalf("want validation error for bad category, got %v", err)
	}
	if len(blobs.Keys()) != 0 {
		t.Fatalf("nothing should be stored, got %v", blobs.Keys())
	}
}

func TestUploadDocumentCompensatesFailedInsert(t *testing.T) {
	svc, blobs, _ := newTestService(t)

	// no profile row: the insert violates the user_id foreign key
	_, err := upload(svc, uuid.New(), "cv.pdf", "application/pdf", "%PDF-1.4")
	if err == nil {
		t.Fatal("expected insert failure")
	}
	if keys := blobs.Keys(); len(keys) != 0 {
		t.Fatalf("blob should be removed after failed insert, got %v", keys)
	}
}

type undeletableStore struct {
	*helperStorage.MemoryStore
}

func (undeletableStore) Delete(context.Context, string) error {
	return errors.New("bucket unavailable")
}

func TestUploadDocumentCompensationFailureKeepsInsertError(t *testing.T) {
	db := dbtest.New(t)
	store := undeletableStore{helperStorage.NewMemoryStore("")}
	svc := NewDocumentService(db, store)

	_, err := upload(svc, uuid.New(), "cv.pdf", "application/pdf", "%PDF-1.4")
	if err == nil || strings.Contains(err.Error(), "bucket unavailable") {
		t.Fatalf("want the insert error, got %v", err)
	}
	if len(store.Keys()) != 1 {
		t.Fatalf("orphaned blob expected to remain, got %v", store.Keys())
	}
}

func TestGetUserDocumentsOrderAndCategory(t *testing.T) {
	svc, _, db := newTestService(t)
	userID := seedProfile(t, db)
	other := seedProfile(t, db)

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := []model.DocumentModel{
		{UserID: userID, Name: "old", Type: "cv", Category: model.CategoryPersonal, FilePath: "a", MimeType: "application/pdf", UploadedAt: base},
		{UserID: userID, Name: "new", Type: "visa", Category: model.CategoryMigration, FilePath: "b", MimeType: "application/pdf", UploadedAt: base.Add(2 * time.Hour)},
		{UserID: userID, Name: "mid", Type: "passport", Category: model.CategoryMigration, FilePath: "c", MimeType: "application/pdf", UploadedAt: base.Add(time.Hour)},
		{UserID: other, Name: "foreign", Type: "cv", Category: model.CategoryMigration, FilePath: "d", MimeType: "application/pdf", UploadedAt: base},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	all, err := svc.GetUserDocuments(context.Background(), userID, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got := names(all); got != "new,mid,old" {
		t.Fatalf("order: got %s", got)
	}

	migration, err := svc.GetUserDocuments(context.Background(), userID, model.CategoryMigration)
	if err != nil {
		t.Fatalf("list migration: %v", err)
	}
	if got := names(migration); got != "new,mid" {
		t.Fatalf("migration filter: got %s", got)
	}
}

func TestDeleteDocumentRemovesBlobAndRow(t *testing.T) {
	svc, blobs, db := newTestService(t)
	userID := seedProfile(t, db)

	doc, err := upload(svc, userID, "visa.pdf", "application/pdf", "%PDF")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if err := svc.DeleteDocument(context.Background(), doc.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(blobs.Keys()) != 0 {
		t.Fatalf("blob left behind: %v", blobs.Keys())
	}
	if _, err := svc.GetDocument(context.Background(), doc.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("row should be gone, got %v", err)
	}
}

func TestExpireDueDocuments(t *testing.T) {
	svc, _, db := newTestService(t)
	userID := seedProfile(t, db)

	today := dbtime.NewDate(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	yesterday := dbtime.NewDate(time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC))
	tomorrow := dbtime.NewDate(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC))
	rows := []model.DocumentModel{
		{UserID: userID, Name: "due", Type: "visa", Category: model.CategoryMigration, FilePath: "a", MimeType: "application/pdf", ExpiryDate: &yesterday},
		{UserID: userID, Name: "today", Type: "visa", Category: model.CategoryMigration, FilePath: "b", MimeType: "application/pdf", ExpiryDate: &today},
		{UserID: userID, Name: "later", Type: "visa", Category: model.CategoryMigration, FilePath: "c", MimeType: "application/pdf", ExpiryDate: &tomorrow},
		{UserID: userID, Name: "none", Type: "cv", Category: model.CategoryPersonal, FilePath: "d", MimeType: "application/pdf"},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	n, err := svc.ExpireDueDocuments(context.Background(), today)
	if err != nil || n != 1 {
		t.Fatalf("first sweep: n=%d err=%v", n, err)
	}
	var due model.DocumentModel
	if err := db.First(&due, "name = ?", "due").Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if due.Status != model.DocumentExpired {
		t.Fatalf("status: want expired got %q", due.Status)
	}

	// second sweep finds nothing new
	n, err = svc.ExpireDueDocuments(context.Background(), today)
	if err != nil || n != 0 {
		t.Fatalf("second sweep: n=%d err=%v", n, err)
	}
	var notes int64
	db.Model(&notificationModel.NotificationModel{}).
		Where("user_id = ? AND type = ?", userID, notificationModel.TypeDocumentExpiry).
		Count(&notes)
	if notes != 1 {
		t.Fatalf("notifications: want=1 got=%d", notes)
	}
}

func names(docs []model.DocumentModel) string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.Name
	}
	return strings.Join(out, ",")
}
