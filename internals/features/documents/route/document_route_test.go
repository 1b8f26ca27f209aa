package route

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"altroway_backend/internals/databases/dbtest"
	"altroway_backend/internals/features/documents/model"
	profileModel "altroway_backend/internals/features/users/profiles/model"
	helper "altroway_backend/internals/helpers"
	helperStorage "altroway_backend/internals/helpers/storage"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

type fileField struct {
	name, contentType, body string
}

func send(t *testing.T, app *fiber.App, method, path, contentType string, body []byte) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode: %v", method, path, err)
	}
	return resp.StatusCode, env
}

func uploadForm(t *testing.T, fields map[string]string, file *fileField) (string, []byte) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("field %s: %v", k, err)
		}
	}
	if file != nil {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.name))
		h.Set("Content-Type", file.contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("file part: %v", err)
		}
		part.Write([]byte(file.body))
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return w.FormDataContentType(), buf.Bytes()
}

func denyAdmin(c *fiber.Ctx) error {
	return helper.JsonError(c, fiber.StatusForbidden, "Admin access required")
}

func newApp(t *testing.T) (*fiber.App, *gorm.DB, *helperStorage.MemoryStore) {
	t.Helper()
	db := dbtest.New(t)
	blobs := helperStorage.NewMemoryStore("https://cdn.test/documents")
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	DocumentRoutes(app.Group("/api"), db, blobs, denyAdmin)
	return app, db, blobs
}

func seedProfile(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	p := profileModel.UserProfileModel{Email: uuid.NewString() + "@example.com"}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return p.ID
}

func TestUploadIgnoresClientStatus(t *testing.T) {
	app, db, blobs := newApp(t)
	userID := seedProfile(t, db)

	ct, body := uploadForm(t, map[string]string{
		"userId":   userID.String(),
		"type":     "passport",
		"category": "migration",
		"status":   "valid",
	}, &fileField{name: "passport.pdf", contentType: "application/pdf", body: "%PDF-1.4 passport 01"})

	status, env := send(t, app, "POST", "/api/documents", ct, body)
	if status != 200 || !env.Success || env.Message != "Document uploaded successfully" {
		t.Fatalf("upload: status=%d env=%+v", status, env)
	}
	var doc model.DocumentModel
	if err := json.Unmarshal(env.Data, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Status != model.DocumentPending {
		t.Fatalf("new upload must be pending, got %q", doc.Status)
	}
	if doc.FileSize != 20 || doc.MimeType != "application/pdf" || doc.Name != "passport.pdf" {
		t.Fatalf("stored metadata: %+v", doc)
	}
	if _, ok := blobs.Get(doc.FilePath); !ok {
		t.Fatalf("blob %q not stored", doc.FilePath)
	}

	// only the guarded review route may change the status
	status, env = send(t, app, "PUT", "/api/documents/"+doc.ID.String()+"/status", "application/json", []byte(`{"status":"valid"}`))
	if status != 403 || env.Success {
		t.Fatalf("status change without admin: status=%d env=%+v", status, env)
	}
	var stored model.DocumentModel
	db.First(&stored, "id = ?", doc.ID)
	if stored.Status != model.DocumentPending {
		t.Fatalf("stored status changed to %q", stored.Status)
	}
}

func TestUploadMissingFields(t *testing.T) {
	app, db, blobs := newApp(t)
	userID := seedProfile(t, db).String()
	pdf := &fileField{name: "cv.pdf", contentType: "application/pdf", body: "%PDF"}

	cases := []struct {
		name   string
		fields map[string]string
		file   *fileField
	}{
		{"no file", map[string]string{"userId": userID, "type": "cv", "category": "personal"}, nil},
		{"no user", map[string]string{"type": "cv", "category": "personal"}, pdf},
		{"no type", map[string]string{"userId": userID, "category": "personal"}, pdf},
		{"no category", map[string]string{"userId": userID, "type": "cv"}, pdf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ct, body := uploadForm(t, tc.fields, tc.file)
			status, env := send(t, app, "POST", "/api/documents", ct, body)
			if status != 400 || env.Success || env.Error != "Missing required fields" {
				t.Fatalf("status=%d env=%+v", status, env)
			}
		})
	}

	ct, body := uploadForm(t, map[string]string{"userId": userID, "type": "cv", "category": "travel"}, pdf)
	if status, env := send(t, app, "POST", "/api/documents", ct, body); status != 400 || !strings.Contains(env.Error, "category") {
		t.Fatalf("bad category: status=%d env=%+v", status, env)
	}
	if keys := blobs.Keys(); len(keys) != 0 {
		t.Fatalf("rejected uploads left blobs: %v", keys)
	}
}

func TestListDocumentsRequiresUserID(t *testing.T) {
	app, db, _ := newApp(t)

	status, env := send(t, app, "GET", "/api/documents", "", nil)
	if status != 400 || env.Error != "User ID is required" {
		t.Fatalf("missing user: status=%d env=%+v", status, env)
	}

	userID := seedProfile(t, db)
	ct, body := uploadForm(t, map[string]string{"userId": userID.String(), "type": "cv", "category": "personal"},
		&fileField{name: "cv.pdf", contentType: "application/pdf", body: "%PDF"})
	if status, env := send(t, app, "POST", "/api/documents", ct, body); status != 200 {
		t.Fatalf("upload: status=%d env=%+v", status, env)
	}

	status, env = send(t, app, "GET", "/api/documents?userId="+userID.String()+"&category=personal", "", nil)
	if status != 200 || !env.Success {
		t.Fatalf("list: status=%d env=%+v", status, env)
	}
	var docs []model.DocumentModel
	if err := json.Unmarshal(env.Data, &docs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(docs) != 1 || docs[0].UserID != userID {
		t.Fatalf("listed documents: %+v", docs)
	}
}
