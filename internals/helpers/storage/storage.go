// internals/helpers/storage/storage.go
package helper

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"altroway_backend/internals/helpers/logger"
)

// BlobStore keeps uploaded files. Keys are relative ("{userId}/{millis}.pdf");
// each backend places them under its own prefix.
type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

// NewFromEnv picks the backend by driver name: "oss" (default), "gcs" or "memory".
func NewFromEnv(driver, prefix string, log *logger.Logger) (BlobStore, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "oss":
		return NewOSSStoreFromEnv(prefix, log)
	case "gcs":
		return NewGCSStoreFromEnv(context.Background(), prefix, log)
	case "memory":
		log.Warn("using in-memory blob store, uploads are lost on restart")
		return NewMemoryStore(""), nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}
}

// ObjectKey builds "{userId}/{unixMillis}{.ext}" with the extension
// lower-cased from the original file name (none when it has none).
func ObjectKey(userID uuid.UUID, filename string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename)))
	if ext == "." {
		ext = ""
	}
	return fmt.Sprintf("%s/%d%s", userID, now.UnixMilli(), ext)
}

// DetectContentType prefers the multipart part header, then the file
// extension, then sniffs the first bytes.
func DetectContentType(declared string, head []byte, filename string) string {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); ct != "" {
		return ct
	}
	if len(head) > 0 {
		return mimetype.Detect(head).String()
	}
	if declared != "" {
		return declared
	}
	return "application/octet-stream"
}

func joinKey(prefix, key string) string {
	prefix = strings.Trim(prefix, "/")
	key = strings.TrimLeft(key, "/")
	if prefix == "" {
		return key
	}
	return prefix + "/" + key
}
