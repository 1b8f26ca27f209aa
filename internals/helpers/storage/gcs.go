// internals/helpers/storage/gcs.go
package helper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"altroway_backend/internals/helpers/logger"
)

// GCSStore is the Google Cloud Storage backend.
type GCSStore struct {
	client     *storage.Client
	bucket     string
	prefix     string
	cdnDomain  string
	publicBase string
}

func NewGCSStoreFromEnv(ctx context.Context, prefix string, log *logger.Logger) (*GCSStore, error) {
	bucket := getEnv("DOCUMENTS_GCS_BUCKET_NAME")
	if bucket == "" {
		return nil, fmt.Errorf("missing env var DOCUMENTS_GCS_BUCKET_NAME")
	}

	opts := []option.ClientOption{option.WithScopes(storage.ScopeReadWrite)}
	if emu := getEnv("STORAGE_EMULATOR_HOST"); emu != "" {
		opts = []option.ClientOption{option.WithoutAuthentication()}
	} else if creds := getEnv("GOOGLE_APPLICATION_CREDENTIALS_JSON"); creds != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(creds)))
	} else if path := getEnv("GOOGLE_APPLICATION_CREDENTIALS"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS: %w", err)
		}
		opts = append(opts, option.WithCredentialsFile(path))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	log.With("service", "GCSStore").Info("object storage initialized", "bucket", bucket, "prefix", prefix)

	return &GCSStore{
		client:     client,
		bucket:     bucket,
		prefix:     strings.Trim(prefix, "/"),
		cdnDomain:  getEnv("DOCUMENTS_CDN_DOMAIN"),
		publicBase: strings.TrimRight(getEnv("OBJECT_STORAGE_PUBLIC_BASE_URL"), "/"),
	}, nil
}

func (s *GCSStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	obj := s.client.Bucket(s.bucket).Object(joinKey(s.prefix, key)).If(storage.Conditions{DoesNotExist: true})
	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	if size > 0 && size < int64(w.ChunkSize) {
		// single request upload for small files
		w.ChunkSize = 0
	}
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write data to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close GCS writer: %w", err)
	}
	return nil
}

func (s *GCSStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	full := joinKey(s.prefix, key)
	if err := s.client.Bucket(s.bucket).Object(full).Delete(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil
		}
		return fmt.Errorf("failed to delete GCS object %q in bucket %q: %w", full, s.bucket, err)
	}
	return nil
}

func (s *GCSStore) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	full := joinKey(s.prefix, key)
	switch {
	case s.cdnDomain != "":
		return fmt.Sprintf("https://%s/%s", s.cdnDomain, full)
	case s.publicBase != "":
		return fmt.Sprintf("%s/%s/%s", s.publicBase, s.bucket, full)
	default:
		return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, full)
	}
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
