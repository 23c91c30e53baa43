// Package storage keeps uploaded company logos in a blob store and hands out
// the public URLs they are served from.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrFileNotFound is returned when a requested object does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidPath is returned when a key is empty or escapes the store.
	ErrInvalidPath = errors.New("invalid path")

	// ErrUnsupportedType is returned for uploads that are not a known image type.
	ErrUnsupportedType = errors.New("unsupported image type")
)

// BlobStorage defines the interface for storing publicly readable objects.
type BlobStorage interface {
	// Upload stores data from the reader under key.
	Upload(ctx context.Context, key, contentType string, reader io.Reader) error

	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error

	// URL returns the public URL the object under key is served from.
	URL(key string) string
}

// Config selects and configures a BlobStorage implementation.
type Config struct {
	Type string

	// local
	BaseDir string
	BaseURL string

	// s3
	Bucket    string
	Region    string
	Endpoint  string
	PublicURL string
}

// NewBlobStorage creates a BlobStorage implementation based on configuration.
func NewBlobStorage(ctx context.Context, cfg Config) (BlobStorage, error) {
	switch strings.ToLower(cfg.Type) {
	case "local":
		if cfg.BaseDir == "" {
			return nil, fmt.Errorf("base_dir is required for local storage")
		}
		return NewLocalStorage(cfg.BaseDir, cfg.BaseURL)

	case "s3":
		if cfg.Bucket == "" {
			return nil, fmt.Errorf("bucket is required for S3 storage")
		}
		if cfg.Region == "" {
			return nil, fmt.Errorf("region is required for S3 storage")
		}

		s3Storage, err := NewS3Storage(ctx, cfg.Bucket, cfg.Region, cfg.Endpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		if cfg.PublicURL != "" {
			s3Storage.publicURL = strings.TrimRight(cfg.PublicURL, "/")
		}
		return s3Storage, nil

	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

var imageExtensions = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// LogoKey returns a fresh object key for a logo of the given content type
// belonging to the company with handle.
func LogoKey(handle, contentType string) (string, error) {
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	ext, ok := imageExtensions[mediaType]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, contentType)
	}
	if err := validateKey(handle); err != nil {
		return "", err
	}
	return path.Join("logos", handle, uuid.NewString()+ext), nil
}

// validateKey rejects keys that are empty, absolute or climb out of the store.
func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: path cannot be empty", ErrInvalidPath)
	}

	clean := path.Clean(strings.ReplaceAll(key, "\\", "/"))
	if strings.HasPrefix(clean, "/") {
		return fmt.Errorf("%w: absolute paths not allowed", ErrInvalidPath)
	}
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("%w: path traversal detected", ErrInvalidPath)
	}
	return nil
}
