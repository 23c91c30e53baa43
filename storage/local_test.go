package storage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLocalStorage(t *testing.T) {
	tests := []struct {
		name      string
		baseDir   string
		wantError bool
	}{
		{
			name:      "valid base directory",
			baseDir:   t.TempDir(),
			wantError: false,
		},
		{
			name:      "creates non-existent directory",
			baseDir:   filepath.Join(t.TempDir(), "new-dir"),
			wantError: false,
		},
		{
			name:      "empty base directory",
			baseDir:   "",
			wantError: true,
		},
		{
			name:      "dot as base directory",
			baseDir:   ".",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, err := NewLocalStorage(tt.baseDir, "")
			if tt.wantError {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, err := os.Stat(storage.BaseDir()); err != nil {
				t.Errorf("base directory was not created: %v", err)
			}
		})
	}
}

func TestLocalStorage_UploadAndDelete(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:3001/files/")
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	ctx := context.Background()

	key := "logos/c1/logo.png"
	data := []byte("\x89PNG fake image")
	if err := storage.Upload(ctx, key, "image/png", bytes.NewReader(data)); err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(storage.BaseDir(), "logos", "c1", "logo.png"))
	if err != nil {
		t.Fatalf("failed to read uploaded file: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("content mismatch: got %q, want %q", got, data)
	}

	if url := storage.URL(key); url != "http://localhost:3001/files/logos/c1/logo.png" {
		t.Errorf("unexpected url: %s", url)
	}

	if err := storage.Delete(ctx, key); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := storage.Delete(ctx, key); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound on second delete, got %v", err)
	}
}

func TestLocalStorage_DefaultURL(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "")
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	if url := storage.URL("logos/c1/a.gif"); url != "/files/logos/c1/a.gif" {
		t.Errorf("unexpected url: %s", url)
	}
}

func TestLocalStorage_PathTraversalPrevention(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "")
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	ctx := context.Background()

	for _, key := range []string{"", "../escape.png", "a/../../escape.png", "/etc/passwd", ".."} {
		t.Run(key, func(t *testing.T) {
			err := storage.Upload(ctx, key, "image/png", strings.NewReader("x"))
			if !errors.Is(err, ErrInvalidPath) {
				t.Errorf("expected ErrInvalidPath for %q, got %v", key, err)
			}
			if err := storage.Delete(ctx, key); !errors.Is(err, ErrInvalidPath) {
				t.Errorf("expected ErrInvalidPath on delete for %q, got %v", key, err)
			}
		})
	}
}
