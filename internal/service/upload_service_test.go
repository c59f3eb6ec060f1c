package service

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/shoplite/internal/config"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func setupUploadServiceTest(t *testing.T, maxSize int64) *UploadService {
	t.Helper()
	cfg := testConfig()
	cfg.Upload = config.UploadConfig{
		Dir:          t.TempDir(),
		MaxSize:      maxSize,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/gif"},
	}
	return NewUploadService(cfg)
}

func buildFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file failed: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("parse multipart form failed: %v", err)
	}
	files := req.MultipartForm.File["file"]
	if len(files) != 1 {
		t.Fatalf("want 1 file header got %d", len(files))
	}
	return files[0]
}

func TestSaveImageRenamesAndStripsSpaces(t *testing.T) {
	svc := setupUploadServiceTest(t, 0)

	filename, err := svc.SaveImage(buildFileHeader(t, "my product photo.png", pngHeader))
	if err != nil {
		t.Fatalf("save image failed: %v", err)
	}
	if strings.Contains(filename, " ") {
		t.Fatalf("stored filename should not contain spaces, got %s", filename)
	}
	if !strings.HasSuffix(filename, "_myproductphoto.png") {
		t.Fatalf("stored filename should end with sanitized original name, got %s", filename)
	}

	path, err := svc.ResolvePath(filename)
	if err != nil {
		t.Fatalf("resolve stored file failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stored file should exist on disk: %v", err)
	}
}

func TestSaveImageRejectsWrongType(t *testing.T) {
	svc := setupUploadServiceTest(t, 0)

	_, err := svc.SaveImage(buildFileHeader(t, "note.txt", []byte("plain text, not an image")))
	if !errors.Is(err, ErrFileTypeInvalid) {
		t.Fatalf("want ErrFileTypeInvalid got %v", err)
	}
}

func TestSaveImageRejectsOversize(t *testing.T) {
	svc := setupUploadServiceTest(t, 4)

	_, err := svc.SaveImage(buildFileHeader(t, "big.png", pngHeader))
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("want ErrFileTooLarge got %v", err)
	}
}

func TestResolvePathRejectsTraversalAndMissing(t *testing.T) {
	svc := setupUploadServiceTest(t, 0)

	for _, name := range []string{"../secret.png", "a/b.png", "", "."} {
		if _, err := svc.ResolvePath(name); !errors.Is(err, ErrNotFound) {
			t.Fatalf("name %q want ErrNotFound got %v", name, err)
		}
	}
	if _, err := svc.ResolvePath("missing.png"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing file want ErrNotFound got %v", err)
	}
}

func TestPublicImagePath(t *testing.T) {
	got := PublicImagePath("abc_photo.png")
	if got != "/api/v1/products/images/abc_photo.png" {
		t.Fatalf("public path want /api/v1/products/images/abc_photo.png got %s", got)
	}
}
