package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/qrmesai/qrmesai-backend-go/internal/pkg/storage"
)

type FileService interface {
	// UploadAvatar stores an employee profile picture and returns its path.
	UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)

	// UploadPunchSelfie stores the selfie taken while punching.
	UploadPunchSelfie(ctx context.Context, employeeID string, date string, file io.Reader, filename string) (string, error)

	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

var allowedImageExts = []string{".jpg", ".jpeg", ".png", ".webp"}

func validateImageExt(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range allowedImageExts {
		if ext == allowed {
			return ext, nil
		}
	}
	return "", fmt.Errorf("unsupported image type %q, allowed: %s", ext, strings.Join(allowedImageExts, ", "))
}

func contentTypeForExt(ext string) string {
	switch ext {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

// UploadAvatar implements FileService.
func (s *fileServiceImpl) UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	ext, err := validateImageExt(filename)
	if err != nil {
		return "", err
	}

	path := fmt.Sprintf("avatars/%s/%s%s", employeeID, uuid.New().String(), ext)

	storedPath, err := s.storage.Upload(ctx, file, path, contentTypeForExt(ext))
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	return storedPath, nil
}

// UploadPunchSelfie implements FileService.
func (s *fileServiceImpl) UploadPunchSelfie(ctx context.Context, employeeID string, date string, file io.Reader, filename string) (string, error) {
	ext, err := validateImageExt(filename)
	if err != nil {
		return "", err
	}

	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	path := fmt.Sprintf("punches/%s/%s/%s%s", employeeID, date, uuid.New().String(), ext)

	storedPath, err := s.storage.Upload(ctx, file, path, contentTypeForExt(ext))
	if err != nil {
		return "", fmt.Errorf("failed to upload punch selfie: %w", err)
	}

	return storedPath, nil
}

// DeleteFile implements FileService.
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

// GetFileURL implements FileService.
func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string) (string, error) {
	return s.storage.GetURL(ctx, path)
}
