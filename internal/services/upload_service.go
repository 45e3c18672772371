package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"vk_randomizer_backend/internal/config"
	"vk_randomizer_backend/internal/services/dto"
	"vk_randomizer_backend/internal/storage"
	"vk_randomizer_backend/pkg/apperrors"
)

type UploadService interface {
	UploadPhoto(ctx context.Context, file *multipart.FileHeader) (*dto.UploadResponse, error)
}

type uploadService struct {
	storage storage.Storage
	cfg     config.UploadConfig
}

func NewUploadService(store storage.Storage, cfg config.UploadConfig) UploadService {
	return &uploadService{storage: store, cfg: cfg}
}

// UploadPhoto сохраняет фотографию розыгрыша и возвращает ее публичный URL.
// Имя файла генерируется заново, клиентское имя используется только
// для определения расширения и типа.
func (s *uploadService) UploadPhoto(ctx context.Context, file *multipart.FileHeader) (*dto.UploadResponse, error) {
	if err := s.validatePhoto(file); err != nil {
		return nil, err
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mimeTypeFromFilename(file.Filename)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), randomSuffix(8), ext)

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	if err := s.storage.Save(ctx, name, src, mimeType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.storage.GetURL(ctx, name)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.UploadResponse{URL: url}, nil
}

func (s *uploadService) validatePhoto(file *multipart.FileHeader) error {
	if file.Size > s.cfg.MaxSize {
		return apperrors.ValidationError(map[string]string{
			"photo": fmt.Sprintf("File exceeds maximum size of %d bytes", s.cfg.MaxSize),
		})
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mimeTypeFromFilename(file.Filename)
	}
	for _, allowed := range s.cfg.AllowedTypes {
		if mimeType == allowed {
			return nil
		}
	}
	return apperrors.ValidationError(map[string]string{
		"photo": fmt.Sprintf("Unsupported file type: %s", mimeType),
	})
}

func mimeTypeFromFilename(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	}
	return "application/octet-stream"
}

func randomSuffix(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(bytes)[:length]
}
