package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage абстрагирует хранилище загруженных фотографий розыгрышей.
// Локальный диск для разработки, S3-совместимый Cloudflare R2 для прода.
type Storage interface {
	// Save сохраняет файл по относительному пути
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Get открывает файл на чтение
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete удаляет файл. Отсутствие файла ошибкой не считается.
	Delete(ctx context.Context, path string) error

	// Exists проверяет наличие файла
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL возвращает публичный URL файла
	GetURL(ctx context.Context, path string) (string, error)
}

// Config - настройки хранилища
type Config struct {
	Type      string // local, cloudflare_r2
	BasePath  string // для локального хранилища
	BaseURL   string // база публичных URL
	Bucket    string // для R2
	AccessKey string // для R2
	SecretKey string // для R2
	Endpoint  string // для R2
}

// NewStorage создает хранилище по конфигурации
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	case "cloudflare_r2":
		return NewCloudflareR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
