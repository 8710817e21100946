package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"todolist-api/domain/ports"
	"todolist-api/pkg/logger"
)

// LocalStorage keeps files under a directory served by the API at BaseURL
type LocalStorage struct {
	basePath string // ./storage
	baseURL  string // http://localhost:8080/files
}

type LocalStorageConfig struct {
	BasePath string
	BaseURL  string
}

func NewLocalStorage(config LocalStorageConfig) (ports.StoragePort, error) {
	if err := os.MkdirAll(config.BasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: config.BasePath,
		baseURL:  strings.TrimSuffix(config.BaseURL, "/"),
	}, nil
}

// UploadFile writes the content to basePath/path, replacing any existing file
func (l *LocalStorage) UploadFile(ctx context.Context, file io.Reader, size int64, path string, contentType string) (string, error) {
	key, err := normalizePath(path)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(l.basePath, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	written, err := io.Copy(dst, file)
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	logger.DebugContext(ctx, "File stored locally", "path", key, "bytes", written, "content_type", contentType)
	return l.GetFileURL(key), nil
}

func (l *LocalStorage) GetFileURL(path string) string {
	key, err := normalizePath(path)
	if err != nil {
		return l.baseURL
	}
	return l.baseURL + "/" + key
}

func (l *LocalStorage) GetProviderName() string {
	return "local"
}
