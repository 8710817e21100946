package ports

import (
	"context"
	"io"
)

// StoragePort abstracts where export files live (local disk, S3/MinIO)
type StoragePort interface {
	// UploadFile stores the content at path and returns its public URL
	UploadFile(ctx context.Context, file io.Reader, size int64, path string, contentType string) (string, error)

	GetFileURL(path string) string

	GetProviderName() string
}
