package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"vowline/internal/entity"

	"github.com/google/uuid"
)

// FileStore saves uploaded chat attachments and exposes the stored file's
// public URL.
type FileStore interface {
	Save(ctx context.Context, reader io.Reader, size int64, fileName, mimeType string) (entity.FileData, error)
	Delete(ctx context.Context, storedPath string) error
}

// LocalFileStore writes attachments to a directory on local disk. The HTTP
// layer serves that directory under baseURL.
type LocalFileStore struct {
	basePath string
	baseURL  string
}

func NewLocalFileStore(basePath, baseURL string) (*LocalFileStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory %s: %w", basePath, err)
	}
	return &LocalFileStore{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

func (s *LocalFileStore) Save(ctx context.Context, reader io.Reader, size int64, fileName, mimeType string) (entity.FileData, error) {
	ext := filepath.Ext(fileName)
	if ext == "" {
		extensions, _ := mime.ExtensionsByType(mimeType)
		if len(extensions) > 0 {
			ext = extensions[0]
		}
	}
	storedName := uuid.New().String() + ext
	dstPath := filepath.Join(s.basePath, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		return entity.FileData{}, fmt.Errorf("create file %s: %w", dstPath, err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, reader)
	if err != nil {
		os.Remove(dstPath)
		return entity.FileData{}, fmt.Errorf("write file: %w", err)
	}
	if size > 0 && written != size {
		os.Remove(dstPath)
		return entity.FileData{}, fmt.Errorf("file size mismatch: expected %d, wrote %d", size, written)
	}

	fileURL := strings.TrimSuffix(s.baseURL, "/") + "/" + url.PathEscape(storedName)

	return entity.FileData{
		OriginalName: fileName,
		Filename:     storedName,
		FileUrl:      fileURL,
		FileSize:     written,
		MimeType:     mimeType,
	}, nil
}

// Delete removes a stored file by the path segment of its URL.
func (s *LocalFileStore) Delete(ctx context.Context, storedPath string) error {
	name := filepath.Base(storedPath)
	return os.Remove(filepath.Join(s.basePath, name))
}
