package filestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Store persists an uploaded file and returns the reference written to the
// database row (a path for disk, an s3:// URL for buckets).
//
//go:generate mockgen -source=filestore.go -destination=mock/filestore_mock.go -package=mock
type Store interface {
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
}

// objectName is <unix-millis>-<uuid><ext>. The millis prefix keeps uploads
// sorted by arrival; the uuid keeps same-millisecond uploads apart.
func objectName(now time.Time, originalName string) string {
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + uuid.NewString() + filepath.Ext(originalName)
}

type LocalStore struct {
	dir string
	now func() time.Time
}

func NewLocalStore(dir string) *LocalStore {
	if dir == "" {
		dir = "uploads"
	}
	return &LocalStore{dir: dir, now: time.Now}
}

func (s *LocalStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	path := filepath.Join(s.dir, objectName(s.now(), originalName))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close upload file: %w", err)
	}
	return path, nil
}
