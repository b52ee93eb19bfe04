package capture

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	_ "golang.org/x/image/webp"
)

var ErrCameraNotStarted = errors.New("capture: camera not started")

// FileCamera serves a still image from disk as the camera frame. It backs
// the command-line check-in where no video device exists.
type FileCamera struct {
	Path string

	mu    sync.Mutex
	frame image.Image
}

func NewFileCamera(path string) *FileCamera {
	return &FileCamera{Path: path}
}

func (c *FileCamera) StartCapture(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Open(c.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", c.Path, err)
	}

	c.mu.Lock()
	c.frame = img
	c.mu.Unlock()
	return nil
}

func (c *FileCamera) CaptureFrame(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.frame == nil {
		return nil, ErrCameraNotStarted
	}
	return c.frame, nil
}

func (c *FileCamera) Release() error {
	c.mu.Lock()
	c.frame = nil
	c.mu.Unlock()
	return nil
}
