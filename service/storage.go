package service

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
)

// ErrFileNotFound is returned by Open when no file exists under the name.
var ErrFileNotFound = errors.New("file not found")

// Storage is path-addressed file storage. Documents hold stored names only;
// the bytes live behind this interface.
type Storage interface {
	Save(ctx context.Context, name string, body io.Reader, contentType string) error
	Open(ctx context.Context, name string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, name string) error
}

// DiskStorage stores files under a single root directory.
type DiskStorage struct {
	Root string
}

func NewDiskStorage(root string) (*DiskStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &DiskStorage{Root: root}, nil
}

// path flattens name to its base so lookups cannot escape the root.
func (d *DiskStorage) path(name string) string {
	return filepath.Join(d.Root, filepath.Base(name))
}

func (d *DiskStorage) Save(ctx context.Context, name string, body io.Reader, contentType string) error {
	f, err := os.Create(d.path(name))
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	return f.Close()
}

// Open returns the file contents. The disk backend does not record content
// type; callers resolve it from the extension.
func (d *DiskStorage) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	f, err := os.Open(d.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", ErrFileNotFound
		}
		return nil, "", err
	}
	return f, "", nil
}

func (d *DiskStorage) Delete(ctx context.Context, name string) error {
	err := os.Remove(d.path(name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
