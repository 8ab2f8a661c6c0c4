package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnsupportedType = errors.New("invalid file type")
	ErrTooLarge        = errors.New("file too large")
	ErrTooManyFiles    = errors.New("too many files")
)

// Accepted upload types: images, PDF and Word documents. A file passes only
// when BOTH its extension and its declared content type are on the list.
var (
	allowedExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".pdf":  true,
		".doc":  true,
		".docx": true,
	}
	allowedContentTypes = map[string]bool{
		"image/jpeg":         true,
		"image/jpg":          true,
		"image/png":          true,
		"image/gif":          true,
		"application/pdf":    true,
		"application/msword": true,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	}
)

// MimeTypeByExtension maps stored-file extensions to the Content-Type used
// when serving them. Unknown extensions fall back to generic binary.
func MimeTypeByExtension(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}

// Uploader validates multipart files and writes them to storage.
type Uploader struct {
	Storage  Storage
	MaxBytes int64
}

// ValidateFile applies the type and size gates without touching storage.
func (u *Uploader) ValidateFile(header *multipart.FileHeader) error {
	ext := strings.ToLower(strings.TrimSpace(filepath.Ext(header.Filename)))
	declared := header.Header.Get("Content-Type")
	if i := strings.Index(declared, ";"); i >= 0 {
		declared = declared[:i]
	}
	declared = strings.ToLower(strings.TrimSpace(declared))
	if !allowedExtensions[ext] || !allowedContentTypes[declared] {
		return ErrUnsupportedType
	}
	if u.MaxBytes > 0 && header.Size > u.MaxBytes {
		return ErrTooLarge
	}
	return nil
}

// StoredName composes the name a file is stored under: the form field it
// arrived in, a millisecond timestamp, and a random disambiguator so
// concurrent uploads of the same field cannot collide.
func StoredName(field, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixMilli(), uuid.New().String(), ext)
}

// SaveFile validates and stores a single multipart file, returning the
// stored name.
func (u *Uploader) SaveFile(ctx context.Context, field string, header *multipart.FileHeader) (string, error) {
	if err := u.ValidateFile(header); err != nil {
		return "", err
	}
	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	name := StoredName(field, header.Filename)
	declared := header.Header.Get("Content-Type")
	if err := u.Storage.Save(ctx, name, f, declared); err != nil {
		return "", err
	}
	return name, nil
}

// SaveAll stores every file or none: a failure part-way removes the files
// already written in this call before returning the error.
func (u *Uploader) SaveAll(ctx context.Context, field string, headers []*multipart.FileHeader, maxCount int) ([]string, error) {
	if maxCount > 0 && len(headers) > maxCount {
		return nil, ErrTooManyFiles
	}
	stored := make([]string, 0, len(headers))
	for _, h := range headers {
		name, err := u.SaveFile(ctx, field, h)
		if err != nil {
			for _, s := range stored {
				_ = u.Storage.Delete(ctx, s)
			}
			return nil, err
		}
		stored = append(stored, name)
	}
	return stored, nil
}
