package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStorageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDiskStorage(dir)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "resume-1.pdf", strings.NewReader("%PDF"), "application/pdf"))

	body, contentType, err := s.Open(ctx, "resume-1.pdf")
	require.NoError(t, err)
	defer body.Close()
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data))
	// Disk does not record content type; handlers resolve from extension.
	assert.Empty(t, contentType)

	require.NoError(t, s.Delete(ctx, "resume-1.pdf"))
	_, _, err = s.Open(ctx, "resume-1.pdf")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestDiskStorageOpenMissing(t *testing.T) {
	s, err := NewDiskStorage(t.TempDir())
	require.NoError(t, err)
	_, _, err = s.Open(context.Background(), "nope.pdf")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestDiskStorageDeleteMissingIsNoop(t *testing.T) {
	s, err := NewDiskStorage(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, s.Delete(context.Background(), "nope.pdf"))
}

func TestDiskStorageFlattensPaths(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDiskStorage(dir)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "../../escape.txt", strings.NewReader("x"), ""))

	// The file lands under the root, never outside it.
	_, err = os.Stat(filepath.Join(dir, "escape.txt"))
	assert.NoError(t, err)

	body, _, err := s.Open(ctx, "../../escape.txt")
	require.NoError(t, err)
	body.Close()
}

func TestNewDiskStorageCreatesRoot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	_, err := NewDiskStorage(dir)
	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
