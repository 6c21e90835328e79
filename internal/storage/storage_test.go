package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(Config{BasePath: dir, BaseURL: "/uploads/"})
	require.NoError(t, err)
	ctx := context.Background()

	key := ProfilePictureKey("abc123xyz", ".png")
	require.NoError(t, s.Save(ctx, key, strings.NewReader("png-bytes"), "image/png"))

	content, err := os.ReadFile(filepath.Join(dir, "profile-pictures", "abc123xyz.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))

	exists, err := s.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "/uploads/profile-pictures/abc123xyz.png", s.URL(key))

	require.NoError(t, s.Delete(ctx, key))
	exists, err = s.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	// deleting twice is fine
	assert.NoError(t, s.Delete(ctx, key))
}

func TestLocalStorage_KeysStayInsideBase(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(Config{BasePath: filepath.Join(dir, "base")})
	require.NoError(t, err)

	require.NoError(t, s.Save(context.Background(), "../../escape.txt", strings.NewReader("x"), "text/plain"))
	_, err = os.Stat(filepath.Join(dir, "base", "escape.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "escape.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestPictureExtension(t *testing.T) {
	ext, ok := PictureExtension("image/JPEG")
	assert.True(t, ok)
	assert.Equal(t, ".jpg", ext)

	_, ok = PictureExtension("application/pdf")
	assert.False(t, ok)
}

func TestNewStorage_Unsupported(t *testing.T) {
	_, err := NewStorage(Config{Type: "ftp"})
	assert.Error(t, err)
}
