package storage

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "/static/")
	require.NoError(t, err)

	key := "images/hero/family-1-800.jpg"
	ok, err := s.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save(ctx, key, strings.NewReader("jpeg bytes"), "image/jpeg"))

	ok, err = s.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/static/images/hero/family-1-800.jpg", s.GetURL(key))

	data, err := os.ReadFile(filepath.Join(dir, "images", "hero", "family-1-800.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))

	require.NoError(t, s.Delete(ctx, key))
	require.NoError(t, s.Delete(ctx, key), "deleting twice is not an error")

	ok, err = s.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalStorageRejectsEscapingKeys(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "/static")
	require.NoError(t, err)

	err = s.Save(context.Background(), "../outside.txt", strings.NewReader("x"), "text/plain")
	assert.Error(t, err)
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func TestValidateFile(t *testing.T) {
	t.Run("accepts png", func(t *testing.T) {
		data, mime, err := ValidateFile(bytes.NewReader(pngBytes(t)), CategoryHero, 1<<20)
		require.NoError(t, err)
		assert.Equal(t, "image/png", mime)
		assert.NotEmpty(t, data)
		assert.Equal(t, ".png", GetExtensionForMime(mime))
	})

	t.Run("rejects text", func(t *testing.T) {
		_, _, err := ValidateFile(strings.NewReader("hello"), CategoryHero, 1<<20)
		assert.ErrorIs(t, err, ErrInvalidMimeType)
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, _, err := ValidateFile(strings.NewReader(""), CategoryHero, 1<<20)
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("rejects oversized", func(t *testing.T) {
		_, _, err := ValidateFile(bytes.NewReader(pngBytes(t)), CategoryHero, 8)
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, _, err := ValidateFile(io.LimitReader(strings.NewReader("x"), 1), "avatar", 10)
		assert.Error(t, err)
	})
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(&smithy.GenericAPIError{Code: "NotFound"}))
	assert.True(t, isNotFound(&smithy.GenericAPIError{Code: "NoSuchKey"}))
	assert.False(t, isNotFound(&smithy.GenericAPIError{Code: "AccessDenied"}))
	assert.False(t, isNotFound(errors.New("dial tcp: timeout")))
}
