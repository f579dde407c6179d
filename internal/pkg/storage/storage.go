package storage

import (
	"context"
	"io"
)

// Storage defines the minimal interface for file storage backends.
type Storage interface {
	// Save stores a file at the given key and returns an error on failure.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Exists reports whether key is stored.
	Exists(ctx context.Context, key string) (bool, error)

	// Delete removes a file by its key. Returns nil if file doesn't exist.
	Delete(ctx context.Context, key string) error

	// GetURL returns the public URL for a file given its key.
	GetURL(key string) string
}
