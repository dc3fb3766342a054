package storage

import (
	"context"
	"io"
)

// FileStorage abstracts the object store that holds overtime and
// document attachments. The application keeps only {name, url} pairs,
// never file content.
type FileStorage interface {
	// Upload stores a file and returns its storage path/key.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a file.
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file.
	Delete(ctx context.Context, path string) error

	// GetURL returns a retrievable URL for a stored file.
	GetURL(ctx context.Context, path string) (string, error)

	// Exists checks if a file exists.
	Exists(ctx context.Context, path string) (bool, error)
}
