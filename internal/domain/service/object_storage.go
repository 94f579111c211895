package service

import (
	"context"
	"io"
)

// ObjectStorage defines the interface for storing uploaded files in a blob
// bucket and exposing them under public URLs.
type ObjectStorage interface {
	// Upload writes the object under the given key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)

	// Delete removes the object under the given key. Deleting a missing
	// object is not an error.
	Delete(ctx context.Context, key string) error
}
