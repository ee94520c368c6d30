package service

import (
	"context"
	"io"
)

// PhotoStore defines the interface for photo blob storage.
type PhotoStore interface {
	// Save writes the photo bytes under a generated key and returns the
	// public URL the stored photo is served from.
	Save(ctx context.Context, contentType string, body io.Reader) (url string, err error)

	// Delete removes a stored photo by its URL. Deleting an unknown URL is
	// a no-op success.
	Delete(ctx context.Context, url string) error
}
