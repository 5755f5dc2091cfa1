package storage

import (
	"context"
	"time"
)

// Package storage contains the object-storage abstraction used for listing images.
// Clients upload directly to the store through presigned URLs; the API never
// proxies image bytes.

// Storage is an S3-compatible object storage client interface.
type Storage interface {
	// PresignPut returns a time-limited URL that allows uploading the object
	// without credentials.
	PresignPut(ctx context.Context, key string, expiry time.Duration) (string, error)
	// ObjectURL returns the stable public URL of an object. It does not check
	// that the object exists.
	ObjectURL(key string) string
}
