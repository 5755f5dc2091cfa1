package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"dreamdwell/internal/storage"
)

var ErrFileNameRequired = errors.New("fileName is required")

// UploadResult carries the two URLs a client needs to attach an image to a
// listing: a presigned PUT target and the stable URL to store in the record.
type UploadResult struct {
	UploadURL string `json:"uploadUrl"`
	ImageURL  string `json:"imageUrl"`
}

// UploadService hands out presigned upload URLs for listing images.
type UploadService interface {
	// PresignUpload generates an object key from the original filename and
	// returns the presigned upload URL plus the public image URL.
	PresignUpload(ctx context.Context, fileName string) (*UploadResult, error)
}

type uploadService struct {
	store  storage.Storage
	expiry time.Duration
}

// NewUploadService constructs an UploadService. expiry bounds how long a
// presigned upload URL stays valid.
func NewUploadService(store storage.Storage, expiry time.Duration) UploadService {
	return &uploadService{store: store, expiry: expiry}
}

func (s *uploadService) PresignUpload(ctx context.Context, fileName string) (*UploadResult, error) {
	if fileName == "" {
		return nil, ErrFileNameRequired
	}

	// Object name is UUID + original extension; the original filename is not
	// trusted as a key.
	ext := filepath.Ext(fileName)
	key := filepath.ToSlash(filepath.Join("images", uuid.New().String()+ext))

	uploadURL, err := s.store.PresignPut(ctx, key, s.expiry)
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}
	return &UploadResult{
		UploadURL: uploadURL,
		ImageURL:  s.store.ObjectURL(key),
	}, nil
}
