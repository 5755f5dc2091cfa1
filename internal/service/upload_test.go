package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	storeMocks "dreamdwell/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUploadService_PresignUpload(t *testing.T) {
	ctx := context.Background()
	expiry := 15 * time.Minute

	t.Run("happy path", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		keyMatch := mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "images/") && strings.HasSuffix(key, ".jpg")
		})
		mStore.On("PresignPut", ctx, keyMatch, expiry).Return("https://store/presigned", nil)
		mStore.On("ObjectURL", keyMatch).Return("https://store/bucket/images/x.jpg")

		svc := NewUploadService(mStore, expiry)

		res, err := svc.PresignUpload(ctx, "house.jpg")
		assert.NoError(t, err)
		assert.Equal(t, "https://store/presigned", res.UploadURL)
		assert.Equal(t, "https://store/bucket/images/x.jpg", res.ImageURL)
		mStore.AssertExpectations(t)
	})

	t.Run("empty file name", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		svc := NewUploadService(mStore, expiry)

		res, err := svc.PresignUpload(ctx, "")
		assert.ErrorIs(t, err, ErrFileNameRequired)
		assert.Nil(t, res)
		mStore.AssertNotCalled(t, "PresignPut", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage error", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("PresignPut", ctx, mock.Anything, expiry).Return("", errors.New("presign fail"))
		svc := NewUploadService(mStore, expiry)

		res, err := svc.PresignUpload(ctx, "house.jpg")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "presign upload: presign fail")
		assert.Nil(t, res)
	})
}
