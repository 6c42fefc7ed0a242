package services_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-contacts/internal/models"
	"github.com/sbilibin2017/gw-contacts/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_UpdateAvatar(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: 9, Username: "alice"}
	url := "http://localhost:9000/avatars/UsersApp/9"
	uploadErr := errors.New("bucket missing")

	tests := []struct {
		name    string
		setup   func(u *services.MockAvatarUploader, w *services.MockAvatarWriter)
		wantErr error
	}{
		{
			name: "upload and persist",
			setup: func(u *services.MockAvatarUploader, w *services.MockAvatarWriter) {
				u.EXPECT().Upload(ctx, "UsersApp/9", gomock.Any(), int64(3), "image/png").Return(url, nil)
				w.EXPECT().UpdateAvatar(ctx, int64(9), url).Return(&models.User{ID: 9, Avatar: &url}, nil)
			},
		},
		{
			name: "upload failure leaves profile untouched",
			setup: func(u *services.MockAvatarUploader, w *services.MockAvatarWriter) {
				u.EXPECT().Upload(ctx, "UsersApp/9", gomock.Any(), int64(3), "image/png").Return("", uploadErr)
			},
			wantErr: uploadErr,
		},
		{
			name: "user vanished",
			setup: func(u *services.MockAvatarUploader, w *services.MockAvatarWriter) {
				u.EXPECT().Upload(ctx, "UsersApp/9", gomock.Any(), int64(3), "image/png").Return(url, nil)
				w.EXPECT().UpdateAvatar(ctx, int64(9), url).Return(nil, nil)
			},
			wantErr: services.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uploader := services.NewMockAvatarUploader(ctrl)
			writer := services.NewMockAvatarWriter(ctrl)
			tt.setup(uploader, writer)

			svc := services.NewUserService(uploader, writer)
			got, err := svc.UpdateAvatar(ctx, user, strings.NewReader("png"), 3, "image/png")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, url, *got.Avatar)
		})
	}
}

func TestAvatarKey(t *testing.T) {
	assert.Equal(t, "UsersApp/42", services.AvatarKey(42))
}

// memoryBucket keeps uploaded objects by key.
type memoryBucket struct {
	objects map[string]string
}

func (b *memoryBucket) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	b.objects[key] = string(data)
	return "https://cdn/" + key, nil
}

// avatarStore records the avatar URL saved per user.
type avatarStore struct {
	urls map[int64]string
}

func (s *avatarStore) UpdateAvatar(ctx context.Context, userID int64, url string) (*models.User, error) {
	s.urls[userID] = url
	return &models.User{ID: userID, Avatar: &url}, nil
}

func TestUserService_UpdateAvatar_SameUsernameKeepsSeparateObjects(t *testing.T) {
	ctx := context.Background()
	bucket := &memoryBucket{objects: map[string]string{}}
	store := &avatarStore{urls: map[int64]string{}}
	svc := services.NewUserService(bucket, store)

	first := &models.User{ID: 1, Username: "alice"}
	second := &models.User{ID: 2, Username: "alice"}

	a, err := svc.UpdateAvatar(ctx, first, strings.NewReader("A-image"), 7, "image/png")
	require.NoError(t, err)
	b, err := svc.UpdateAvatar(ctx, second, strings.NewReader("B-image"), 7, "image/png")
	require.NoError(t, err)

	assert.NotEqual(t, *a.Avatar, *b.Avatar)
	assert.Equal(t, "A-image", bucket.objects[services.AvatarKey(1)])
	assert.Equal(t, "B-image", bucket.objects[services.AvatarKey(2)])
	assert.Equal(t, "https://cdn/UsersApp/1", store.urls[1])
	assert.Equal(t, "https://cdn/UsersApp/2", store.urls[2])
}
