package services

//go:generate mockgen -source=user.go -destination=mock_user.go -package=services

import (
	"context"
	"io"
	"strconv"

	"github.com/sbilibin2017/gw-contacts/internal/logger"
	"github.com/sbilibin2017/gw-contacts/internal/models"
)

// AvatarUploader stores an image under key and returns its public URL.
type AvatarUploader interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// AvatarWriter persists the avatar URL of a user.
type AvatarWriter interface {
	UpdateAvatar(ctx context.Context, userID int64, url string) (*models.User, error)
}

// UserService manages the profile of the acting user.
type UserService struct {
	uploader AvatarUploader
	writer   AvatarWriter
}

// NewUserService creates a new UserService.
func NewUserService(uploader AvatarUploader, writer AvatarWriter) *UserService {
	return &UserService{
		uploader: uploader,
		writer:   writer,
	}
}

// AvatarKey is the object key of a user's avatar. Usernames are not unique,
// so the key is the user id. Uploads overwrite it.
func AvatarKey(userID int64) string {
	return "UsersApp/" + strconv.FormatInt(userID, 10)
}

// UpdateAvatar uploads the image and stores its URL on the user.
func (s *UserService) UpdateAvatar(ctx context.Context, user *models.User, file io.Reader, size int64, contentType string) (*models.User, error) {
	log := logger.FromContext(ctx)

	url, err := s.uploader.Upload(ctx, AvatarKey(user.ID), file, size, contentType)
	if err != nil {
		log.Errorw("failed to upload avatar", "user_id", user.ID, "err", err)
		return nil, err
	}

	updated, err := s.writer.UpdateAvatar(ctx, user.ID, url)
	if err != nil {
		log.Errorw("failed to update avatar", "user_id", user.ID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}

	return updated, nil
}
