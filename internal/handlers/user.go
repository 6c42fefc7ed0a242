package handlers

//go:generate mockgen -source=user.go -destination=mock_user.go -package=handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/gw-contacts/internal/logger"
	"github.com/sbilibin2017/gw-contacts/internal/models"
	"github.com/sbilibin2017/gw-contacts/internal/services"
)

// MaxAvatarSize caps the multipart body of an avatar upload.
const MaxAvatarSize = 5 << 20

// AvatarUpdater defines the interface for replacing the caller's avatar.
type AvatarUpdater interface {
	UpdateAvatar(ctx context.Context, user *models.User, file io.Reader, size int64, contentType string) (*models.User, error)
}

// NewMeHandler returns an HTTP handler with the caller's profile.
// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserResponse "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Router /user/me [get]
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := actingUser(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, models.NewUserResponse(user))
	}
}

// NewAvatarHandler returns an HTTP handler uploading a new avatar for the caller.
// @Summary Update avatar
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image"
// @Success 200 {object} models.UserResponse "Updated profile"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Router /user/avatar [patch]
func NewAvatarHandler(svc AvatarUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := actingUser(w, r)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, MaxAvatarSize)
		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		updated, err := svc.UpdateAvatar(r.Context(), user, file, header.Size, contentType)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnauthorized):
				writeUnauthorized(w, "Could not validate credentials")
			default:
				logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.NewUserResponse(updated))
	}
}
