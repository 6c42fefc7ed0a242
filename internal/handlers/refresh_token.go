package handlers

//go:generate mockgen -source=refresh_token.go -destination=mock_refresh_token.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-contacts/internal/logger"
	"github.com/sbilibin2017/gw-contacts/internal/models"
	"github.com/sbilibin2017/gw-contacts/internal/services"
)

// BearerExtractor reads the bearer token from a request.
type BearerExtractor interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Refresher defines the interface that the refresh service must implement.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
}

// NewRefreshTokenHandler returns an HTTP handler rotating a refresh token.
// @Summary Refresh tokens
// @Description Exchange the current refresh token for a new token pair. Reusing an old refresh token ends the session.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.TokenPair "Token pair"
// @Failure 401 {object} handlers.ErrorResponse "Invalid refresh token"
// @Router /auth/refresh_token [get]
func NewRefreshTokenHandler(tokener BearerExtractor, svc Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := tokener.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			writeUnauthorized(w, "Not authenticated")
			return
		}

		pair, err := svc.Refresh(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidRefreshToken):
				writeUnauthorized(w, "Invalid refresh token")
			case errors.Is(err, services.ErrUnauthorized):
				writeUnauthorized(w, "Could not validate credentials")
			default:
				logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, pair)
	}
}
