package middlewares

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-contacts/internal/logger"
	"github.com/sbilibin2017/gw-contacts/internal/models"
	"github.com/sbilibin2017/gw-contacts/internal/services"
)

// Tokener extracts the bearer token from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Identifier resolves an access token into the acting user.
type Identifier interface {
	CurrentIdentity(ctx context.Context, token string) (*models.User, error)
}

type userKey struct{}

// WithUser stores the acting user in the context.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext returns the acting user, or nil outside authenticated routes.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey{}).(*models.User)
	return user
}

// AuthMiddleware resolves the bearer access token once per request and puts
// the user into the request context.
func AuthMiddleware(tokener Tokener, identifier Identifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.FromContext(ctx).Infow("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			user, err := identifier.CurrentIdentity(ctx, tokenString)
			if err != nil {
				if errors.Is(err, services.ErrUnauthorized) {
					logger.FromContext(ctx).Infow("authorization failed", "err", err)
					unauthorized(w)
					return
				}
				logger.FromContext(ctx).Errorw("failed to resolve identity", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, http.StatusUnauthorized, services.ErrUnauthorized.Error())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
