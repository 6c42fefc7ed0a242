package handlers

//go:generate mockgen -source=confirmed_email.go -destination=mock_confirmed_email.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-contacts/internal/logger"
	"github.com/sbilibin2017/gw-contacts/internal/services"
)

// EmailConfirmer defines the interface that the confirmation service must implement.
type EmailConfirmer interface {
	ConfirmEmail(ctx context.Context, token string) (bool, error)
}

// NewConfirmedEmailHandler returns an HTTP handler for the link sent by email.
// @Summary Confirm email
// @Description Marks the account behind the verification token as verified.
// @Tags auth
// @Produce json
// @Param token path string true "Email verification token"
// @Success 200 {object} handlers.MessageResponse "Email confirmed"
// @Failure 400 {object} handlers.ErrorResponse "Verification error"
// @Router /auth/confirmed_email/{token} [get]
func NewConfirmedEmailHandler(svc EmailConfirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := chi.URLParam(r, "token")

		already, err := svc.ConfirmEmail(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrVerificationFailed):
				writeError(w, http.StatusBadRequest, "Verification error")
			default:
				logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		if already {
			writeJSON(w, http.StatusOK, MessageResponse{Message: "Your email is already confirmed"})
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Email confirmed"})
	}
}
