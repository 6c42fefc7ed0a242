package handlers

//go:generate mockgen -source=request_email.go -destination=mock_request_email.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-contacts/internal/logger"
	"github.com/sbilibin2017/gw-contacts/internal/validator"
)

// EmailRequester defines the interface that the service resending
// confirmation emails must implement.
type EmailRequester interface {
	RequestEmail(ctx context.Context, email string) (bool, error)
}

// RequestEmailRequest represents the JSON body for resending a confirmation email
// swagger:model RequestEmailRequest
type RequestEmailRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email"`
}

// NewRequestEmailHandler returns an HTTP handler resending the confirmation email.
// The reply does not reveal whether the address is registered.
// @Summary Resend confirmation email
// @Tags auth
// @Accept json
// @Produce json
// @Param requestEmail body handlers.RequestEmailRequest true "Email"
// @Success 200 {object} handlers.MessageResponse "Check your email for confirmation."
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation failed"
// @Router /auth/request_email [post]
func NewRequestEmailHandler(svc EmailRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RequestEmailRequest

		if err := validator.DecodeAndValidate(r, &req); err != nil {
			writeInvalid(w, err)
			return
		}

		already, err := svc.RequestEmail(r.Context(), req.Email)
		if err != nil {
			logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		if already {
			writeJSON(w, http.StatusOK, MessageResponse{Message: "Your email is already verified"})
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Check your email for confirmation."})
	}
}
