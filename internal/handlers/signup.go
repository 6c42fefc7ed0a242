package handlers

//go:generate mockgen -source=signup.go -destination=mock_signup.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-contacts/internal/logger"
	"github.com/sbilibin2017/gw-contacts/internal/models"
	"github.com/sbilibin2017/gw-contacts/internal/services"
	"github.com/sbilibin2017/gw-contacts/internal/validator"
)

// Signupper defines the interface that the signup service must implement.
type Signupper interface {
	Signup(ctx context.Context, username, email, password string) (*models.User, error)
}

// SignupRequest represents the JSON body for user registration
// swagger:model SignupRequest
type SignupRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username" validate:"required,min=5,max=16"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,min=6,max=10"`
}

// SignupResponse represents a successful registration response
// swagger:model SignupResponse
type SignupResponse struct {
	User models.UserResponse `json:"user"`

	// Success message
	// default: User successfully created
	Detail string `json:"detail"`
}

// NewSignupHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an unverified account and sends a confirmation email.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "User registration request"
// @Success 201 {object} handlers.SignupResponse "User successfully created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 409 {object} handlers.ErrorResponse "Account already exists"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation failed"
// @Router /auth/signup [post]
func NewSignupHandler(svc Signupper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := validator.DecodeAndValidate(r, &req); err != nil {
			writeInvalid(w, err)
			return
		}

		user, err := svc.Signup(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusConflict, "Account already exists")
			default:
				logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, SignupResponse{
			User:   models.NewUserResponse(user),
			Detail: "User successfully created",
		})
	}
}
