package handlers

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/sbilibin2017/gw-contacts/internal/logger"
	"github.com/sbilibin2017/gw-contacts/internal/models"
	"github.com/sbilibin2017/gw-contacts/internal/services"
	"github.com/sbilibin2017/gw-contacts/internal/validator"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.TokenPair, error)
}

// LoginRequest is an OAuth2 password form: username carries the email
// swagger:model LoginRequest
type LoginRequest struct {
	// Email of the account
	// required: true
	// default: john@example.com
	Username string `json:"username" validate:"required"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate a verified user and return an access/refresh token pair
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} models.TokenPair "Token pair"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email, email not verified or invalid password"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeLogin(r)
		if err != nil {
			writeInvalid(w, err)
			return
		}

		pair, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidEmail):
				writeUnauthorized(w, "Invalid email")
			case errors.Is(err, services.ErrEmailNotVerified):
				writeUnauthorized(w, "Email not verified")
			case errors.Is(err, services.ErrInvalidPassword):
				writeUnauthorized(w, "Invalid password")
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

// decodeLogin accepts a JSON body or a urlencoded/multipart form.
func decodeLogin(r *http.Request) (LoginRequest, error) {
	var req LoginRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" || mediaType == "" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, err
		}
	} else {
		if err := r.ParseMultipartForm(1 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return req, err
		}
		req.Username = r.PostFormValue("username")
		req.Password = r.PostFormValue("password")
	}

	return req, validator.Validate(req)
}
