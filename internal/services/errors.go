package services

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is the kind every authentication failure wraps.
var ErrUnauthorized = errors.New("could not validate credentials")

// Authentication errors
var (
	ErrInvalidEmail        = fmt.Errorf("%w: invalid email", ErrUnauthorized)
	ErrEmailNotVerified    = fmt.Errorf("%w: email not verified", ErrUnauthorized)
	ErrInvalidPassword     = fmt.Errorf("%w: invalid password", ErrUnauthorized)
	ErrInvalidRefreshToken = fmt.Errorf("%w: invalid refresh token", ErrUnauthorized)
	ErrUserNotFound        = fmt.Errorf("%w: user not found", ErrUnauthorized)
)

// Account errors
var (
	ErrUserAlreadyExists  = errors.New("account already exists")
	ErrVerificationFailed = errors.New("verification error")
)

// Contact errors
var (
	ErrContactNotFound      = errors.New("contact not found")
	ErrContactAlreadyExists = errors.New("contact with this email already exists")
)
