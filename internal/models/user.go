package models

import (
	"time"
)

// User represents a user record in the database
type User struct {
	ID           int64     `json:"id" db:"id"`                     // Primary key
	Username     string    `json:"username" db:"username"`         // Display name
	Email        string    `json:"email" db:"email"`               // Unique email, exact match
	Password     string    `json:"-" db:"password"`                // Bcrypt hash
	Avatar       *string   `json:"avatar" db:"avatar"`             // Avatar URL
	Verification bool      `json:"verification" db:"verification"` // Email confirmed
	RefreshToken *string   `json:"-" db:"refresh_token"`           // Active refresh token, nil when logged out
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}

// UserResponse is the public view of a user
// swagger:model UserResponse
type UserResponse struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Avatar       string    `json:"avatar"`
	Verification bool      `json:"verification"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUserResponse converts a user record into its public view.
func NewUserResponse(u *User) UserResponse {
	resp := UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Verification: u.Verification,
		CreatedAt:    u.CreatedAt,
	}
	if u.Avatar != nil {
		resp.Avatar = *u.Avatar
	}
	return resp
}
