package models

// TokenTypeBearer is the only token type issued.
const TokenTypeBearer = "bearer"

// TokenPair is returned on login and refresh
// swagger:model TokenPair
type TokenPair struct {
	// Short-lived access token
	AccessToken string `json:"access_token"`

	// Long-lived refresh token
	RefreshToken string `json:"refresh_token"`

	// Always "bearer"
	// example: bearer
	TokenType string `json:"token_type"`
}
