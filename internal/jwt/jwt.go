package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Scope is the purpose claim that separates the token kinds.
type Scope string

const (
	ScopeAccess            Scope = "access_token"
	ScopeRefresh           Scope = "refresh_token"
	ScopeEmailVerification Scope = "email_token"
)

// Decode errors. Callers map all of them to a single unauthorized outcome.
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
	ErrScopeMismatch = errors.New("token scope mismatch")
)

// Claims is the signed payload of every token.
type Claims struct {
	Scope Scope `json:"scope"`
	jwt.RegisteredClaims
}

// JWT issues and decodes scoped tokens signed with an HMAC secret.
type JWT struct {
	SecretKey  string        // Secret key for signing tokens
	Algorithm  string        // HS256, HS384 or HS512
	AccessExp  time.Duration // Access token lifetime
	RefreshExp time.Duration // Refresh token lifetime
	EmailExp   time.Duration // Email verification token lifetime
}

// Opt configures a JWT.
type Opt func(*JWT)

func WithSecretKey(secret string) Opt {
	return func(j *JWT) { j.SecretKey = secret }
}

func WithAlgorithm(alg string) Opt {
	return func(j *JWT) { j.Algorithm = alg }
}

func WithAccessExpiration(d time.Duration) Opt {
	return func(j *JWT) { j.AccessExp = d }
}

func WithRefreshExpiration(d time.Duration) Opt {
	return func(j *JWT) { j.RefreshExp = d }
}

func WithEmailExpiration(d time.Duration) Opt {
	return func(j *JWT) { j.EmailExp = d }
}

// New creates a new JWT instance
func New(opts ...Opt) *JWT {
	j := &JWT{
		Algorithm:  jwt.SigningMethodHS256.Alg(),
		AccessExp:  15 * time.Minute,
		RefreshExp: 7 * 24 * time.Hour,
		EmailExp:   24 * time.Hour,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// method falls back to HS256 for anything outside the HMAC family.
func (j *JWT) method() jwt.SigningMethod {
	if m, ok := jwt.GetSigningMethod(j.Algorithm).(*jwt.SigningMethodHMAC); ok {
		return m
	}
	return jwt.SigningMethodHS256
}

// Issue signs a token for subject with the given scope and lifetime.
func (j *JWT) Issue(ctx context.Context, subject string, scope Scope, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(j.method(), claims)
	return token.SignedString([]byte(j.SecretKey))
}

// IssueAccess issues an access token with the configured lifetime.
func (j *JWT) IssueAccess(ctx context.Context, subject string) (string, error) {
	return j.Issue(ctx, subject, ScopeAccess, j.AccessExp)
}

// IssueRefresh issues a refresh token with the configured lifetime.
func (j *JWT) IssueRefresh(ctx context.Context, subject string) (string, error) {
	return j.Issue(ctx, subject, ScopeRefresh, j.RefreshExp)
}

// IssueEmailVerification issues an email verification token with the configured lifetime.
func (j *JWT) IssueEmailVerification(ctx context.Context, subject string) (string, error) {
	return j.Issue(ctx, subject, ScopeEmailVerification, j.EmailExp)
}

// parse verifies signature and expiry and requires sub and scope.
func (j *JWT) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(j.SecretKey), nil
		},
		jwt.WithValidMethods([]string{j.method().Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" || claims.Scope == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Decode returns the subject of a token issued for the expected scope.
func (j *JWT) Decode(ctx context.Context, tokenString string, expected Scope) (string, error) {
	claims, err := j.parse(tokenString)
	if err != nil {
		return "", err
	}
	if claims.Scope != expected {
		return "", ErrScopeMismatch
	}
	return claims.Subject, nil
}

// Subject returns the subject of any valid, unexpired token without
// checking its scope. The request path never calls it: ConfirmEmail
// decodes with ScopeEmailVerification so other tokens cannot confirm an
// address.
func (j *JWT) Subject(ctx context.Context, tokenString string) (string, error) {
	claims, err := j.parse(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
