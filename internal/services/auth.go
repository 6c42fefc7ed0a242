package services

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-contacts/internal/jwt"
	"github.com/sbilibin2017/gw-contacts/internal/logger"
	"github.com/sbilibin2017/gw-contacts/internal/models"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string, avatar *string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID int64, token *string) error
	ConfirmEmail(ctx context.Context, email string) error
}

// PasswordHasher hashes and verifies plaintext passwords.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, password, hash string) bool
}

// TokenCodec issues and decodes scoped tokens whose subject is the user email.
type TokenCodec interface {
	IssueAccess(ctx context.Context, subject string) (string, error)
	IssueRefresh(ctx context.Context, subject string) (string, error)
	IssueEmailVerification(ctx context.Context, subject string) (string, error)
	Decode(ctx context.Context, token string, expected jwt.Scope) (string, error)
}

// VerificationPublisher hands a verification email over for asynchronous delivery.
type VerificationPublisher interface {
	PublishVerification(ctx context.Context, msg models.VerificationEmail) error
}

// AuthService handles signup, login, token rotation and email verification.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	hasher      PasswordHasher
	tokens      TokenCodec
	publisher   VerificationPublisher
	baseURL     string
	afterCommit func(ctx context.Context, fn func())
}

// AuthOpt configures an AuthService.
type AuthOpt func(*AuthService)

// WithAfterCommit defers verification mail until the surrounding write is
// durable. By default mail is queued immediately.
func WithAfterCommit(afterCommit func(ctx context.Context, fn func())) AuthOpt {
	return func(svc *AuthService) {
		svc.afterCommit = afterCommit
	}
}

// NewAuthService creates a new AuthService instance.
// baseURL is the public root of the API used to build confirmation links.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	hasher PasswordHasher,
	tokens TokenCodec,
	publisher VerificationPublisher,
	baseURL string,
	opts ...AuthOpt,
) *AuthService {
	svc := &AuthService{
		reader:      reader,
		writer:      writer,
		hasher:      hasher,
		tokens:      tokens,
		publisher:   publisher,
		baseURL:     baseURL,
		afterCommit: func(_ context.Context, fn func()) { fn() },
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// CurrentIdentity resolves a bearer access token into the user it was issued for.
func (svc *AuthService) CurrentIdentity(ctx context.Context, token string) (*models.User, error) {
	email, err := svc.tokens.Decode(ctx, token, jwt.ScopeAccess)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}

// Signup registers a new unverified user and queues a verification email.
func (svc *AuthService) Signup(ctx context.Context, username, email, password string) (*models.User, error) {
	log := logger.FromContext(ctx)

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		log.Infow("user already exists", "email", email)
		return nil, ErrUserAlreadyExists
	}

	hash, err := svc.hasher.Hash(ctx, password)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	avatar := gravatarURL(email)
	user, err := svc.writer.Save(ctx, username, email, hash, &avatar)
	if err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	svc.sendVerification(ctx, user)

	return user, nil
}

// Login checks credentials and opens a new refresh session.
// The email is checked first, then verification, then the password.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.TokenPair, error) {
	log := logger.FromContext(ctx)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		log.Infow("login with unknown email", "email", email)
		return nil, ErrInvalidEmail
	}
	if !user.Verification {
		log.Infow("login with unverified email", "email", email)
		return nil, ErrEmailNotVerified
	}
	if !svc.hasher.Verify(ctx, password, user.Password) {
		log.Infow("login with invalid password", "email", email)
		return nil, ErrInvalidPassword
	}

	return svc.issuePair(ctx, user)
}

// Refresh rotates the session. A refresh token that does not match the
// stored one revokes the session before failing.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	log := logger.FromContext(ctx)

	email, err := svc.tokens.Decode(ctx, refreshToken, jwt.ScopeRefresh)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		if err := svc.writer.UpdateRefreshToken(ctx, user.ID, nil); err != nil {
			log.Errorw("failed to clear refresh token", "err", err)
			return nil, err
		}
		log.Infow("refresh token mismatch, session revoked", "user_id", user.ID)
		return nil, ErrInvalidRefreshToken
	}

	return svc.issuePair(ctx, user)
}

// ConfirmEmail marks the token's user as verified. It reports whether the
// user had already been verified, in which case nothing is written.
func (svc *AuthService) ConfirmEmail(ctx context.Context, token string) (bool, error) {
	log := logger.FromContext(ctx)

	email, err := svc.tokens.Decode(ctx, token, jwt.ScopeEmailVerification)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return false, err
	}
	if user == nil {
		log.Infow("verification for unknown user", "email", email)
		return false, ErrVerificationFailed
	}
	if user.Verification {
		return true, nil
	}

	if err := svc.writer.ConfirmEmail(ctx, email); err != nil {
		log.Errorw("failed to confirm email", "err", err)
		return false, err
	}

	return false, nil
}

// RequestEmail queues a new verification email. Unknown addresses are
// accepted silently so the endpoint does not reveal registrations.
func (svc *AuthService) RequestEmail(ctx context.Context, email string) (bool, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user", "err", err)
		return false, err
	}
	if user == nil {
		return false, nil
	}
	if user.Verification {
		return true, nil
	}

	svc.sendVerification(ctx, user)

	return false, nil
}

func (svc *AuthService) issuePair(ctx context.Context, user *models.User) (*models.TokenPair, error) {
	log := logger.FromContext(ctx)

	access, err := svc.tokens.IssueAccess(ctx, user.Email)
	if err != nil {
		log.Errorw("failed to issue access token", "err", err)
		return nil, err
	}
	refresh, err := svc.tokens.IssueRefresh(ctx, user.Email)
	if err != nil {
		log.Errorw("failed to issue refresh token", "err", err)
		return nil, err
	}

	if err := svc.writer.UpdateRefreshToken(ctx, user.ID, &refresh); err != nil {
		log.Errorw("failed to store refresh token", "err", err)
		return nil, err
	}

	return &models.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    models.TokenTypeBearer,
	}, nil
}

// sendVerification never fails the caller; delivery problems are logged.
// The message is queued only once the user row is committed.
func (svc *AuthService) sendVerification(ctx context.Context, user *models.User) {
	log := logger.FromContext(ctx)

	token, err := svc.tokens.IssueEmailVerification(ctx, user.Email)
	if err != nil {
		log.Errorw("failed to issue email token", "err", err)
		return
	}

	msg := models.VerificationEmail{
		Email:    user.Email,
		Username: user.Username,
		Link:     confirmationLink(svc.baseURL, token),
	}
	svc.afterCommit(ctx, func() {
		if err := svc.publisher.PublishVerification(ctx, msg); err != nil {
			log.Errorw("failed to publish verification email", "email", user.Email, "err", err)
		}
	})
}

func confirmationLink(baseURL, token string) string {
	return strings.TrimSuffix(baseURL, "/") + "/api/auth/confirmed_email/" + token
}

func gravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:])
}
