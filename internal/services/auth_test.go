package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-contacts/internal/jwt"
	"github.com/sbilibin2017/gw-contacts/internal/models"
	"github.com/sbilibin2017/gw-contacts/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://localhost:8080/"

type authMocks struct {
	reader    *services.MockUserReader
	writer    *services.MockUserWriter
	hasher    *services.MockPasswordHasher
	tokens    *services.MockTokenCodec
	publisher *services.MockVerificationPublisher
}

func newAuthService(t *testing.T) (*services.AuthService, authMocks) {
	ctrl := gomock.NewController(t)
	m := authMocks{
		reader:    services.NewMockUserReader(ctrl),
		writer:    services.NewMockUserWriter(ctrl),
		hasher:    services.NewMockPasswordHasher(ctrl),
		tokens:    services.NewMockTokenCodec(ctrl),
		publisher: services.NewMockVerificationPublisher(ctrl),
	}
	svc := services.NewAuthService(m.reader, m.writer, m.hasher, m.tokens, m.publisher, baseURL)
	return svc, m
}

func strPtr(s string) *string { return &s }

func TestAuthService_CurrentIdentity(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: 1, Email: "alice@example.com", Verification: true}
	dbErr := errors.New("db down")

	tests := []struct {
		name    string
		setup   func(m authMocks)
		want    *models.User
		wantErr error
	}{
		{
			name: "valid access token",
			setup: func(m authMocks) {
				m.tokens.EXPECT().Decode(ctx, "tok", jwt.ScopeAccess).Return("alice@example.com", nil)
				m.reader.EXPECT().GetByEmail(ctx, "alice@example.com").Return(user, nil)
			},
			want: user,
		},
		{
			name: "expired token",
			setup: func(m authMocks) {
				m.tokens.EXPECT().Decode(ctx, "tok", jwt.ScopeAccess).Return("", jwt.ErrExpiredToken)
			},
			wantErr: jwt.ErrExpiredToken,
		},
		{
			name: "refresh token used as access token",
			setup: func(m authMocks) {
				m.tokens.EXPECT().Decode(ctx, "tok", jwt.ScopeAccess).Return("", jwt.ErrScopeMismatch)
			},
			wantErr: jwt.ErrScopeMismatch,
		},
		{
			name: "user deleted after issuance",
			setup: func(m authMocks) {
				m.tokens.EXPECT().Decode(ctx, "tok", jwt.ScopeAccess).Return("ghost@example.com", nil)
				m.reader.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, nil)
			},
			wantErr: services.ErrUserNotFound,
		},
		{
			name: "repository error",
			setup: func(m authMocks) {
				m.tokens.EXPECT().Decode(ctx, "tok", jwt.ScopeAccess).Return("alice@example.com", nil)
				m.reader.EXPECT().GetByEmail(ctx, "alice@example.com").Return(nil, dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)

			got, err := svc.CurrentIdentity(ctx, "tok")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthService_CurrentIdentity_TokenErrorsAreUnauthorized(t *testing.T) {
	for _, codecErr := range []error{jwt.ErrInvalidToken, jwt.ErrExpiredToken, jwt.ErrScopeMismatch} {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().Decode(gomock.Any(), "tok", jwt.ScopeAccess).Return("", codecErr)

		_, err := svc.CurrentIdentity(context.Background(), "tok")
		assert.ErrorIs(t, err, services.ErrUnauthorized)
		assert.ErrorIs(t, err, codecErr)
	}
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	created := &models.User{ID: 7, Username: "alice", Email: "alice@example.com"}

	tests := []struct {
		name    string
		setup   func(m authMocks)
		wantErr error
	}{
		{
			name: "successful signup",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(ctx, "alice@example.com").Return(nil, nil)
				m.hasher.EXPECT().Hash(ctx, "secret1").Return("$2a$hash", nil)
				m.writer.EXPECT().
					Save(ctx, "alice", "alice@example.com", "$2a$hash", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _, _ string, avatar *string) (*models.User, error) {
						require.NotNil(t, avatar)
						assert.True(t, strings.HasPrefix(*avatar, "https://www.gravatar.com/avatar/"))
						return created, nil
					})
				m.tokens.EXPECT().IssueEmailVerification(ctx, "alice@example.com").Return("email-tok", nil)
				m.publisher.EXPECT().PublishVerification(ctx, models.VerificationEmail{
					Email:    "alice@example.com",
					Username: "alice",
					Link:     "http://localhost:8080/api/auth/confirmed_email/email-tok",
				}).Return(nil)
			},
		},
		{
			name: "publish failure does not fail signup",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(ctx, "alice@example.com").Return(nil, nil)
				m.hasher.EXPECT().Hash(ctx, "secret1").Return("$2a$hash", nil)
				m.writer.EXPECT().Save(ctx, "alice", "alice@example.com", "$2a$hash", gomock.Any()).Return(created, nil)
				m.tokens.EXPECT().IssueEmailVerification(ctx, "alice@example.com").Return("email-tok", nil)
				m.publisher.EXPECT().PublishVerification(ctx, gomock.Any()).Return(errors.New("broker down"))
			},
		},
		{
			name: "email already registered",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(ctx, "alice@example.com").Return(&models.User{ID: 1}, nil)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name: "concurrent signup loses the unique race",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(ctx, "alice@example.com").Return(nil, nil)
				m.hasher.EXPECT().Hash(ctx, "secret1").Return("$2a$hash", nil)
				m.writer.EXPECT().Save(ctx, "alice", "alice@example.com", "$2a$hash", gomock.Any()).Return(nil, models.ErrDuplicate)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name: "hash failure",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(ctx, "alice@example.com").Return(nil, nil)
				m.hasher.EXPECT().Hash(ctx, "secret1").Return("", context.Canceled)
			},
			wantErr: context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)

			user, err := svc.Signup(ctx, "alice", "alice@example.com", "secret1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, created, user)
		})
	}
}

func TestAuthService_Signup_VerificationWaitsForCommit(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	m := authMocks{
		reader:    services.NewMockUserReader(ctrl),
		writer:    services.NewMockUserWriter(ctrl),
		hasher:    services.NewMockPasswordHasher(ctrl),
		tokens:    services.NewMockTokenCodec(ctrl),
		publisher: services.NewMockVerificationPublisher(ctrl),
	}

	var pending []func()
	svc := services.NewAuthService(m.reader, m.writer, m.hasher, m.tokens, m.publisher, baseURL,
		services.WithAfterCommit(func(_ context.Context, fn func()) { pending = append(pending, fn) }))

	created := &models.User{ID: 7, Username: "alice", Email: "alice@example.com"}
	m.reader.EXPECT().GetByEmail(ctx, "alice@example.com").Return(nil, nil)
	m.hasher.EXPECT().Hash(ctx, "secret1").Return("$2a$hash", nil)
	m.writer.EXPECT().Save(ctx, "alice", "alice@example.com", "$2a$hash", gomock.Any()).Return(created, nil)
	m.tokens.EXPECT().IssueEmailVerification(ctx, "alice@example.com").Return("email-tok", nil)

	_, err := svc.Signup(ctx, "alice", "alice@example.com", "secret1")
	require.NoError(t, err)
	require.Len(t, pending, 1)

	m.publisher.EXPECT().PublishVerification(ctx, models.VerificationEmail{
		Email:    "alice@example.com",
		Username: "alice",
		Link:     "http://localhost:8080/api/auth/confirmed_email/email-tok",
	}).Return(nil)
	pending[0]()
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	verified := &models.User{ID: 3, Email: "bob@example.com", Password: "$2a$hash", Verification: true}
	unverified := &models.User{ID: 4, Email: "carol@example.com", Password: "$2a$hash"}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(m authMocks)
		wantErr  error
	}{
		{
			name:     "successful login",
			email:    "bob@example.com",
			password: "secret1",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(ctx, "bob@example.com").Return(verified, nil)
				m.hasher.EXPECT().Verify(ctx, "secret1", "$2a$hash").Return(true)
				m.tokens.EXPECT().IssueAccess(ctx, "bob@example.com").Return("access", nil)
				m.tokens.EXPECT().IssueRefresh(ctx, "bob@example.com").Return("refresh", nil)
				m.writer.EXPECT().UpdateRefreshToken(ctx, int64(3), strPtr("refresh")).Return(nil)
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "secret1",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(ctx, "nobody@example.com").Return(nil, nil)
			},
			wantErr: services.ErrInvalidEmail,
		},
		{
			name:     "unverified email checked before password",
			email:    "carol@example.com",
			password: "wrong",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(ctx, "carol@example.com").Return(unverified, nil)
			},
			wantErr: services.ErrEmailNotVerified,
		},
		{
			name:     "wrong password",
			email:    "bob@example.com",
			password: "wrong",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(ctx, "bob@example.com").Return(verified, nil)
				m.hasher.EXPECT().Verify(ctx, "wrong", "$2a$hash").Return(false)
			},
			wantErr: services.ErrInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)

			pair, err := svc.Login(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, services.ErrUnauthorized)
				assert.Nil(t, pair)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &models.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "bearer"}, pair)
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(m authMocks)
		wantErr error
	}{
		{
			name: "matching token rotates the session",
			setup: func(m authMocks) {
				m.tokens.EXPECT().Decode(ctx, "r1", jwt.ScopeRefresh).Return("bob@example.com", nil)
				m.reader.EXPECT().GetByEmail(ctx, "bob@example.com").
					Return(&models.User{ID: 3, Email: "bob@example.com", RefreshToken: strPtr("r1")}, nil)
				m.tokens.EXPECT().IssueAccess(ctx, "bob@example.com").Return("access", nil)
				m.tokens.EXPECT().IssueRefresh(ctx, "bob@example.com").Return("r2", nil)
				m.writer.EXPECT().UpdateRefreshToken(ctx, int64(3), strPtr("r2")).Return(nil)
			},
		},
		{
			name: "stale token revokes the session",
			setup: func(m authMocks) {
				m.tokens.EXPECT().Decode(ctx, "r1", jwt.ScopeRefresh).Return("bob@example.com", nil)
				m.reader.EXPECT().GetByEmail(ctx, "bob@example.com").
					Return(&models.User{ID: 3, Email: "bob@example.com", RefreshToken: strPtr("r2")}, nil)
				m.writer.EXPECT().UpdateRefreshToken(ctx, int64(3), nil).Return(nil)
			},
			wantErr: services.ErrInvalidRefreshToken,
		},
		{
			name: "no stored session",
			setup: func(m authMocks) {
				m.tokens.EXPECT().Decode(ctx, "r1", jwt.ScopeRefresh).Return("bob@example.com", nil)
				m.reader.EXPECT().GetByEmail(ctx, "bob@example.com").
					Return(&models.User{ID: 3, Email: "bob@example.com"}, nil)
				m.writer.EXPECT().UpdateRefreshToken(ctx, int64(3), nil).Return(nil)
			},
			wantErr: services.ErrInvalidRefreshToken,
		},
		{
			name: "access token presented for refresh",
			setup: func(m authMocks) {
				m.tokens.EXPECT().Decode(ctx, "r1", jwt.ScopeRefresh).Return("", jwt.ErrScopeMismatch)
			},
			wantErr: jwt.ErrScopeMismatch,
		},
		{
			name: "unknown user",
			setup: func(m authMocks) {
				m.tokens.EXPECT().Decode(ctx, "r1", jwt.ScopeRefresh).Return("ghost@example.com", nil)
				m.reader.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, nil)
			},
			wantErr: services.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)

			pair, err := svc.Refresh(ctx, "r1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, services.ErrUnauthorized)
				assert.Nil(t, pair)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "r2", pair.RefreshToken)
			assert.Equal(t, "access", pair.AccessToken)
		})
	}
}

func TestAuthService_ConfirmEmail(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		setup       func(m authMocks)
		wantAlready bool
		wantErr     error
	}{
		{
			name: "first confirmation",
			setup: func(m authMocks) {
				m.tokens.EXPECT().Decode(ctx, "e1", jwt.ScopeEmailVerification).Return("dave@example.com", nil)
				m.reader.EXPECT().GetByEmail(ctx, "dave@example.com").Return(&models.User{ID: 5}, nil)
				m.writer.EXPECT().ConfirmEmail(ctx, "dave@example.com").Return(nil)
			},
		},
		{
			name: "already confirmed performs no write",
			setup: func(m authMocks) {
				m.tokens.EXPECT().Decode(ctx, "e1", jwt.ScopeEmailVerification).Return("dave@example.com", nil)
				m.reader.EXPECT().GetByEmail(ctx, "dave@example.com").Return(&models.User{ID: 5, Verification: true}, nil)
			},
			wantAlready: true,
		},
		{
			name: "unknown user",
			setup: func(m authMocks) {
				m.tokens.EXPECT().Decode(ctx, "e1", jwt.ScopeEmailVerification).Return("ghost@example.com", nil)
				m.reader.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, nil)
			},
			wantErr: services.ErrVerificationFailed,
		},
		{
			name: "garbage token",
			setup: func(m authMocks) {
				m.tokens.EXPECT().Decode(ctx, "e1", jwt.ScopeEmailVerification).Return("", jwt.ErrInvalidToken)
			},
			wantErr: services.ErrVerificationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)

			already, err := svc.ConfirmEmail(ctx, "e1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAlready, already)
		})
	}
}

func TestAuthService_RequestEmail(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		setup       func(m authMocks)
		wantAlready bool
	}{
		{
			name: "unverified user gets a new email",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(ctx, "erin@example.com").
					Return(&models.User{ID: 6, Username: "erin", Email: "erin@example.com"}, nil)
				m.tokens.EXPECT().IssueEmailVerification(ctx, "erin@example.com").Return("e2", nil)
				m.publisher.EXPECT().PublishVerification(ctx, models.VerificationEmail{
					Email:    "erin@example.com",
					Username: "erin",
					Link:     "http://localhost:8080/api/auth/confirmed_email/e2",
				}).Return(nil)
			},
		},
		{
			name: "verified user",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(ctx, "erin@example.com").
					Return(&models.User{ID: 6, Email: "erin@example.com", Verification: true}, nil)
			},
			wantAlready: true,
		},
		{
			name: "unknown email is accepted silently",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(ctx, "erin@example.com").Return(nil, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)

			already, err := svc.RequestEmail(ctx, "erin@example.com")
			require.NoError(t, err)
			assert.Equal(t, tt.wantAlready, already)
		})
	}
}
