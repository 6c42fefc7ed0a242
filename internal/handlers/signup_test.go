package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-contacts/internal/models"
	"github.com/sbilibin2017/gw-contacts/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	avatar := "https://www.gravatar.com/avatar/abc"
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		rawBody      string
		reqBody      SignupRequest
		mockSetup    func(m *MockSignupper)
		expectedCode int
		expectedErr  string
	}{
		{
			name:    "success",
			reqBody: SignupRequest{Username: "john_doe", Email: "john@example.com", Password: "secret1"},
			mockSetup: func(m *MockSignupper) {
				m.EXPECT().
					Signup(gomock.Any(), "john_doe", "john@example.com", "secret1").
					Return(&models.User{ID: 1, Username: "john_doe", Email: "john@example.com", Avatar: &avatar, CreatedAt: created}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:    "account already exists",
			reqBody: SignupRequest{Username: "alice_a", Email: "alice@example.com", Password: "secret1"},
			mockSetup: func(m *MockSignupper) {
				m.EXPECT().
					Signup(gomock.Any(), "alice_a", "alice@example.com", "secret1").
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "Account already exists",
		},
		{
			name:         "username too short",
			reqBody:      SignupRequest{Username: "bob", Email: "bob@example.com", Password: "secret1"},
			mockSetup:    func(m *MockSignupper) {},
			expectedCode: http.StatusUnprocessableEntity,
			expectedErr:  "Validation failed",
		},
		{
			name:         "password too long",
			reqBody:      SignupRequest{Username: "bobby", Email: "bob@example.com", Password: "01234567890"},
			mockSetup:    func(m *MockSignupper) {},
			expectedCode: http.StatusUnprocessableEntity,
			expectedErr:  "Validation failed",
		},
		{
			name:         "invalid json",
			rawBody:      "{bad",
			mockSetup:    func(m *MockSignupper) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid request body",
		},
		{
			name:    "internal server error",
			reqBody: SignupRequest{Username: "bobby", Email: "bob@example.com", Password: "secret1"},
			mockSetup: func(m *MockSignupper) {
				m.EXPECT().
					Signup(gomock.Any(), "bobby", "bob@example.com", "secret1").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSignupper(ctrl)
			tt.mockSetup(mockSvc)

			body := []byte(tt.rawBody)
			if tt.rawBody == "" {
				body, _ = json.Marshal(tt.reqBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(body))
			w := httptest.NewRecorder()

			NewSignupHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusCreated {
				var resp SignupResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "User successfully created", resp.Detail)
				assert.Equal(t, int64(1), resp.User.ID)
				assert.Equal(t, avatar, resp.User.Avatar)
				assert.False(t, resp.User.Verification)
				assert.NotContains(t, w.Body.String(), "password")
				return
			}

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedErr, resp.Error)
		})
	}
}
