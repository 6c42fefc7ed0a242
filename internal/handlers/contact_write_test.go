package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-contacts/internal/models"
	"github.com/sbilibin2017/gw-contacts/internal/services"
	"github.com/stretchr/testify/assert"
)

const validContactBody = `{
	"first_name": "John",
	"last_name": "Doe",
	"email": "john@example.com",
	"phone_number": "+380501234567",
	"birthday": "1990-05-17"
}`

var validContactInput = models.ContactInput{
	FirstName:   "John",
	LastName:    "Doe",
	Email:       "john@example.com",
	PhoneNumber: "+380501234567",
	Birthday:    models.NewDate(1990, 5, 17),
}

func TestCreateContactHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	created := sampleContact(9, "John")

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockContactCreator)
		expectedCode int
		expectedBody string
	}{
		{
			name: "created",
			body: validContactBody,
			mockSetup: func(m *MockContactCreator) {
				m.EXPECT().Create(gomock.Any(), int64(7), validContactInput).Return(&created, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "duplicate email",
			body: validContactBody,
			mockSetup: func(m *MockContactCreator) {
				m.EXPECT().Create(gomock.Any(), int64(7), validContactInput).Return(nil, services.ErrContactAlreadyExists)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"Contact with this email already exists"}`,
		},
		{
			name:         "missing birthday",
			body:         `{"first_name":"John","last_name":"Doe","email":"john@example.com","phone_number":"1"}`,
			mockSetup:    func(m *MockContactCreator) {},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"error":"Validation failed","fields":{"birthday":"is required"}}`,
		},
		{
			name:         "bad birthday",
			body:         `{"first_name":"John","last_name":"Doe","email":"john@example.com","phone_number":"1","birthday":"17.05.1990"}`,
			mockSetup:    func(m *MockContactCreator) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockContactCreator(ctrl)
			tt.mockSetup(svc)

			req := asUser(httptest.NewRequest(http.MethodPost, "/api/contacts", bytes.NewBufferString(tt.body)), testUser)
			w := httptest.NewRecorder()

			NewCreateContactHandler(svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestUpdateContactHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	updated := sampleContact(3, "John")

	tests := []struct {
		name         string
		mockErr      error
		expectedCode int
		expectedBody string
	}{
		{name: "updated", expectedCode: http.StatusOK},
		{
			name:         "not owned",
			mockErr:      services.ErrContactNotFound,
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Not found or not authorized!"}`,
		},
		{
			name:         "email taken",
			mockErr:      services.ErrContactAlreadyExists,
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"Contact with this email already exists"}`,
		},
		{
			name:         "store failure",
			mockErr:      errors.New("db down"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockContactUpdater(ctrl)
			if tt.mockErr != nil {
				svc.EXPECT().Update(gomock.Any(), int64(7), int64(3), validContactInput).Return(nil, tt.mockErr)
			} else {
				svc.EXPECT().Update(gomock.Any(), int64(7), int64(3), validContactInput).Return(&updated, nil)
			}

			req := httptest.NewRequest(http.MethodPut, "/api/contacts/id/3", bytes.NewBufferString(validContactBody))
			req = asUser(withURLParams(req, "contact_id", "3"), testUser)
			w := httptest.NewRecorder()

			NewUpdateContactHandler(svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestDeleteContactHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deleted := sampleContact(3, "John")

	t.Run("deleted", func(t *testing.T) {
		svc := NewMockContactDeleter(ctrl)
		svc.EXPECT().Delete(gomock.Any(), int64(7), int64(3)).Return(&deleted, nil)

		req := asUser(withURLParams(httptest.NewRequest(http.MethodDelete, "/api/contacts/id/3", nil), "contact_id", "3"), testUser)
		w := httptest.NewRecorder()
		NewDeleteContactHandler(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("not owned", func(t *testing.T) {
		svc := NewMockContactDeleter(ctrl)
		svc.EXPECT().Delete(gomock.Any(), int64(7), int64(3)).Return(nil, services.ErrContactNotFound)

		req := asUser(withURLParams(httptest.NewRequest(http.MethodDelete, "/api/contacts/id/3", nil), "contact_id", "3"), testUser)
		w := httptest.NewRecorder()
		NewDeleteContactHandler(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
