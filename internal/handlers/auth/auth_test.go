package auth

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/battlehub/battlehub/internal/domain"
	authservice "github.com/battlehub/battlehub/internal/service/authservice"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)

	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		prepareMock    func(service *MockService)
		expectedStatus int
		expectedToken  string
	}{
		{
			name: "Successful registration",
			body: `{"username":"gamer42","email":"gamer42@example.com","password":"testpassword"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), "gamer42", "gamer42@example.com", "testpassword").
					Return(&domain.User{ID: 1, Username: "gamer42", Role: domain.RolePlayer}, nil)
				service.EXPECT().GenerateToken(1, domain.RolePlayer).Return("token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedToken:  "Bearer token",
		},
		{
			name:           "Invalid JSON",
			body:           `{"username":`,
			prepareMock:    func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing fields",
			body:           `{"username":"gamer42"}`,
			prepareMock:    func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Email already registered",
			body: `{"username":"gamer42","email":"gamer42@example.com","password":"testpassword"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), "gamer42", "gamer42@example.com", "testpassword").
					Return(nil, authservice.ErrEmailTaken)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Service error",
			body: `{"username":"gamer42","email":"gamer42@example.com","password":"testpassword"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), "gamer42", "gamer42@example.com", "testpassword").
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "Token generation error",
			body: `{"username":"gamer42","email":"gamer42@example.com","password":"testpassword"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), "gamer42", "gamer42@example.com", "testpassword").
					Return(&domain.User{ID: 1, Role: domain.RolePlayer}, nil)
				service.EXPECT().GenerateToken(1, domain.RolePlayer).Return("", errors.New("signing error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler.Register(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedToken != "" {
				assert.Equal(t, tt.expectedToken, rr.Header().Get("Authorization"))
			}
		})
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		prepareMock    func(service *MockService)
		expectedStatus int
		expectedToken  string
	}{
		{
			name: "Successful login",
			body: `{"email":"gamer42@example.com","password":"testpassword"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(gomock.Any(), "gamer42@example.com", "testpassword").
					Return(&domain.User{ID: 1, Role: domain.RolePlayer}, nil)
				service.EXPECT().GenerateToken(1, domain.RolePlayer).Return("token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedToken:  "Bearer token",
		},
		{
			name:           "Invalid JSON",
			body:           `{"email":`,
			prepareMock:    func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Invalid credentials",
			body: `{"email":"gamer42@example.com","password":"wrongpassword"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(gomock.Any(), "gamer42@example.com", "wrongpassword").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Token generation error",
			body: `{"email":"gamer42@example.com","password":"testpassword"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(gomock.Any(), "gamer42@example.com", "testpassword").
					Return(&domain.User{ID: 1, Role: domain.RolePlayer}, nil)
				service.EXPECT().GenerateToken(1, domain.RolePlayer).Return("", errors.New("signing error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler.Login(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedToken != "" {
				assert.Equal(t, tt.expectedToken, rr.Header().Get("Authorization"))
			}
		})
	}
}
