package tournaments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/battlehub/battlehub/internal/domain"
	tournamentservice "github.com/battlehub/battlehub/internal/service/tournamentservice"
	"github.com/battlehub/battlehub/pkg/auth"
)

func NewMock(t *testing.T) (*TournamentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)

	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newAuthedRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(req.Context(), auth.UserIDKey, 1)
	return req.WithContext(ctx)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestList(t *testing.T) {
	t.Run("Successful fetch", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().List(gomock.Any()).Return([]domain.Tournament{
			{ID: 1, Title: "Friday Cup", TotalSlots: 16, SlotsFull: 3, EntryFee: decimal.NewFromInt(25)},
		}, nil)

		rr := httptest.NewRecorder()
		handler.List(rr, newAuthedRequest(http.MethodGet, "/api/tournaments"))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"Friday Cup"`)
	})

	t.Run("Service error", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().List(gomock.Any()).Return(nil, errors.New("database error"))

		rr := httptest.NewRecorder()
		handler.List(rr, newAuthedRequest(http.MethodGet, "/api/tournaments"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestMy(t *testing.T) {
	t.Run("Successful fetch", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().MyTournaments(gomock.Any(), 1).Return([]int{3, 7}, nil)

		rr := httptest.NewRecorder()
		handler.My(rr, newAuthedRequest(http.MethodGet, "/api/tournaments/my"))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[3,7]`, rr.Body.String())
	})

	t.Run("Nothing joined yet", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().MyTournaments(gomock.Any(), 1).Return(nil, nil)

		rr := httptest.NewRecorder()
		handler.My(rr, newAuthedRequest(http.MethodGet, "/api/tournaments/my"))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("Service error", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().MyTournaments(gomock.Any(), 1).Return(nil, errors.New("database error"))

		rr := httptest.NewRecorder()
		handler.My(rr, newAuthedRequest(http.MethodGet, "/api/tournaments/my"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name           string
		tournamentID   string
		prepareMock    func(service *MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:         "Successful join",
			tournamentID: "5",
			prepareMock: func(service *MockService) {
				service.EXPECT().Join(gomock.Any(), 1, 5).
					Return(&domain.Balance{UserID: 1, CurrentBalance: decimal.NewFromInt(75)}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"current":"75"}`,
		},
		{
			name:           "Invalid tournament id",
			tournamentID:   "abc",
			prepareMock:    func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:         "Tournament not found",
			tournamentID: "42",
			prepareMock: func(service *MockService) {
				service.EXPECT().Join(gomock.Any(), 1, 42).Return(nil, tournamentservice.ErrTournamentNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:         "Tournament full",
			tournamentID: "5",
			prepareMock: func(service *MockService) {
				service.EXPECT().Join(gomock.Any(), 1, 5).Return(nil, tournamentservice.ErrTournamentFull)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:         "Already joined",
			tournamentID: "5",
			prepareMock: func(service *MockService) {
				service.EXPECT().Join(gomock.Any(), 1, 5).Return(nil, tournamentservice.ErrAlreadyJoined)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:         "Insufficient balance",
			tournamentID: "5",
			prepareMock: func(service *MockService) {
				service.EXPECT().Join(gomock.Any(), 1, 5).Return(nil, tournamentservice.ErrInsufficientBalance)
			},
			expectedStatus: http.StatusPaymentRequired,
		},
		{
			name:         "Banned user",
			tournamentID: "5",
			prepareMock: func(service *MockService) {
				service.EXPECT().Join(gomock.Any(), 1, 5).Return(nil, tournamentservice.ErrUserBanned)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:         "Service error",
			tournamentID: "5",
			prepareMock: func(service *MockService) {
				service.EXPECT().Join(gomock.Any(), 1, 5).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := newAuthedRequest(http.MethodPost, "/api/tournaments/"+tt.tournamentID+"/join")
			req = withURLParam(req, "id", tt.tournamentID)
			rr := httptest.NewRecorder()
			handler.Join(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}
