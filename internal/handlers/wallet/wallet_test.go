package wallet

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/battlehub/battlehub/internal/domain"
	walletservice "github.com/battlehub/battlehub/internal/service/walletservice"
	"github.com/battlehub/battlehub/pkg/auth"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)

	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newAuthedRequest(method, target string, body *bytes.Buffer) *http.Request {
	if body == nil {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(req.Context(), auth.UserIDKey, 1)
	return req.WithContext(ctx)
}

func TestGetBalance(t *testing.T) {
	tests := []struct {
		name           string
		prepareMock    func(service *MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Successful fetch",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetBalance(gomock.Any(), 1).Return(&domain.Balance{
					UserID:         1,
					CurrentBalance: decimal.NewFromInt(150),
					WithdrawnTotal: decimal.NewFromInt(40),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"current":"150","withdrawn":"40"}`,
		},
		{
			name: "Balance not found",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetBalance(gomock.Any(), 1).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "Service error",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetBalance(gomock.Any(), 1).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.GetBalance(rr, newAuthedRequest(http.MethodGet, "/api/wallet/balance", nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestCreateTransaction(t *testing.T) {
	amount := decimal.NewFromInt(50)
	id := uuid.New()

	tests := []struct {
		name           string
		body           string
		prepareMock    func(service *MockService)
		expectedStatus int
	}{
		{
			name: "Deposit accepted",
			body: `{"kind":"DEPOSIT","amount":50,"proof":"receipt-2024-09"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateRequest(gomock.Any(), 1, domain.KindDeposit, amount, "receipt-2024-09").
					Return(&domain.TransactionRequest{ID: id, UserID: 1, Kind: domain.KindDeposit, Amount: amount, Status: domain.StatusPending}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid JSON",
			body:           `{"kind":`,
			prepareMock:    func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Invalid amount",
			body: `{"kind":"DEPOSIT","amount":0}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateRequest(gomock.Any(), 1, domain.KindDeposit, decimal.NewFromInt(0), "").
					Return(nil, walletservice.ErrInvalidAmount)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Unknown kind",
			body: `{"kind":"TRANSFER","amount":50}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateRequest(gomock.Any(), 1, "TRANSFER", amount, "").
					Return(nil, walletservice.ErrInvalidKind)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Invalid payout number",
			body: `{"kind":"WITHDRAW","amount":50,"proof":"1234567890"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateRequest(gomock.Any(), 1, domain.KindWithdraw, amount, "1234567890").
					Return(nil, walletservice.ErrInvalidPayoutNumber)
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "Insufficient balance",
			body: `{"kind":"WITHDRAW","amount":50,"proof":"2377225624"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateRequest(gomock.Any(), 1, domain.KindWithdraw, amount, "2377225624").
					Return(nil, walletservice.ErrInsufficientBalance)
			},
			expectedStatus: http.StatusPaymentRequired,
		},
		{
			name: "Banned user",
			body: `{"kind":"DEPOSIT","amount":50}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateRequest(gomock.Any(), 1, domain.KindDeposit, amount, "").
					Return(nil, walletservice.ErrUserBanned)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "Service error",
			body: `{"kind":"DEPOSIT","amount":50}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateRequest(gomock.Any(), 1, domain.KindDeposit, amount, "").
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.CreateTransaction(rr, newAuthedRequest(http.MethodPost, "/api/wallet/transactions", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestGetTransactions(t *testing.T) {
	tests := []struct {
		name           string
		prepareMock    func(service *MockService)
		expectedStatus int
	}{
		{
			name: "Successful fetch",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetUserRequests(gomock.Any(), 1).Return([]domain.TransactionRequest{
					{ID: uuid.New(), UserID: 1, Kind: domain.KindDeposit, Amount: decimal.NewFromInt(50), Status: domain.StatusPending},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "No transactions",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetUserRequests(gomock.Any(), 1).Return(nil, nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "Service error",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetUserRequests(gomock.Any(), 1).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.GetTransactions(rr, newAuthedRequest(http.MethodGet, "/api/wallet/transactions", nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}
