package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/battlehub/battlehub/internal/domain"
	"github.com/battlehub/battlehub/internal/dto"
	walletservice "github.com/battlehub/battlehub/internal/service/walletservice"
	"github.com/battlehub/battlehub/pkg/auth"
	"github.com/battlehub/battlehub/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (*domain.Balance, error)
	CreateRequest(ctx context.Context, userID int, kind string, amount decimal.Decimal, proof string) (*domain.TransactionRequest, error)
	GetUserRequests(ctx context.Context, userID int) ([]domain.TransactionRequest, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current wallet balance
//	@Description	Retrieve the spendable balance and total withdrawn amount for the authenticated user.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current and withdrawn amounts"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Balance not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.walletService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if balance == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Balance not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Current:   balance.CurrentBalance,
		Withdrawn: balance.WithdrawnTotal,
	})
}

// CreateTransaction godoc
//
//	@Summary		Submit a deposit or withdrawal request
//	@Description	Create a PENDING transaction request for admin review. Deposits carry a proof-of-payment screenshot; withdrawals carry the payout card number and hold the amount immediately.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateTransactionRequestDTO	true	"Transaction request payload"
//	@Success		200		{object}	dto.CreateTransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		403		{object}	utils.Response	"User is banned"
//	@Failure		422		{object}	utils.Response	"Invalid payout card number"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/transactions [post]
func (h *WalletHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateTransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.walletService.CreateRequest(r.Context(), userID, req.Kind, req.Amount, req.Proof)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInvalidAmount), errors.Is(err, walletservice.ErrInvalidKind):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, walletservice.ErrInvalidPayoutNumber):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, walletservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, walletservice.ErrUserBanned):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreateTransactionResponseDTO{
		ID: created.ID.String(),
	})
}

// GetTransactions godoc
//
//	@Summary		Get own transaction history
//	@Description	Get the authenticated user's deposit and withdrawal requests, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionDTO	"Transaction history"
//	@Success		204	{object}	utils.Response		"No transactions"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	requests, err := h.walletService.GetUserRequests(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	if len(requests) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTOs(requests))
}

func toTransactionDTOs(requests []domain.TransactionRequest) []dto.TransactionDTO {
	response := make([]dto.TransactionDTO, len(requests))
	for i, req := range requests {
		response[i] = toTransactionDTO(req)
	}
	return response
}

func toTransactionDTO(req domain.TransactionRequest) dto.TransactionDTO {
	return dto.TransactionDTO{
		ID:         req.ID.String(),
		UserID:     req.UserID,
		Username:   req.Username,
		Kind:       req.Kind,
		Amount:     req.Amount,
		Proof:      req.Proof,
		Note:       req.Note,
		Status:     req.Status,
		CreatedAt:  req.CreatedAt,
		ResolvedAt: req.ResolvedAt,
	}
}
