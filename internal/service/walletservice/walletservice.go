package walletservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/battlehub/battlehub/internal/domain"
	"github.com/battlehub/battlehub/internal/pg"
	"github.com/battlehub/battlehub/pkg/validate"
	"go.uber.org/zap"
)

type BalanceRepo interface {
	GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	CreateUserBalance(ctx context.Context, userID int, initial decimal.Decimal) (*domain.Balance, error)
	Adjust(ctx context.Context, userID int, delta decimal.Decimal) (*domain.Balance, error)
	Hold(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Balance, error)
	ReleaseHold(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Balance, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, req *domain.TransactionRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.TransactionRequest, error)
	Resolve(ctx context.Context, id uuid.UUID, status string) (*domain.TransactionRequest, error)
	ListByUserID(ctx context.Context, userID int) ([]domain.TransactionRequest, error)
	ListAll(ctx context.Context) ([]domain.TransactionRequest, error)
	ListByStatus(ctx context.Context, status string) ([]domain.TransactionRequest, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
}

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrRequestNotFound     = errors.New("transaction request not found")
	ErrAlreadyResolved     = errors.New("transaction request already resolved")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidKind         = errors.New("unknown transaction kind")
	ErrInvalidDecision     = errors.New("unknown decision")
	ErrInvalidPayoutNumber = errors.New("invalid payout card number")
	ErrUserBanned          = errors.New("user is banned")
)

type Service struct {
	balanceRepo     BalanceRepo
	transactionRepo TransactionRepo
	userRepo        UserRepo
	txManager       pg.TXManager
}

func New(balanceRepo BalanceRepo, transactionRepo TransactionRepo, userRepo UserRepo, txManager pg.TXManager) *Service {
	return &Service{
		balanceRepo:     balanceRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		txManager:       txManager,
	}
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.balanceRepo.GetUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

func (s *Service) CreateBalance(ctx context.Context, userID int, initial decimal.Decimal) (*domain.Balance, error) {
	balance, err := s.balanceRepo.CreateUserBalance(ctx, userID, initial)
	if err != nil {
		zap.L().Error("failed to create balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// CreateRequest registers a deposit or withdrawal for admin review. A
// withdrawal holds the amount immediately: the conditional debit and the
// PENDING insert commit in one transaction, so a request that can't be
// covered never exists.
func (s *Service) CreateRequest(ctx context.Context, userID int, kind string, amount decimal.Decimal, proof string) (*domain.TransactionRequest, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if kind != domain.KindDeposit && kind != domain.KindWithdraw {
		return nil, ErrInvalidKind
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to load user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrRequestNotFound
	}
	if user.Banned {
		return nil, ErrUserBanned
	}

	req := &domain.TransactionRequest{
		ID:     uuid.New(),
		UserID: userID,
		Kind:   kind,
		Amount: amount,
		Proof:  proof,
	}

	if kind == domain.KindDeposit {
		if err := s.transactionRepo.Create(ctx, req); err != nil {
			zap.L().Error("failed to create deposit request", zap.Error(err))
			return nil, err
		}
		return req, nil
	}

	if !validate.IsPayoutNumber(proof) {
		return nil, ErrInvalidPayoutNumber
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		held, err := s.balanceRepo.Hold(ctx, userID, amount)
		if err != nil {
			return err
		}
		if held == nil {
			return ErrInsufficientBalance
		}
		return s.transactionRepo.Create(ctx, req)
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("failed to create withdrawal request", zap.Error(err))
		}
		return nil, err
	}
	return req, nil
}

// Resolve settles a pending request. The status flip is a compare-and-set,
// and any ledger effect commits in the same transaction, so a deposit is
// credited at most once no matter how often the admin retries.
func (s *Service) Resolve(ctx context.Context, id uuid.UUID, decision string) (*domain.TransactionRequest, error) {
	if decision != domain.StatusApproved && decision != domain.StatusRejected {
		return nil, ErrInvalidDecision
	}

	var resolved *domain.TransactionRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		req, err := s.transactionRepo.Resolve(ctx, id, decision)
		if err != nil {
			return err
		}
		if req == nil {
			existing, err := s.transactionRepo.FindByID(ctx, id)
			if err != nil {
				return err
			}
			if existing == nil {
				return ErrRequestNotFound
			}
			return ErrAlreadyResolved
		}

		switch {
		case decision == domain.StatusApproved && req.Kind == domain.KindDeposit:
			balance, err := s.balanceRepo.Adjust(ctx, req.UserID, req.Amount)
			if err != nil {
				return err
			}
			if balance == nil {
				return errors.New("no balance row for deposit credit")
			}
		case decision == domain.StatusRejected && req.Kind == domain.KindWithdraw:
			// Give the held amount back.
			if _, err := s.balanceRepo.ReleaseHold(ctx, req.UserID, req.Amount); err != nil {
				return err
			}
		}

		resolved = req
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrRequestNotFound) && !errors.Is(err, ErrAlreadyResolved) {
			zap.L().Error("failed to resolve transaction request", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("transaction request resolved",
		zap.String("id", resolved.ID.String()),
		zap.String("kind", resolved.Kind),
		zap.String("status", resolved.Status),
	)
	return resolved, nil
}

func (s *Service) GetUserRequests(ctx context.Context, userID int) ([]domain.TransactionRequest, error) {
	requests, err := s.transactionRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch user transactions", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

func (s *Service) GetAllRequests(ctx context.Context) ([]domain.TransactionRequest, error) {
	requests, err := s.transactionRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

func (s *Service) GetPendingRequests(ctx context.Context) ([]domain.TransactionRequest, error) {
	requests, err := s.transactionRepo.ListByStatus(ctx, domain.StatusPending)
	if err != nil {
		zap.L().Error("failed to fetch pending transactions", zap.Error(err))
		return nil, err
	}
	return requests, nil
}
