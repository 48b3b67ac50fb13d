package balancerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/battlehub/battlehub/internal/domain"
	"github.com/battlehub/battlehub/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        SELECT id, user_id, current_balance, withdrawn_total
        FROM balances
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.CurrentBalance, &balance.WithdrawnTotal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) CreateUserBalance(ctx context.Context, userID int, initial decimal.Decimal) (*domain.Balance, error) {
	query := `
        INSERT INTO balances (user_id, current_balance, withdrawn_total)
        VALUES ($1, $2, 0)
        RETURNING id, user_id, current_balance, withdrawn_total
    `
	row := r.db.QueryRow(ctx, query, userID, initial)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.CurrentBalance, &balance.WithdrawnTotal)
	if err != nil {
		zap.L().Error("failed to create user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// Adjust applies delta to the stored balance in a single conditional write.
// The WHERE guard keeps the balance non-negative, so the check and the update
// cannot race. A nil result without error means the guard rejected the debit
// (or the user has no balance row).
func (r *Repository) Adjust(ctx context.Context, userID int, delta decimal.Decimal) (*domain.Balance, error) {
	query := `
		UPDATE balances
		SET current_balance = current_balance + $2
		WHERE user_id = $1 AND current_balance + $2 >= 0
		RETURNING id, user_id, current_balance, withdrawn_total
	`
	row := r.db.QueryRow(ctx, query, userID, delta)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.CurrentBalance, &balance.WithdrawnTotal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to adjust user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// Hold moves amount out of the spendable balance into withdrawn_total.
// Same conditional-write contract as Adjust.
func (r *Repository) Hold(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Balance, error) {
	query := `
		UPDATE balances
		SET current_balance = current_balance - $2, withdrawn_total = withdrawn_total + $2
		WHERE user_id = $1 AND current_balance - $2 >= 0
		RETURNING id, user_id, current_balance, withdrawn_total
	`
	row := r.db.QueryRow(ctx, query, userID, amount)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.CurrentBalance, &balance.WithdrawnTotal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to hold user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// ReleaseHold refunds a held amount back to the spendable balance.
func (r *Repository) ReleaseHold(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Balance, error) {
	query := `
		UPDATE balances
		SET current_balance = current_balance + $2, withdrawn_total = withdrawn_total - $2
		WHERE user_id = $1
		RETURNING id, user_id, current_balance, withdrawn_total
	`
	row := r.db.QueryRow(ctx, query, userID, amount)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.CurrentBalance, &balance.WithdrawnTotal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to release held balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}
