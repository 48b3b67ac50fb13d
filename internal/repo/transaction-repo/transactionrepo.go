package transactionrepo

import (
	"context"
	"errors"

	"github.com/battlehub/battlehub/internal/domain"
	"github.com/battlehub/battlehub/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

func (r *Repository) Create(ctx context.Context, req *domain.TransactionRequest) error {
	query := `
        INSERT INTO transactions (id, user_id, kind, amount, proof)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at, status
    `
	err := r.db.QueryRow(ctx, query, req.ID, req.UserID, req.Kind, req.Amount, req.Proof).
		Scan(&req.CreatedAt, &req.Status)
	if err != nil {
		zap.L().Error("can't save transaction request", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.TransactionRequest, error) {
	query := `
        SELECT id, user_id, kind, amount, proof, note, status, created_at, resolved_at
        FROM transactions
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var req domain.TransactionRequest
	err := row.Scan(&req.ID, &req.UserID, &req.Kind, &req.Amount, &req.Proof, &req.Note,
		&req.Status, &req.CreatedAt, &req.ResolvedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find transaction request", zap.Error(err))
		return nil, err
	}
	return &req, nil
}

// Resolve flips a PENDING request to a terminal status with a compare-and-set
// update. A nil result without error means the request was not PENDING (or
// does not exist), so a retried resolution can never apply twice.
func (r *Repository) Resolve(ctx context.Context, id uuid.UUID, status string) (*domain.TransactionRequest, error) {
	query := `
        UPDATE transactions
        SET status = $2, resolved_at = now()
        WHERE id = $1 AND status = 'PENDING'
        RETURNING id, user_id, kind, amount, proof, note, status, created_at, resolved_at
    `
	row := r.db.QueryRow(ctx, query, id, status)
	var req domain.TransactionRequest
	err := row.Scan(&req.ID, &req.UserID, &req.Kind, &req.Amount, &req.Proof, &req.Note,
		&req.Status, &req.CreatedAt, &req.ResolvedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't resolve transaction request", zap.Error(err))
		return nil, err
	}
	return &req, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.TransactionRequest, error) {
	query := `
        SELECT id, user_id, kind, amount, proof, note, status, created_at, resolved_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list user transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows, false)
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.TransactionRequest, error) {
	query := `
        SELECT t.id, t.user_id, t.kind, t.amount, t.proof, t.note, t.status, t.created_at, t.resolved_at, u.username
        FROM transactions t
        JOIN users u ON t.user_id = u.id
        ORDER BY t.created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows, true)
}

func (r *Repository) ListByStatus(ctx context.Context, status string) ([]domain.TransactionRequest, error) {
	query := `
        SELECT t.id, t.user_id, t.kind, t.amount, t.proof, t.note, t.status, t.created_at, t.resolved_at, u.username
        FROM transactions t
        JOIN users u ON t.user_id = u.id
        WHERE t.status = $1
        ORDER BY t.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		zap.L().Error("can't list transactions by status", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows, true)
}

// FindUnverifiedDeposits returns pending deposits the proof verifier has not
// annotated yet.
func (r *Repository) FindUnverifiedDeposits(ctx context.Context, limit uint32) ([]domain.TransactionRequest, error) {
	query := `
        SELECT id, user_id, kind, amount, proof, note, status, created_at, resolved_at
        FROM transactions
        WHERE status = 'PENDING' AND kind = 'DEPOSIT' AND note = ''
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get deposits for verification", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows, false)
}

func (r *Repository) SetNote(ctx context.Context, id uuid.UUID, note string) error {
	_, err := r.db.Exec(ctx, "UPDATE transactions SET note = $2 WHERE id = $1", id, note)
	if err != nil {
		zap.L().Error("can't set transaction note", zap.Error(err))
		return err
	}
	return nil
}

func scanRequests(rows pgx.Rows, withUsername bool) ([]domain.TransactionRequest, error) {
	var requests []domain.TransactionRequest
	for rows.Next() {
		var req domain.TransactionRequest
		dest := []any{&req.ID, &req.UserID, &req.Kind, &req.Amount, &req.Proof, &req.Note,
			&req.Status, &req.CreatedAt, &req.ResolvedAt}
		if withUsername {
			dest = append(dest, &req.Username)
		}
		if err := rows.Scan(dest...); err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}
