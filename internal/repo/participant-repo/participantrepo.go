package participantrepo

import (
	"context"
	"errors"

	"github.com/battlehub/battlehub/internal/domain"
	"github.com/battlehub/battlehub/internal/pg"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolationCode = "23505"

// ErrDuplicateParticipant reports that the (tournament, user) pair already
// exists. The unique constraint, not a pre-check, is what enforces this.
var ErrDuplicateParticipant = errors.New("participant already exists")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Exists(ctx context.Context, tournamentID, userID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM participants WHERE tournament_id = $1 AND user_id = $2
        )
    `
	var exists bool
	err := r.db.QueryRow(ctx, query, tournamentID, userID).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check participation", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) CountByTournament(ctx context.Context, tournamentID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM participants WHERE tournament_id = $1", tournamentID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count participants", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) Insert(ctx context.Context, tournamentID, userID int) error {
	query := `
        INSERT INTO participants (tournament_id, user_id)
        VALUES ($1, $2)
    `
	_, err := r.db.Exec(ctx, query, tournamentID, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrDuplicateParticipant
		}
		zap.L().Error("can't insert participant", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByTournament(ctx context.Context, tournamentID int) ([]domain.ParticipantSummary, error) {
	query := `
        SELECT u.id, u.username, u.email
        FROM participants p
        JOIN users u ON p.user_id = u.id
        WHERE p.tournament_id = $1
        ORDER BY p.joined_at
    `
	rows, err := r.db.Query(ctx, query, tournamentID)
	if err != nil {
		zap.L().Error("can't list participants", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var participants []domain.ParticipantSummary
	for rows.Next() {
		var p domain.ParticipantSummary
		if err := rows.Scan(&p.UserID, &p.Username, &p.Email); err != nil {
			zap.L().Error("can't scan participant row", zap.Error(err))
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, nil
}
