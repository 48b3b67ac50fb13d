package userrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/battlehub/battlehub/internal/domain"
	"github.com/battlehub/battlehub/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
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

const userColumns = "id, username, email, password_hash, role, banned, matches_played, total_earnings, created_at"

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role,
		&user.Banned, &user.MatchesPlayed, &user.TotalEarnings, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	row := repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", userID)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) List(ctx context.Context) ([]domain.User, error) {
	query := `
        SELECT u.id, u.username, u.email, u.password_hash, u.role, u.banned,
               u.matches_played, u.total_earnings, u.created_at,
               COALESCE(b.current_balance, 0) AS balance
        FROM users u
        LEFT JOIN balances b ON b.user_id = u.id
        ORDER BY u.id
    `
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role,
			&user.Banned, &user.MatchesPlayed, &user.TotalEarnings, &user.CreatedAt, &user.Balance)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// UpdateFields is the admin partial update; nil fields are left untouched.
type UpdateFields struct {
	Role          *string
	Banned        *bool
	MatchesPlayed *int
	TotalEarnings *decimal.Decimal
}

func (repo *Repository) Update(ctx context.Context, userID int, fields UpdateFields) (bool, error) {
	var sets []string
	var args []any

	if fields.Role != nil {
		args = append(args, *fields.Role)
		sets = append(sets, fmt.Sprintf("role = $%d", len(args)))
	}
	if fields.Banned != nil {
		args = append(args, *fields.Banned)
		sets = append(sets, fmt.Sprintf("banned = $%d", len(args)))
	}
	if fields.MatchesPlayed != nil {
		args = append(args, *fields.MatchesPlayed)
		sets = append(sets, fmt.Sprintf("matches_played = $%d", len(args)))
	}
	if fields.TotalEarnings != nil {
		args = append(args, *fields.TotalEarnings)
		sets = append(sets, fmt.Sprintf("total_earnings = $%d", len(args)))
	}
	if len(sets) == 0 {
		return false, nil
	}

	args = append(args, userID)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	tag, err := repo.db.Exec(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't update user", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (repo *Repository) IncrementMatches(ctx context.Context, userID int) error {
	_, err := repo.db.Exec(ctx, "UPDATE users SET matches_played = matches_played + 1 WHERE id = $1", userID)
	if err != nil {
		zap.L().Error("can't increment matches played", zap.Error(err))
		return err
	}
	return nil
}
