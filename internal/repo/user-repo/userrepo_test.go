package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/battlehub/battlehub/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func userRows(user domain.User) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "username", "email", "password_hash", "role", "banned", "matches_played", "total_earnings", "created_at"}).
		AddRow(user.ID, user.Username, user.Email, user.PasswordHash, user.Role, user.Banned, user.MatchesPlayed, user.TotalEarnings, user.CreatedAt)
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	existing := domain.User{
		ID:           1,
		Username:     "gamer42",
		Email:        "gamer42@example.com",
		PasswordHash: "hash",
		Role:         domain.RolePlayer,
		TotalEarnings: decimal.Zero,
		CreatedAt:    now,
	}

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "Existing email returns user",
			email: "gamer42@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, email, password_hash, role, banned, matches_played, total_earnings, created_at FROM users WHERE email = $1`)).
					WithArgs("gamer42@example.com").
					WillReturnRows(userRows(existing))
			},
			result: &existing,
		},
		{
			name:  "Unknown email returns nil",
			email: "nobody@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, email, password_hash, role, banned, matches_played, total_earnings, created_at FROM users WHERE email = $1`)).
					WithArgs("nobody@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			email: "gamer42@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, email, password_hash, role, banned, matches_played, total_earnings, created_at FROM users WHERE email = $1`)).
					WithArgs("gamer42@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	existing := domain.User{
		ID:            7,
		Username:      "gamer42",
		Email:         "gamer42@example.com",
		PasswordHash:  "hash",
		Role:          domain.RoleAdmin,
		TotalEarnings: decimal.Zero,
	}

	t.Run("Existing id returns user", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, email, password_hash, role, banned, matches_played, total_earnings, created_at FROM users WHERE id = $1`)).
			WithArgs(7).
			WillReturnRows(userRows(existing))

		result, err := repo.FindByID(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, &existing, result)
	})

	t.Run("Unknown id returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, email, password_hash, role, banned, matches_played, total_earnings, created_at FROM users WHERE id = $1`)).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.FindByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	query := regexp.QuoteMeta(`
		INSERT INTO users (username, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`)

	t.Run("Successfully creates user", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, now)
		mock.ExpectQuery(query).
			WithArgs("gamer42", "gamer42@example.com", "hash", domain.RolePlayer).
			WillReturnRows(rows)

		user := &domain.User{
			Username:     "gamer42",
			Email:        "gamer42@example.com",
			PasswordHash: "hash",
			Role:         domain.RolePlayer,
		}
		result, err := repo.Create(context.Background(), user)
		assert.NoError(t, err)
		assert.Equal(t, 1, result.ID)
		assert.Equal(t, now, result.CreatedAt)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("gamer42", "gamer42@example.com", "hash", domain.RolePlayer).
			WillReturnError(errors.New("database error"))

		user := &domain.User{
			Username:     "gamer42",
			Email:        "gamer42@example.com",
			PasswordHash: "hash",
			Role:         domain.RolePlayer,
		}
		result, err := repo.Create(context.Background(), user)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
		SELECT u.id, u.username, u.email, u.password_hash, u.role, u.banned,
		       u.matches_played, u.total_earnings, u.created_at,
		       COALESCE(b.current_balance, 0) AS balance
		FROM users u
		LEFT JOIN balances b ON b.user_id = u.id
		ORDER BY u.id`)

	t.Run("Returns users with balances", func(t *testing.T) {
		now := time.Now()
		rows := pgxmock.NewRows([]string{"id", "username", "email", "password_hash", "role", "banned", "matches_played", "total_earnings", "created_at", "balance"}).
			AddRow(1, "gamer42", "gamer42@example.com", "hash", domain.RolePlayer, false, 3, decimal.NewFromInt(200), now, decimal.NewFromInt(100)).
			AddRow(2, "admin", "admin@example.com", "hash", domain.RoleAdmin, false, 0, decimal.Zero, now, decimal.Zero)
		mock.ExpectQuery(query).WillReturnRows(rows)

		users, err := repo.List(context.Background())
		assert.NoError(t, err)
		assert.Len(t, users, 2)
		assert.Equal(t, decimal.NewFromInt(100), users[0].Balance)
		assert.Equal(t, domain.RoleAdmin, users[1].Role)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(errors.New("database error"))

		users, err := repo.List(context.Background())
		assert.Error(t, err)
		assert.Nil(t, users)
	})
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)

	role := domain.RoleAdmin
	banned := true

	tests := []struct {
		name      string
		fields    UpdateFields
		mockSetup func()
		expectErr bool
		updated   bool
	}{
		{
			name:   "Updates role and ban flag",
			fields: UpdateFields{Role: &role, Banned: &banned},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET role = $1, banned = $2 WHERE id = $3`)).
					WithArgs(domain.RoleAdmin, true, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			updated: true,
		},
		{
			name:   "Unknown user updates nothing",
			fields: UpdateFields{Role: &role},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET role = $1 WHERE id = $2`)).
					WithArgs(domain.RoleAdmin, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			updated: false,
		},
		{
			name:    "No fields is a no-op",
			fields:  UpdateFields{},
			mockSetup: func() {},
			updated: false,
		},
		{
			name:   "Database error",
			fields: UpdateFields{Banned: &banned},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET banned = $1 WHERE id = $2`)).
					WithArgs(true, 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			updated, err := repo.Update(context.Background(), 1, tt.fields)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.updated, updated)
		})
	}
}

func TestRepository_IncrementMatches(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Increments counter", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET matches_played = matches_played + 1 WHERE id = $1`)).
			WithArgs(1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.IncrementMatches(context.Background(), 1)
		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET matches_played = matches_played + 1 WHERE id = $1`)).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		err := repo.IncrementMatches(context.Background(), 1)
		assert.Error(t, err)
	})
}
