package participantrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
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

func TestRepository_Exists(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
		SELECT EXISTS (
			SELECT 1 FROM participants WHERE tournament_id = $1 AND user_id = $2
		)`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		exists    bool
	}{
		{
			name: "Participant exists",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"exists"}).AddRow(true)
				mock.ExpectQuery(query).WithArgs(1, 1).WillReturnRows(rows)
			},
			exists: true,
		},
		{
			name: "Participant does not exist",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"exists"}).AddRow(false)
				mock.ExpectQuery(query).WithArgs(1, 1).WillReturnRows(rows)
			},
			exists: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1, 1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			exists, err := repo.Exists(context.Background(), 1, 1)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.exists, exists)
		})
	}
}

func TestRepository_CountByTournament(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Returns participant count", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"count"}).AddRow(12)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM participants WHERE tournament_id = $1`)).
			WithArgs(1).
			WillReturnRows(rows)

		count, err := repo.CountByTournament(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 12, count)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM participants WHERE tournament_id = $1`)).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		count, err := repo.CountByTournament(context.Background(), 1)
		assert.Error(t, err)
		assert.Zero(t, count)
	})
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
		INSERT INTO participants (tournament_id, user_id)
		VALUES ($1, $2)`)

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
	}{
		{
			name: "Successfully inserts participant",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(1, 1).WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectedErr: nil,
		},
		{
			name: "Duplicate pair maps to sentinel",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(1, 1).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectedErr: ErrDuplicateParticipant,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(1, 1).WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Insert(context.Background(), 1, 1)

			if tt.expectedErr == nil {
				assert.NoError(t, err)
			} else if errors.Is(tt.expectedErr, ErrDuplicateParticipant) {
				assert.ErrorIs(t, err, ErrDuplicateParticipant)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRepository_ListByTournament(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
		SELECT u.id, u.username, u.email
		FROM participants p
		JOIN users u ON p.user_id = u.id
		WHERE p.tournament_id = $1
		ORDER BY p.joined_at`)

	t.Run("Returns participants in join order", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "username", "email"}).
			AddRow(1, "gamer42", "gamer42@example.com").
			AddRow(3, "sniper", "sniper@example.com")
		mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)

		participants, err := repo.ListByTournament(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, []domain.ParticipantSummary{
			{UserID: 1, Username: "gamer42", Email: "gamer42@example.com"},
			{UserID: 3, Username: "sniper", Email: "sniper@example.com"},
		}, participants)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))

		participants, err := repo.ListByTournament(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, participants)
	})
}
