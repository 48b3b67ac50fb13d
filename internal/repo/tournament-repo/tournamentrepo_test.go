package tournamentrepo

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

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
		SELECT t.id, t.title, t.mode, t.entry_fee, t.prize_pool, t.per_kill, t.start_time,
		       t.total_slots, t.map_name, t.room_id, t.room_password, t.created_at,
		       (SELECT COUNT(*) FROM participants p WHERE p.tournament_id = t.id) AS slots_full
		FROM tournaments t
		ORDER BY t.id DESC`)

	t.Run("Returns tournaments with occupancy", func(t *testing.T) {
		now := time.Now()
		rows := pgxmock.NewRows([]string{"id", "title", "mode", "entry_fee", "prize_pool", "per_kill", "start_time", "total_slots", "map_name", "room_id", "room_password", "created_at", "slots_full"}).
			AddRow(2, "Erangel Night Cup", "Solo", decimal.NewFromInt(100), decimal.NewFromInt(4000), decimal.NewFromInt(20), now, 48, "Erangel", "", "", now, 12).
			AddRow(1, "Miramar Duo Rush", "Duo", decimal.NewFromInt(50), decimal.NewFromInt(2000), decimal.NewFromInt(10), now, 24, "Miramar", "598211", "hub77", now, 24)
		mock.ExpectQuery(query).WillReturnRows(rows)

		tournaments, err := repo.List(context.Background())
		assert.NoError(t, err)
		assert.Len(t, tournaments, 2)
		assert.Equal(t, 12, tournaments[0].SlotsFull)
		assert.Equal(t, "hub77", tournaments[1].RoomPassword)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(errors.New("database error"))

		tournaments, err := repo.List(context.Background())
		assert.Error(t, err)
		assert.Nil(t, tournaments)
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
		SELECT t.id, t.title, t.mode, t.entry_fee, t.prize_pool, t.per_kill, t.start_time,
		       t.total_slots, t.map_name, t.room_id, t.room_password, t.created_at,
		       (SELECT COUNT(*) FROM participants p WHERE p.tournament_id = t.id) AS slots_full
		FROM tournaments t
		WHERE t.id = $1`)

	t.Run("Existing id returns tournament", func(t *testing.T) {
		now := time.Now()
		rows := pgxmock.NewRows([]string{"id", "title", "mode", "entry_fee", "prize_pool", "per_kill", "start_time", "total_slots", "map_name", "room_id", "room_password", "created_at", "slots_full"}).
			AddRow(1, "Erangel Night Cup", "Solo", decimal.NewFromInt(100), decimal.NewFromInt(4000), decimal.NewFromInt(20), now, 48, "Erangel", "", "", now, 3)
		mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)

		tournament, err := repo.FindByID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 3, tournament.SlotsFull)
		assert.Equal(t, 48, tournament.TotalSlots)
	})

	t.Run("Unknown id returns nil", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(99).WillReturnError(pgx.ErrNoRows)

		tournament, err := repo.FindByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, tournament)
	})
}

func TestRepository_FindByIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
		SELECT id, title, mode, entry_fee, prize_pool, per_kill, start_time, total_slots, map_name, room_id, room_password, created_at
		FROM tournaments
		WHERE id = $1
		FOR UPDATE`)

	t.Run("Locks and returns tournament", func(t *testing.T) {
		now := time.Now()
		rows := pgxmock.NewRows([]string{"id", "title", "mode", "entry_fee", "prize_pool", "per_kill", "start_time", "total_slots", "map_name", "room_id", "room_password", "created_at"}).
			AddRow(1, "Erangel Night Cup", "Solo", decimal.NewFromInt(100), decimal.NewFromInt(4000), decimal.NewFromInt(20), now, 48, "Erangel", "", "", now)
		mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)

		tournament, err := repo.FindByIDForUpdate(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 1, tournament.ID)
	})

	t.Run("Unknown id returns nil", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(99).WillReturnError(pgx.ErrNoRows)

		tournament, err := repo.FindByIDForUpdate(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, tournament)
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	query := regexp.QuoteMeta(`
		INSERT INTO tournaments (title, mode, entry_fee, prize_pool, per_kill, start_time, total_slots, map_name, room_id, room_password)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`)

	tournament := &domain.Tournament{
		Title:      "Erangel Night Cup",
		Mode:       "Solo",
		EntryFee:   decimal.NewFromInt(100),
		PrizePool:  decimal.NewFromInt(4000),
		PerKill:    decimal.NewFromInt(20),
		StartTime:  now,
		TotalSlots: 48,
		MapName:    "Erangel",
	}

	t.Run("Successfully creates tournament", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(5, now)
		mock.ExpectQuery(query).
			WithArgs("Erangel Night Cup", "Solo", decimal.NewFromInt(100), decimal.NewFromInt(4000),
				decimal.NewFromInt(20), now, 48, "Erangel", "", "").
			WillReturnRows(rows)

		created, err := repo.Create(context.Background(), tournament)
		assert.NoError(t, err)
		assert.Equal(t, 5, created.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("Erangel Night Cup", "Solo", decimal.NewFromInt(100), decimal.NewFromInt(4000),
				decimal.NewFromInt(20), now, 48, "Erangel", "", "").
			WillReturnError(errors.New("database error"))

		created, err := repo.Create(context.Background(), tournament)
		assert.Error(t, err)
		assert.Nil(t, created)
	})
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	query := regexp.QuoteMeta(`
		UPDATE tournaments
		SET title = $1, mode = $2, entry_fee = $3, prize_pool = $4, per_kill = $5,
		    start_time = $6, total_slots = $7, map_name = $8, room_id = $9, room_password = $10
		WHERE id = $11`)

	tournament := &domain.Tournament{
		ID:           1,
		Title:        "Erangel Night Cup",
		Mode:         "Solo",
		EntryFee:     decimal.NewFromInt(100),
		PrizePool:    decimal.NewFromInt(4000),
		PerKill:      decimal.NewFromInt(20),
		StartTime:    now,
		TotalSlots:   48,
		MapName:      "Erangel",
		RoomID:       "598211",
		RoomPassword: "hub77",
	}

	t.Run("Successfully updates tournament", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("Erangel Night Cup", "Solo", decimal.NewFromInt(100), decimal.NewFromInt(4000),
				decimal.NewFromInt(20), now, 48, "Erangel", "598211", "hub77", 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		updated, err := repo.Update(context.Background(), tournament)
		assert.NoError(t, err)
		assert.True(t, updated)
	})

	t.Run("Unknown id updates nothing", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("Erangel Night Cup", "Solo", decimal.NewFromInt(100), decimal.NewFromInt(4000),
				decimal.NewFromInt(20), now, 48, "Erangel", "598211", "hub77", 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		updated, err := repo.Update(context.Background(), tournament)
		assert.NoError(t, err)
		assert.False(t, updated)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Deletes tournament", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM tournaments WHERE id = $1`)).
			WithArgs(1).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		deleted, err := repo.Delete(context.Background(), 1)
		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("Unknown id deletes nothing", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM tournaments WHERE id = $1`)).
			WithArgs(99).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		deleted, err := repo.Delete(context.Background(), 99)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestRepository_FindJoinedIDs(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
		SELECT tournament_id
		FROM participants
		WHERE user_id = $1
		ORDER BY tournament_id DESC`)

	t.Run("Returns joined ids", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"tournament_id"}).AddRow(3).AddRow(1)
		mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)

		ids, err := repo.FindJoinedIDs(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, []int{3, 1}, ids)
	})

	t.Run("No joins returns empty", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"tournament_id"})
		mock.ExpectQuery(query).WithArgs(2).WillReturnRows(rows)

		ids, err := repo.FindJoinedIDs(context.Background(), 2)
		assert.NoError(t, err)
		assert.Empty(t, ids)
	})
}
