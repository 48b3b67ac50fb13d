package tournamentrepo

import (
	"context"
	"errors"

	"github.com/battlehub/battlehub/internal/domain"
	"github.com/battlehub/battlehub/internal/pg"
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

const tournamentColumns = "id, title, mode, entry_fee, prize_pool, per_kill, start_time, total_slots, map_name, room_id, room_password, created_at"

// List returns tournaments newest first. Occupancy is counted from
// participants at read time so it can never drift from actual joins.
func (r *Repository) List(ctx context.Context) ([]domain.Tournament, error) {
	query := `
        SELECT t.id, t.title, t.mode, t.entry_fee, t.prize_pool, t.per_kill, t.start_time,
               t.total_slots, t.map_name, t.room_id, t.room_password, t.created_at,
               (SELECT COUNT(*) FROM participants p WHERE p.tournament_id = t.id) AS slots_full
        FROM tournaments t
        ORDER BY t.id DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list tournaments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tournaments []domain.Tournament
	for rows.Next() {
		var t domain.Tournament
		err := rows.Scan(&t.ID, &t.Title, &t.Mode, &t.EntryFee, &t.PrizePool, &t.PerKill, &t.StartTime,
			&t.TotalSlots, &t.MapName, &t.RoomID, &t.RoomPassword, &t.CreatedAt, &t.SlotsFull)
		if err != nil {
			zap.L().Error("can't scan tournament row", zap.Error(err))
			return nil, err
		}
		tournaments = append(tournaments, t)
	}
	return tournaments, nil
}

func (r *Repository) FindByID(ctx context.Context, tournamentID int) (*domain.Tournament, error) {
	query := `
        SELECT t.id, t.title, t.mode, t.entry_fee, t.prize_pool, t.per_kill, t.start_time,
               t.total_slots, t.map_name, t.room_id, t.room_password, t.created_at,
               (SELECT COUNT(*) FROM participants p WHERE p.tournament_id = t.id) AS slots_full
        FROM tournaments t
        WHERE t.id = $1
    `
	row := r.db.QueryRow(ctx, query, tournamentID)
	var t domain.Tournament
	err := row.Scan(&t.ID, &t.Title, &t.Mode, &t.EntryFee, &t.PrizePool, &t.PerKill, &t.StartTime,
		&t.TotalSlots, &t.MapName, &t.RoomID, &t.RoomPassword, &t.CreatedAt, &t.SlotsFull)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find tournament", zap.Error(err))
		return nil, err
	}
	return &t, nil
}

// FindByIDForUpdate locks the tournament row for the rest of the enclosing
// transaction. The lock is the serialization point for capacity checks.
func (r *Repository) FindByIDForUpdate(ctx context.Context, tournamentID int) (*domain.Tournament, error) {
	query := `
        SELECT ` + tournamentColumns + `
        FROM tournaments
        WHERE id = $1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, tournamentID)
	var t domain.Tournament
	err := row.Scan(&t.ID, &t.Title, &t.Mode, &t.EntryFee, &t.PrizePool, &t.PerKill, &t.StartTime,
		&t.TotalSlots, &t.MapName, &t.RoomID, &t.RoomPassword, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock tournament", zap.Error(err))
		return nil, err
	}
	return &t, nil
}

func (r *Repository) Create(ctx context.Context, t *domain.Tournament) (*domain.Tournament, error) {
	query := `
        INSERT INTO tournaments (title, mode, entry_fee, prize_pool, per_kill, start_time, total_slots, map_name, room_id, room_password)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, t.Title, t.Mode, t.EntryFee, t.PrizePool, t.PerKill,
		t.StartTime, t.TotalSlots, t.MapName, t.RoomID, t.RoomPassword).
		Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		zap.L().Error("can't save tournament", zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (r *Repository) Update(ctx context.Context, t *domain.Tournament) (bool, error) {
	query := `
        UPDATE tournaments
        SET title = $1, mode = $2, entry_fee = $3, prize_pool = $4, per_kill = $5,
            start_time = $6, total_slots = $7, map_name = $8, room_id = $9, room_password = $10
        WHERE id = $11
    `
	tag, err := r.db.Exec(ctx, query, t.Title, t.Mode, t.EntryFee, t.PrizePool, t.PerKill,
		t.StartTime, t.TotalSlots, t.MapName, t.RoomID, t.RoomPassword, t.ID)
	if err != nil {
		zap.L().Error("can't update tournament", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Delete(ctx context.Context, tournamentID int) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM tournaments WHERE id = $1", tournamentID)
	if err != nil {
		zap.L().Error("can't delete tournament", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) FindJoinedIDs(ctx context.Context, userID int) ([]int, error) {
	query := `
        SELECT tournament_id
        FROM participants
        WHERE user_id = $1
        ORDER BY tournament_id DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get joined tournaments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan joined tournament id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
