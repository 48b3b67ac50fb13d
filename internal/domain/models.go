package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	RolePlayer = "player"
	RoleAdmin  = "admin"
)

const (
	KindDeposit  = "DEPOSIT"
	KindWithdraw = "WITHDRAW"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type User struct {
	ID            int             `db:"id"`
	Username      string          `db:"username"`
	Email         string          `db:"email"`
	PasswordHash  string          `db:"password_hash"`
	Role          string          `db:"role"`
	Banned        bool            `db:"banned"`
	MatchesPlayed int             `db:"matches_played"`
	TotalEarnings decimal.Decimal `db:"total_earnings"`
	CreatedAt     time.Time       `db:"created_at"`

	// Balance is populated by admin listings only; the balances row is
	// authoritative.
	Balance decimal.Decimal `db:"balance"`
}

type Balance struct {
	ID             int             `db:"id"`
	UserID         int             `db:"user_id"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	WithdrawnTotal decimal.Decimal `db:"withdrawn_total"`
}

type Tournament struct {
	ID           int             `db:"id"`
	Title        string          `db:"title"`
	Mode         string          `db:"mode"`
	EntryFee     decimal.Decimal `db:"entry_fee"`
	PrizePool    decimal.Decimal `db:"prize_pool"`
	PerKill      decimal.Decimal `db:"per_kill"`
	StartTime    time.Time       `db:"start_time"`
	TotalSlots   int             `db:"total_slots"`
	MapName      string          `db:"map_name"`
	RoomID       string          `db:"room_id"`
	RoomPassword string          `db:"room_password"`
	CreatedAt    time.Time       `db:"created_at"`

	// SlotsFull is derived from participants at read time, never stored.
	SlotsFull int `db:"slots_full"`
}

type Participant struct {
	ID           int       `db:"id"`
	TournamentID int       `db:"tournament_id"`
	UserID       int       `db:"user_id"`
	JoinedAt     time.Time `db:"joined_at"`
}

// ParticipantSummary is the admin view of one occupied slot.
type ParticipantSummary struct {
	UserID   int    `db:"user_id"`
	Username string `db:"username"`
	Email    string `db:"email"`
}

type TransactionRequest struct {
	ID         uuid.UUID       `db:"id"`
	UserID     int             `db:"user_id"`
	Kind       string          `db:"kind"`
	Amount     decimal.Decimal `db:"amount"`
	Proof      string          `db:"proof"`
	Note       string          `db:"note"`
	Status     string          `db:"status"`
	CreatedAt  time.Time       `db:"created_at"`
	ResolvedAt *time.Time      `db:"resolved_at"`

	// Username is populated by admin listings only.
	Username string `db:"username"`
}
