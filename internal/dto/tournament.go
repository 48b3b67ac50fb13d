package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type TournamentDTO struct {
	ID           int             `json:"id" example:"1"`
	Title        string          `json:"title" example:"Erangel Night Cup"`
	Mode         string          `json:"mode" example:"Solo"`
	EntryFee     decimal.Decimal `json:"entry_fee" example:"100"`
	PrizePool    decimal.Decimal `json:"prize_pool" example:"4000"`
	PerKill      decimal.Decimal `json:"per_kill" example:"20"`
	StartTime    time.Time       `json:"start_time" example:"2024-12-09T20:00:00+03:00"`
	TotalSlots   int             `json:"total_slots" example:"48"`
	SlotsFull    int             `json:"slots_full" example:"12"`
	MapName      string          `json:"map_name" example:"Erangel"`
	RoomID       string          `json:"room_id,omitempty" example:"598211"`
	RoomPassword string          `json:"room_password,omitempty" example:"hub77"`
}

type JoinResponseDTO struct {
	Current decimal.Decimal `json:"current" example:"0"`
}

type SaveTournamentRequestDTO struct {
	Title        string          `json:"title" example:"Erangel Night Cup"`
	Mode         string          `json:"mode" example:"Solo"`
	EntryFee     decimal.Decimal `json:"entry_fee" example:"100"`
	PrizePool    decimal.Decimal `json:"prize_pool" example:"4000"`
	PerKill      decimal.Decimal `json:"per_kill" example:"20"`
	StartTime    time.Time       `json:"start_time" example:"2024-12-09T20:00:00+03:00"`
	TotalSlots   int             `json:"total_slots" example:"48"`
	MapName      string          `json:"map_name" example:"Erangel"`
	RoomID       string          `json:"room_id" example:"598211"`
	RoomPassword string          `json:"room_password" example:"hub77"`
}

type ParticipantDTO struct {
	UserID   int    `json:"user_id" example:"1"`
	Username string `json:"username" example:"gamer42"`
	Email    string `json:"email" example:"gamer42@example.com"`
}
