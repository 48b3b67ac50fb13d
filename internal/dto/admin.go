package dto

import "github.com/shopspring/decimal"

type UserDTO struct {
	ID            int             `json:"id" example:"1"`
	Username      string          `json:"username" example:"gamer42"`
	Email         string          `json:"email" example:"gamer42@example.com"`
	Role          string          `json:"role" example:"player"`
	Banned        bool            `json:"banned" example:"false"`
	Balance       decimal.Decimal `json:"balance" example:"100"`
	MatchesPlayed int             `json:"matches_played" example:"0"`
	TotalEarnings decimal.Decimal `json:"total_earnings" example:"0"`
}

type UpdateUserRequestDTO struct {
	Role          *string          `json:"role,omitempty" example:"admin"`
	Banned        *bool            `json:"banned,omitempty" example:"false"`
	MatchesPlayed *int             `json:"matches_played,omitempty" example:"10"`
	TotalEarnings *decimal.Decimal `json:"total_earnings,omitempty" example:"1500"`
}
