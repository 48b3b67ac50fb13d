package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type BalanceResponseDTO struct {
	Current   decimal.Decimal `json:"current" example:"100"`
	Withdrawn decimal.Decimal `json:"withdrawn" example:"42"`
}

type CreateTransactionRequestDTO struct {
	Kind   string          `json:"kind" example:"DEPOSIT"`
	Amount decimal.Decimal `json:"amount" example:"500"`
	Proof  string          `json:"proof" example:"data:image/png;base64,..."`
}

type CreateTransactionResponseDTO struct {
	ID string `json:"id" example:"2b1c2b4e-90df-4e6b-8ffb-4a3d7f2740ad"`
}

type TransactionDTO struct {
	ID         string          `json:"id" example:"2b1c2b4e-90df-4e6b-8ffb-4a3d7f2740ad"`
	UserID     int             `json:"user_id" example:"1"`
	Username   string          `json:"username,omitempty" example:"gamer42"`
	Kind       string          `json:"kind" example:"DEPOSIT"`
	Amount     decimal.Decimal `json:"amount" example:"500"`
	Proof      string          `json:"proof,omitempty"`
	Note       string          `json:"note,omitempty"`
	Status     string          `json:"status" example:"PENDING"`
	CreatedAt  time.Time       `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
	ResolvedAt *time.Time      `json:"resolved_at,omitempty"`
}

type ResolveTransactionRequestDTO struct {
	Decision string `json:"decision" example:"APPROVED"`
}
