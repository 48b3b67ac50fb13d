package userservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/battlehub/battlehub/internal/domain"
	userrepo "github.com/battlehub/battlehub/internal/repo/user-repo"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, userID int, fields userrepo.UpdateFields) (bool, error)
}

var (
	ErrUserNotFound = errors.New("user not found")
	ErrNoFields     = errors.New("no fields to update")
	ErrInvalidRole  = errors.New("unknown role")
)

type Service struct {
	userRepo Repo
}

func New(repo Repo) *Service {
	return &Service{
		userRepo: repo,
	}
}

func (s *Service) Get(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

type UpdateParams struct {
	Role          *string
	Banned        *bool
	MatchesPlayed *int
	TotalEarnings *decimal.Decimal
}

// UpdateUser applies the admin partial update. Balance is deliberately not
// editable here; all ledger changes go through joins and settlements.
func (s *Service) UpdateUser(ctx context.Context, userID int, params UpdateParams) error {
	if params.Role == nil && params.Banned == nil && params.MatchesPlayed == nil && params.TotalEarnings == nil {
		return ErrNoFields
	}
	if params.Role != nil && *params.Role != domain.RolePlayer && *params.Role != domain.RoleAdmin {
		return ErrInvalidRole
	}

	updated, err := s.userRepo.Update(ctx, userID, userrepo.UpdateFields{
		Role:          params.Role,
		Banned:        params.Banned,
		MatchesPlayed: params.MatchesPlayed,
		TotalEarnings: params.TotalEarnings,
	})
	if err != nil {
		zap.L().Error("failed to update user", zap.Error(err))
		return err
	}
	if !updated {
		return ErrUserNotFound
	}
	return nil
}
