package tournamentservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/battlehub/battlehub/internal/domain"
	"github.com/battlehub/battlehub/internal/pg"
	participantrepo "github.com/battlehub/battlehub/internal/repo/participant-repo"
	"go.uber.org/zap"
)

type TournamentRepo interface {
	List(ctx context.Context) ([]domain.Tournament, error)
	FindByID(ctx context.Context, tournamentID int) (*domain.Tournament, error)
	FindByIDForUpdate(ctx context.Context, tournamentID int) (*domain.Tournament, error)
	Create(ctx context.Context, t *domain.Tournament) (*domain.Tournament, error)
	Update(ctx context.Context, t *domain.Tournament) (bool, error)
	Delete(ctx context.Context, tournamentID int) (bool, error)
	FindJoinedIDs(ctx context.Context, userID int) ([]int, error)
}

type ParticipantRepo interface {
	Exists(ctx context.Context, tournamentID, userID int) (bool, error)
	CountByTournament(ctx context.Context, tournamentID int) (int, error)
	Insert(ctx context.Context, tournamentID, userID int) error
	ListByTournament(ctx context.Context, tournamentID int) ([]domain.ParticipantSummary, error)
}

type BalanceRepo interface {
	Adjust(ctx context.Context, userID int, delta decimal.Decimal) (*domain.Balance, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	IncrementMatches(ctx context.Context, userID int) error
}

var (
	ErrTournamentNotFound  = errors.New("tournament not found")
	ErrTournamentFull      = errors.New("tournament is full")
	ErrAlreadyJoined       = errors.New("already joined this tournament")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUserBanned          = errors.New("user is banned")
)

type Service struct {
	tournamentRepo  TournamentRepo
	participantRepo ParticipantRepo
	balanceRepo     BalanceRepo
	userRepo        UserRepo
	txManager       pg.TXManager
}

func New(tournamentRepo TournamentRepo, participantRepo ParticipantRepo, balanceRepo BalanceRepo, userRepo UserRepo, txManager pg.TXManager) *Service {
	return &Service{
		tournamentRepo:  tournamentRepo,
		participantRepo: participantRepo,
		balanceRepo:     balanceRepo,
		userRepo:        userRepo,
		txManager:       txManager,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Tournament, error) {
	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list tournaments", zap.Error(err))
		return nil, err
	}
	return tournaments, nil
}

func (s *Service) Get(ctx context.Context, tournamentID int) (*domain.Tournament, error) {
	tournament, err := s.tournamentRepo.FindByID(ctx, tournamentID)
	if err != nil {
		zap.L().Error("failed to get tournament", zap.Error(err))
		return nil, err
	}
	if tournament == nil {
		return nil, ErrTournamentNotFound
	}
	return tournament, nil
}

func (s *Service) MyTournaments(ctx context.Context, userID int) ([]int, error) {
	ids, err := s.tournamentRepo.FindJoinedIDs(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get joined tournaments", zap.Error(err))
		return nil, err
	}
	return ids, nil
}

// Join charges the entry fee and occupies a slot as one atomic unit. The
// locked tournament row serializes concurrent joins, so the capacity check
// always sees a settled participant count; the unique pair constraint and
// the conditional debit re-validate the remaining preconditions inside the
// same transaction. Any failure rolls everything back.
func (s *Service) Join(ctx context.Context, userID, tournamentID int) (*domain.Balance, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to load user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrTournamentNotFound
	}
	if user.Banned {
		return nil, ErrUserBanned
	}

	var newBalance *domain.Balance
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		tournament, err := s.tournamentRepo.FindByIDForUpdate(ctx, tournamentID)
		if err != nil {
			return err
		}
		if tournament == nil {
			return ErrTournamentNotFound
		}

		count, err := s.participantRepo.CountByTournament(ctx, tournamentID)
		if err != nil {
			return err
		}
		if count >= tournament.TotalSlots {
			return ErrTournamentFull
		}

		joined, err := s.participantRepo.Exists(ctx, tournamentID, userID)
		if err != nil {
			return err
		}
		if joined {
			return ErrAlreadyJoined
		}

		if err := s.participantRepo.Insert(ctx, tournamentID, userID); err != nil {
			if errors.Is(err, participantrepo.ErrDuplicateParticipant) {
				return ErrAlreadyJoined
			}
			return err
		}

		balance, err := s.balanceRepo.Adjust(ctx, userID, tournament.EntryFee.Neg())
		if err != nil {
			return err
		}
		if balance == nil {
			return ErrInsufficientBalance
		}
		newBalance = balance

		return s.userRepo.IncrementMatches(ctx, userID)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrTournamentNotFound),
			errors.Is(err, ErrTournamentFull),
			errors.Is(err, ErrAlreadyJoined),
			errors.Is(err, ErrInsufficientBalance):
		default:
			zap.L().Error("failed to join tournament", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("user joined tournament",
		zap.Int("userID", userID),
		zap.Int("tournamentID", tournamentID),
	)
	return newBalance, nil
}

func (s *Service) Create(ctx context.Context, t *domain.Tournament) (*domain.Tournament, error) {
	created, err := s.tournamentRepo.Create(ctx, t)
	if err != nil {
		zap.L().Error("failed to create tournament", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, t *domain.Tournament) error {
	updated, err := s.tournamentRepo.Update(ctx, t)
	if err != nil {
		zap.L().Error("failed to update tournament", zap.Error(err))
		return err
	}
	if !updated {
		return ErrTournamentNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, tournamentID int) error {
	deleted, err := s.tournamentRepo.Delete(ctx, tournamentID)
	if err != nil {
		zap.L().Error("failed to delete tournament", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrTournamentNotFound
	}
	return nil
}

func (s *Service) Participants(ctx context.Context, tournamentID int) ([]domain.ParticipantSummary, error) {
	tournament, err := s.tournamentRepo.FindByID(ctx, tournamentID)
	if err != nil {
		zap.L().Error("failed to get tournament", zap.Error(err))
		return nil, err
	}
	if tournament == nil {
		return nil, ErrTournamentNotFound
	}

	participants, err := s.participantRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		zap.L().Error("failed to list participants", zap.Error(err))
		return nil, err
	}
	return participants, nil
}
