package repo

import (
	"github.com/battlehub/battlehub/internal/pg"
	balancerepo "github.com/battlehub/battlehub/internal/repo/balance-repo"
	participantrepo "github.com/battlehub/battlehub/internal/repo/participant-repo"
	tournamentrepo "github.com/battlehub/battlehub/internal/repo/tournament-repo"
	transactionrepo "github.com/battlehub/battlehub/internal/repo/transaction-repo"
	userrepo "github.com/battlehub/battlehub/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	BalanceRepo     *balancerepo.Repository
	TournamentRepo  *tournamentrepo.Repository
	ParticipantRepo *participantrepo.Repository
	TransactionRepo *transactionrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		BalanceRepo:     balancerepo.New(conn),
		TournamentRepo:  tournamentrepo.New(conn),
		ParticipantRepo: participantrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
	}
}
