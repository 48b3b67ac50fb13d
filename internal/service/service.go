package service

import (
	"github.com/battlehub/battlehub/internal/pg"
	"github.com/battlehub/battlehub/internal/repo"
	authservice "github.com/battlehub/battlehub/internal/service/authservice"
	tournamentservice "github.com/battlehub/battlehub/internal/service/tournamentservice"
	userservice "github.com/battlehub/battlehub/internal/service/userservice"
	walletservice "github.com/battlehub/battlehub/internal/service/walletservice"

	pkgauth "github.com/battlehub/battlehub/pkg/auth"
)

type Services struct {
	AuthService       *authservice.Service
	TournamentService *tournamentservice.Service
	WalletService     *walletservice.Service
	UserService       *userservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	walletService := walletservice.New(repo.BalanceRepo, repo.TransactionRepo, repo.UserRepo, txManager)
	tournamentService := tournamentservice.New(repo.TournamentRepo, repo.ParticipantRepo, repo.BalanceRepo, repo.UserRepo, txManager)
	authService := authservice.New(repo.UserRepo, walletService, &pkgauth.HashService{}, &pkgauth.JWTService{})
	userService := userservice.New(repo.UserRepo)

	return &Services{
		AuthService:       authService,
		TournamentService: tournamentService,
		WalletService:     walletService,
		UserService:       userService,
	}
}
