package handlers

import (
	"net/http"

	_ "github.com/battlehub/battlehub/docs"
	adminhandlers "github.com/battlehub/battlehub/internal/handlers/admin"
	authhandlers "github.com/battlehub/battlehub/internal/handlers/auth"
	tournamenthandlers "github.com/battlehub/battlehub/internal/handlers/tournaments"
	wallethandlers "github.com/battlehub/battlehub/internal/handlers/wallet"
	"github.com/battlehub/battlehub/internal/service"
	"github.com/battlehub/battlehub/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type TournamentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	My(w http.ResponseWriter, r *http.Request)
	Join(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	CreateTransaction(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
	ResolveTransaction(w http.ResponseWriter, r *http.Request)
	CreateTournament(w http.ResponseWriter, r *http.Request)
	UpdateTournament(w http.ResponseWriter, r *http.Request)
	DeleteTournament(w http.ResponseWriter, r *http.Request)
	ListParticipants(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	TournamentHandler TournamentHandler
	WalletHandler     WalletHandler
	AdminHandler      AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		TournamentHandler: tournamenthandlers.New(s.TournamentService),
		WalletHandler:     wallethandlers.New(s.WalletService),
		AdminHandler:      adminhandlers.New(s.UserService, s.WalletService, s.TournamentService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/tournaments", func(r chi.Router) {
				r.Get("/", h.TournamentHandler.List)
				r.Get("/my", h.TournamentHandler.My)
				r.Post("/{id}/join", h.TournamentHandler.Join)
			})
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/balance", h.WalletHandler.GetBalance)
				r.Post("/transactions", h.WalletHandler.CreateTransaction)
				r.Get("/transactions", h.WalletHandler.GetTransactions)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.AuthMiddleware, auth.AdminMiddleware)
			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.AdminHandler.ListUsers)
				r.Post("/{id}", h.AdminHandler.UpdateUser)
			})
			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", h.AdminHandler.ListTransactions)
				r.Post("/{id}/resolve", h.AdminHandler.ResolveTransaction)
			})
			r.Route("/tournaments", func(r chi.Router) {
				r.Post("/", h.AdminHandler.CreateTournament)
				r.Put("/{id}", h.AdminHandler.UpdateTournament)
				r.Delete("/{id}", h.AdminHandler.DeleteTournament)
				r.Get("/{id}/participants", h.AdminHandler.ListParticipants)
			})
		})
	})

	return r
}
