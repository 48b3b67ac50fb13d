package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/battlehub/battlehub/internal/domain"
	"github.com/battlehub/battlehub/internal/dto"
	tournamentservice "github.com/battlehub/battlehub/internal/service/tournamentservice"
	userservice "github.com/battlehub/battlehub/internal/service/userservice"
	walletservice "github.com/battlehub/battlehub/internal/service/walletservice"
	"github.com/battlehub/battlehub/pkg/utils"
)

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID int, params userservice.UpdateParams) error
}

type WalletService interface {
	GetAllRequests(ctx context.Context) ([]domain.TransactionRequest, error)
	GetPendingRequests(ctx context.Context) ([]domain.TransactionRequest, error)
	Resolve(ctx context.Context, id uuid.UUID, decision string) (*domain.TransactionRequest, error)
}

type TournamentService interface {
	Create(ctx context.Context, t *domain.Tournament) (*domain.Tournament, error)
	Update(ctx context.Context, t *domain.Tournament) error
	Delete(ctx context.Context, tournamentID int) error
	Participants(ctx context.Context, tournamentID int) ([]domain.ParticipantSummary, error)
}

type AdminHandler struct {
	userService       UserService
	walletService     WalletService
	tournamentService TournamentService
}

func New(userService UserService, walletService WalletService, tournamentService TournamentService) *AdminHandler {
	return &AdminHandler{
		userService:       userService,
		walletService:     walletService,
		tournamentService: tournamentService,
	}
}

// ListUsers godoc
//
//	@Summary		List users
//	@Description	Get all users with their balances.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.UserDTO		"Users"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not an admin"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	response := make([]dto.UserDTO, len(users))
	for i, user := range users {
		response[i] = dto.UserDTO{
			ID:            user.ID,
			Username:      user.Username,
			Email:         user.Email,
			Role:          user.Role,
			Banned:        user.Banned,
			Balance:       user.Balance,
			MatchesPlayed: user.MatchesPlayed,
			TotalEarnings: user.TotalEarnings,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateUser godoc
//
//	@Summary		Update a user
//	@Description	Partially update a user's role, ban flag or display stats. The wallet balance is not editable here.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"User id"
//	@Param			request	body		dto.UpdateUserRequestDTO	true	"Fields to update"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id} [post]
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.UpdateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.userService.UpdateUser(r.Context(), userID, userservice.UpdateParams{
		Role:          req.Role,
		Banned:        req.Banned,
		MatchesPlayed: req.MatchesPlayed,
		TotalEarnings: req.TotalEarnings,
	})
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrNoFields), errors.Is(err, userservice.ErrInvalidRole):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, userservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "User updated"})
}

// ListTransactions godoc
//
//	@Summary		List transaction requests
//	@Description	Get all transaction requests, or only pending ones with ?status=pending.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string			false	"Filter: pending"
//	@Success		200		{array}		dto.TransactionDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/transactions [get]
func (h *AdminHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	var requests []domain.TransactionRequest
	var err error

	if r.URL.Query().Get("status") == "pending" {
		requests, err = h.walletService.GetPendingRequests(r.Context())
	} else {
		requests, err = h.walletService.GetAllRequests(r.Context())
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	response := make([]dto.TransactionDTO, len(requests))
	for i, req := range requests {
		response[i] = dto.TransactionDTO{
			ID:         req.ID.String(),
			UserID:     req.UserID,
			Username:   req.Username,
			Kind:       req.Kind,
			Amount:     req.Amount,
			Proof:      req.Proof,
			Note:       req.Note,
			Status:     req.Status,
			CreatedAt:  req.CreatedAt,
			ResolvedAt: req.ResolvedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ResolveTransaction godoc
//
//	@Summary		Approve or reject a transaction request
//	@Description	Flip a PENDING request to APPROVED or REJECTED. An approved deposit credits the wallet exactly once; retries get a conflict.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Request id"
//	@Param			request	body		dto.ResolveTransactionRequestDTO	true	"Decision"
//	@Success		200		{object}	dto.TransactionDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"Request not found"
//	@Failure		409		{object}	utils.Response	"Already resolved"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/transactions/{id}/resolve [post]
func (h *AdminHandler) ResolveTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	var req dto.ResolveTransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resolved, err := h.walletService.Resolve(r.Context(), id, req.Decision)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInvalidDecision):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, walletservice.ErrRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, walletservice.ErrAlreadyResolved):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionDTO{
		ID:         resolved.ID.String(),
		UserID:     resolved.UserID,
		Kind:       resolved.Kind,
		Amount:     resolved.Amount,
		Status:     resolved.Status,
		CreatedAt:  resolved.CreatedAt,
		ResolvedAt: resolved.ResolvedAt,
	})
}

// CreateTournament godoc
//
//	@Summary		Create a tournament
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SaveTournamentRequestDTO	true	"Tournament definition"
//	@Success		200		{object}	dto.TournamentDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/tournaments [post]
func (h *AdminHandler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveTournamentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TotalSlots <= 0 || req.EntryFee.IsNegative() {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid tournament definition")
		return
	}

	created, err := h.tournamentService.Create(r.Context(), toTournament(req, 0))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.TournamentDTO{
		ID:           created.ID,
		Title:        created.Title,
		Mode:         created.Mode,
		EntryFee:     created.EntryFee,
		PrizePool:    created.PrizePool,
		PerKill:      created.PerKill,
		StartTime:    created.StartTime,
		TotalSlots:   created.TotalSlots,
		MapName:      created.MapName,
		RoomID:       created.RoomID,
		RoomPassword: created.RoomPassword,
	})
}

// UpdateTournament godoc
//
//	@Summary		Update a tournament
//	@Description	Replace a tournament's definition, including room credentials set before start.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Tournament id"
//	@Param			request	body		dto.SaveTournamentRequestDTO	true	"Tournament definition"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"Tournament not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/tournaments/{id} [put]
func (h *AdminHandler) UpdateTournament(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tournament id")
		return
	}

	var req dto.SaveTournamentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TotalSlots <= 0 || req.EntryFee.IsNegative() {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid tournament definition")
		return
	}

	if err := h.tournamentService.Update(r.Context(), toTournament(req, tournamentID)); err != nil {
		if errors.Is(err, tournamentservice.ErrTournamentNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Tournament updated"})
}

// DeleteTournament godoc
//
//	@Summary		Delete a tournament
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Tournament id"
//	@Success		200	{object}	utils.Response
//	@Failure		404	{object}	utils.Response	"Tournament not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/tournaments/{id} [delete]
func (h *AdminHandler) DeleteTournament(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tournament id")
		return
	}

	if err := h.tournamentService.Delete(r.Context(), tournamentID); err != nil {
		if errors.Is(err, tournamentservice.ErrTournamentNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Tournament deleted"})
}

// ListParticipants godoc
//
//	@Summary		List tournament participants
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Tournament id"
//	@Success		200	{array}		dto.ParticipantDTO
//	@Failure		404	{object}	utils.Response	"Tournament not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/tournaments/{id}/participants [get]
func (h *AdminHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tournament id")
		return
	}

	participants, err := h.tournamentService.Participants(r.Context(), tournamentID)
	if err != nil {
		if errors.Is(err, tournamentservice.ErrTournamentNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ParticipantDTO, len(participants))
	for i, p := range participants {
		response[i] = dto.ParticipantDTO{
			UserID:   p.UserID,
			Username: p.Username,
			Email:    p.Email,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toTournament(req dto.SaveTournamentRequestDTO, id int) *domain.Tournament {
	return &domain.Tournament{
		ID:           id,
		Title:        req.Title,
		Mode:         req.Mode,
		EntryFee:     req.EntryFee,
		PrizePool:    req.PrizePool,
		PerKill:      req.PerKill,
		StartTime:    req.StartTime,
		TotalSlots:   req.TotalSlots,
		MapName:      req.MapName,
		RoomID:       req.RoomID,
		RoomPassword: req.RoomPassword,
	}
}
