package tournaments

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/battlehub/battlehub/internal/domain"
	"github.com/battlehub/battlehub/internal/dto"
	tournamentservice "github.com/battlehub/battlehub/internal/service/tournamentservice"
	"github.com/battlehub/battlehub/pkg/auth"
	"github.com/battlehub/battlehub/pkg/utils"
)

type Service interface {
	List(ctx context.Context) ([]domain.Tournament, error)
	MyTournaments(ctx context.Context, userID int) ([]int, error)
	Join(ctx context.Context, userID, tournamentID int) (*domain.Balance, error)
}

type TournamentHandler struct {
	tournamentService Service
}

func New(tournamentService Service) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: tournamentService,
	}
}

// List godoc
//
//	@Summary		List tournaments
//	@Description	Get all tournaments newest first, each with its live occupancy count.
//	@Tags			Tournaments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TournamentDTO	"Tournaments"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/tournaments [get]
func (h *TournamentHandler) List(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.tournamentService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch tournaments")
		return
	}

	response := make([]dto.TournamentDTO, len(tournaments))
	for i, t := range tournaments {
		response[i] = toTournamentDTO(t)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// My godoc
//
//	@Summary		List joined tournament ids
//	@Description	Get ids of the tournaments the authenticated user has joined.
//	@Tags			Tournaments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		int				"Tournament ids"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tournaments/my [get]
func (h *TournamentHandler) My(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	ids, err := h.tournamentService.MyTournaments(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch joined tournaments")
		return
	}
	if ids == nil {
		ids = []int{}
	}
	utils.RespondWithJSON(w, http.StatusOK, ids)
}

// Join godoc
//
//	@Summary		Join a tournament
//	@Description	Pay the entry fee from the wallet balance and occupy one slot. Fee debit and slot reservation are a single atomic unit.
//	@Tags			Tournaments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Tournament id"
//	@Success		200	{object}	dto.JoinResponseDTO	"New balance"
//	@Failure		400	{object}	utils.Response		"Invalid tournament id"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		402	{object}	utils.Response		"Insufficient balance"
//	@Failure		403	{object}	utils.Response		"User is banned"
//	@Failure		404	{object}	utils.Response		"Tournament not found"
//	@Failure		409	{object}	utils.Response		"Tournament full or already joined"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/tournaments/{id}/join [post]
func (h *TournamentHandler) Join(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	tournamentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tournament id")
		return
	}

	balance, err := h.tournamentService.Join(r.Context(), userID, tournamentID)
	if err != nil {
		switch {
		case errors.Is(err, tournamentservice.ErrTournamentNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, tournamentservice.ErrTournamentFull),
			errors.Is(err, tournamentservice.ErrAlreadyJoined):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, tournamentservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, tournamentservice.ErrUserBanned):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.JoinResponseDTO{
		Current: balance.CurrentBalance,
	})
}

func toTournamentDTO(t domain.Tournament) dto.TournamentDTO {
	return dto.TournamentDTO{
		ID:           t.ID,
		Title:        t.Title,
		Mode:         t.Mode,
		EntryFee:     t.EntryFee,
		PrizePool:    t.PrizePool,
		PerKill:      t.PerKill,
		StartTime:    t.StartTime,
		TotalSlots:   t.TotalSlots,
		SlotsFull:    t.SlotsFull,
		MapName:      t.MapName,
		RoomID:       t.RoomID,
		RoomPassword: t.RoomPassword,
	}
}
