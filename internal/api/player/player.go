package player

import (
	"net/http"

	"clicker_backend/internal/api"
	dto "clicker_backend/internal/api/dto/player"
	"clicker_backend/internal/converter"
	"clicker_backend/internal/service"
	"clicker_backend/pkg/req"
	"clicker_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.PlayerService
}

type Handler struct {
	serv service.PlayerService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}

	state, err := h.serv.State(r.Context(), userID)
	if err != nil {
		api.WriteError(w, "player state", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*state))
}

func (h *Handler) SetBet(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}

	payload, err := req.Decode[dto.BetRequest](r.Body)
	if err != nil {
		api.BadRequest(w, err)
		return
	}

	bet, err := h.serv.SetBet(r.Context(), userID, payload.Bet)
	if err != nil {
		api.WriteError(w, "set bet", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BetResponse{Bet: bet})
}

func (h *Handler) CollectIdle(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}

	res, err := h.serv.CollectIdle(r.Context(), userID)
	if err != nil {
		api.WriteError(w, "collect idle", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToIdleResponse(*res))
}
