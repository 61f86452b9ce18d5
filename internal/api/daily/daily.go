package daily

import (
	"net/http"

	"clicker_backend/internal/api"
	dto "clicker_backend/internal/api/dto/daily"
	"clicker_backend/internal/converter"
	"clicker_backend/internal/service"
	"clicker_backend/pkg/req"
	"clicker_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.DailyService
}

type Handler struct {
	serv service.DailyService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// ClaimLogin награда за ежедневный вход
func (h *Handler) ClaimLogin(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}

	reward, err := h.serv.ClaimLogin(r.Context(), userID)
	if err != nil {
		api.WriteError(w, "daily login", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLoginResponse(*reward))
}

func (h *Handler) Quests(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}

	quests, err := h.serv.Quests(r.Context(), userID)
	if err != nil {
		api.WriteError(w, "daily quests", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToQuests(quests))
}

func (h *Handler) ClaimQuest(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}

	payload, err := req.Decode[dto.ClaimRequest](r.Body)
	if err != nil {
		api.BadRequest(w, err)
		return
	}

	claim, err := h.serv.ClaimQuest(r.Context(), userID, payload.ID)
	if err != nil {
		api.WriteError(w, "claim quest", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToClaimResponse(*claim))
}
