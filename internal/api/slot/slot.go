package slot

import (
	"net/http"

	"clicker_backend/internal/api"
	dto "clicker_backend/internal/api/dto/slot"
	"clicker_backend/internal/converter"
	"clicker_backend/internal/service"
	"clicker_backend/pkg/req"
	"clicker_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SlotService
}

type Handler struct {
	serv service.SlotService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}

	// пустое тело - крутить на текущей ставке
	payload, err := req.DecodeOptional[dto.SpinRequest](r.Body)
	if err != nil {
		api.BadRequest(w, err)
		return
	}

	result, err := h.serv.Spin(r.Context(), userID, converter.ToSlotSpin(payload))
	if err != nil {
		api.WriteError(w, "spin", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

// Odds таблица исходов с учётом удачи игрока
func (h *Handler) Odds(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}

	odds, err := h.serv.Odds(r.Context(), userID)
	if err != nil {
		api.WriteError(w, "slot odds", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToOddsResponse(odds))
}

func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}
