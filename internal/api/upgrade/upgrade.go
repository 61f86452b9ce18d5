package upgrade

import (
	"net/http"

	"clicker_backend/internal/api"
	dto "clicker_backend/internal/api/dto/upgrade"
	"clicker_backend/internal/converter"
	"clicker_backend/internal/service"
	"clicker_backend/pkg/req"
	"clicker_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.UpgradeService
}

type Handler struct {
	serv service.UpgradeService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}

	list, err := h.serv.List(r.Context(), userID)
	if err != nil {
		api.WriteError(w, "upgrade list", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToUpgradeList(list))
}

func (h *Handler) Buy(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}

	payload, err := req.Decode[dto.BuyRequest](r.Body)
	if err != nil {
		api.BadRequest(w, err)
		return
	}

	result, err := h.serv.Buy(r.Context(), userID, payload.ID)
	if err != nil {
		api.WriteError(w, "buy upgrade", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToUpgradeBuyResponse(*result))
}
