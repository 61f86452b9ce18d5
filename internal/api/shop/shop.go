package shop

import (
	"net/http"

	"clicker_backend/internal/api"
	dto "clicker_backend/internal/api/dto/shop"
	"clicker_backend/internal/converter"
	"clicker_backend/internal/service"
	"clicker_backend/pkg/req"
	"clicker_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.ShopService
}

type Handler struct {
	serv service.ShopService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Items(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}

	items, err := h.serv.Items(r.Context(), userID)
	if err != nil {
		api.WriteError(w, "shop items", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToShopItems(items))
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

	purchase, err := h.serv.Buy(r.Context(), userID, payload.ID)
	if err != nil {
		api.WriteError(w, "buy item", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToShopBuyResponse(*purchase))
}
