package click

import (
	"net/http"

	"clicker_backend/internal/api"
	dto "clicker_backend/internal/api/dto/click"
	"clicker_backend/internal/converter"
	"clicker_backend/internal/service"
	"clicker_backend/pkg/req"
	"clicker_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.ClickService
}

type Handler struct {
	serv service.ClickService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Tap обрабатывает один тап или пачку тапов
func (h *Handler) Tap(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}

	payload, err := req.Decode[dto.TapRequest](r.Body)
	if err != nil {
		api.BadRequest(w, err)
		return
	}

	result, err := h.serv.Tap(r.Context(), userID, converter.ToTap(payload))
	if err != nil {
		api.WriteError(w, "tap", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTapResponse(*result))
}
