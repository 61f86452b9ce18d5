package prestige

import (
	"net/http"

	"clicker_backend/internal/api"
	"clicker_backend/internal/converter"
	"clicker_backend/internal/service"
	"clicker_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.PrestigeService
}

type Handler struct {
	serv service.PrestigeService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}

	preview, err := h.serv.Preview(r.Context(), userID)
	if err != nil {
		api.WriteError(w, "prestige preview", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPreviewResponse(*preview))
}

// Reset обменивает прогресс на фишки престижа
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}

	result, err := h.serv.Prestige(r.Context(), userID)
	if err != nil {
		api.WriteError(w, "prestige", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToResetResponse(*result))
}
