package api

import (
	"errors"
	"log"
	"net/http"

	"clicker_backend/internal/middleware"
	"clicker_backend/internal/model"
	"clicker_backend/pkg/resp"
)

var statusByErr = []struct {
	err    error
	status int
}{
	{model.ErrInvalidBet, http.StatusBadRequest},
	{model.ErrInvalidAmount, http.StatusBadRequest},
	{model.ErrInsufficientGold, http.StatusBadRequest},
	{model.ErrInsufficientChips, http.StatusBadRequest},
	{model.ErrMaxLevel, http.StatusBadRequest},
	{model.ErrQuestIncomplete, http.StatusBadRequest},
	{model.ErrPrestigeNotReady, http.StatusBadRequest},
	{model.ErrWeakCredentials, http.StatusBadRequest},
	{model.ErrUnknownUpgrade, http.StatusNotFound},
	{model.ErrUnknownQuest, http.StatusNotFound},
	{model.ErrUnknownItem, http.StatusNotFound},
	{model.ErrAlreadyClaimed, http.StatusConflict},
	{model.ErrAlreadyOwned, http.StatusConflict},
	{model.ErrLoginTaken, http.StatusConflict},
	{model.ErrInvalidCredentials, http.StatusUnauthorized},
	{model.ErrInvalidSession, http.StatusUnauthorized},
}

// StatusFor HTTP статус для ошибки сервиса, 500 для всего неизвестного
func StatusFor(err error) int {
	for _, e := range statusByErr {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// WriteError логирует ошибку операции и отвечает клиенту.
// Текст внутренних ошибок наружу не отдаётся
func WriteError(w http.ResponseWriter, op string, err error) {
	status := StatusFor(err)
	log.Printf("%s error: %v", op, err)
	if status == http.StatusInternalServerError {
		resp.WriteError(w, status, "internal error")
		return
	}
	resp.WriteError(w, status, err.Error())
}

// UserID ID игрока из контекста, выставленного middleware.Auth
func UserID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
	}
	return id, ok
}

// BadRequest ответ на невалидное тело запроса
func BadRequest(w http.ResponseWriter, err error) {
	resp.WriteError(w, http.StatusBadRequest, "invalid request: "+err.Error())
}
