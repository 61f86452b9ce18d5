package auth

import (
	"net/http"

	"clicker_backend/internal/api"
	dto "clicker_backend/internal/api/dto/auth"
	"clicker_backend/internal/converter"
	"clicker_backend/internal/model"
	"clicker_backend/internal/service"
	"clicker_backend/pkg/req"
	"clicker_backend/pkg/resp"
)

const (
	sessionCookie = "session_id"
	refreshCookie = "refresh_token"
	cookiePath    = "/auth"
)

type HandlerDeps struct {
	Serv service.AuthService
	// Secure выставлять Secure у cookies (за HTTPS)
	Secure bool
	// MaxAge время жизни cookies в секундах, обычно равно сроку refresh токена
	MaxAge int
}

type Handler struct {
	serv   service.AuthService
	secure bool
	maxAge int
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, secure: deps.Secure, maxAge: deps.MaxAge}
}

// Register создаёт пользователя и его сохранение, открывает сессию.
// access_token в теле, session_id и refresh_token в cookies
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		api.BadRequest(w, err)
		return
	}

	data, err := h.serv.Register(r.Context(), converter.RegisterRequestToUserModel(&requestBody))
	if err != nil {
		api.WriteError(w, "register", err)
		return
	}

	h.setSessionCookies(w, data)
	resp.WriteJSONResponse(w, http.StatusCreated, dto.TokenResponse{AccessToken: data.AccessToken})
}

// Login открывает новую сессию
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		api.BadRequest(w, err)
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.Login, requestBody.Password)
	if err != nil {
		api.WriteError(w, "login", err)
		return
	}

	h.setSessionCookies(w, data)
	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{AccessToken: data.AccessToken})
}

// Refresh выдаёт новый access_token по session_id и refresh_token
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	sessionID, err := r.Cookie(sessionCookie)
	if err != nil {
		api.WriteError(w, "refresh", model.ErrInvalidSession)
		return
	}
	refreshToken, err := r.Cookie(refreshCookie)
	if err != nil {
		api.WriteError(w, "refresh", model.ErrInvalidSession)
		return
	}

	accessToken, err := h.serv.Refresh(r.Context(), &model.AuthData{
		SessionID:    sessionID.Value,
		RefreshToken: refreshToken.Value,
	})
	if err != nil {
		api.WriteError(w, "refresh", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{AccessToken: accessToken})
}

// Logout закрывает сессию по session_id
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		api.WriteError(w, "logout", model.ErrInvalidSession)
		return
	}

	if err = h.serv.Logout(r.Context(), c.Value); err != nil {
		api.WriteError(w, "logout", err)
		return
	}

	h.deleteCookie(w, sessionCookie)
	h.deleteCookie(w, refreshCookie)

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setSessionCookies(w http.ResponseWriter, data *model.AuthData) {
	h.setCookie(w, sessionCookie, data.SessionID, h.maxAge)
	h.setCookie(w, refreshCookie, data.RefreshToken, h.maxAge)
}

func (h *Handler) deleteCookie(w http.ResponseWriter, name string) {
	h.setCookie(w, name, "", -1)
}

func (h *Handler) setCookie(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     cookiePath,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   maxAge,
	})
}
