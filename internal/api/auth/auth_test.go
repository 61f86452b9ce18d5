package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clicker_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	refreshed *model.AuthData
	loggedOut string
}

func (f *fakeAuth) Register(_ context.Context, user *model.User) (*model.AuthData, error) {
	if user.Login == "taken" {
		return nil, model.ErrLoginTaken
	}
	return &model.AuthData{AccessToken: "acc", RefreshToken: "ref", SessionID: "sid"}, nil
}

func (f *fakeAuth) Login(_ context.Context, login, password string) (*model.AuthData, error) {
	if password != "secret1" {
		return nil, model.ErrInvalidCredentials
	}
	return &model.AuthData{AccessToken: "acc-" + login, RefreshToken: "ref", SessionID: "sid"}, nil
}

func (f *fakeAuth) Refresh(_ context.Context, data *model.AuthData) (string, error) {
	f.refreshed = data
	return "fresh", nil
}

func (f *fakeAuth) Logout(_ context.Context, sessionID string) error {
	f.loggedOut = sessionID
	return nil
}

func cookies(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := map[string]*http.Cookie{}
	for _, c := range rec.Result().Cookies() {
		out[c.Name] = c
	}
	return out
}

func TestRegister(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &fakeAuth{}, MaxAge: 3600})

	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"name":"Ann","login":"ann","password":"secret1"}`)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"access_token":"acc"}`, rec.Body.String())
	c := cookies(rec)
	require.Contains(t, c, "session_id")
	require.Contains(t, c, "refresh_token")
	assert.Equal(t, "sid", c["session_id"].Value)
	assert.Equal(t, "/auth", c["refresh_token"].Path)
	assert.True(t, c["refresh_token"].HttpOnly)

	rec = httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"login":"taken","password":"secret1"}`)))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"login":"x","extra":1}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &fakeAuth{}})

	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"login":"ann","password":"nope"}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"login":"ann","password":"secret1"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"access_token":"acc-ann"}`, rec.Body.String())
}

func TestRefreshAndLogout(t *testing.T) {
	f := &fakeAuth{}
	h := NewHandler(HandlerDeps{Serv: f})

	rec := httptest.NewRecorder()
	h.Refresh(rec, httptest.NewRequest(http.MethodPost, "/auth/refresh", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	r := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	r.AddCookie(&http.Cookie{Name: "session_id", Value: "sid"})
	r.AddCookie(&http.Cookie{Name: "refresh_token", Value: "ref"})
	rec = httptest.NewRecorder()
	h.Refresh(rec, r)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"access_token":"fresh"}`, rec.Body.String())
	assert.Equal(t, &model.AuthData{SessionID: "sid", RefreshToken: "ref"}, f.refreshed)

	r = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	r.AddCookie(&http.Cookie{Name: "session_id", Value: "sid"})
	rec = httptest.NewRecorder()
	h.Logout(rec, r)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "sid", f.loggedOut)
	assert.Equal(t, -1, cookies(rec)["session_id"].MaxAge)
}
