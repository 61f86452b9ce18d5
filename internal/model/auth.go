package model

// AuthData токены и сессия, выдаваемые клиенту
type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
