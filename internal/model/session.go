package model

import "time"

// Session сессия refresh токена. RefreshToken хранит хэш, не сам токен
type Session struct {
	ID           string
	UserID       int
	RefreshToken string
	ExpiresAt    time.Time
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
