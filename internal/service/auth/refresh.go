package auth

import (
	"context"
	"time"

	"clicker_backend/internal/model"
	"clicker_backend/pkg/token"
)

func (s *serv) Refresh(ctx context.Context, data *model.AuthData) (string, error) {
	// Сессия с хэшем refresh токена
	session, err := s.authRepo.GetSession(ctx, data.SessionID)
	if err != nil {
		return "", err
	}
	if session.Expired(time.Now()) {
		return "", model.ErrInvalidSession
	}

	// Верификация переданного refresh токена с хэшем из хранилища
	if !token.VerifyRefreshToken(data.RefreshToken, session.RefreshToken) {
		return "", model.ErrInvalidSession
	}

	user, err := s.authRepo.GetUserBySessionID(ctx, data.SessionID)
	if err != nil {
		return "", err
	}

	return token.GenerateAccessToken(
		user,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
}
