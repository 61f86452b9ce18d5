package auth

import (
	"context"
	"strings"

	"clicker_backend/internal/model"
	"clicker_backend/pkg/pass"
)

const minPasswordLen = 6

func (s *serv) Register(ctx context.Context, user *model.User) (*model.AuthData, error) {
	user.Login = strings.TrimSpace(user.Login)
	if user.Login == "" || len(user.Password) < minPasswordLen {
		return nil, model.ErrWeakCredentials
	}

	// Хэширование пароля пользователя
	passwordHash, err := pass.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = passwordHash

	var data *model.AuthData

	// Пользователь, его сохранение и сессия создаются одной транзакцией
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Создать пользователя в бд
		id, err := s.userRepo.CreateUser(ctx, user)
		if err != nil {
			return err
		}
		user.ID = id

		// 2. Стартовое сохранение игрока
		if err = s.playerRepo.CreatePlayer(ctx, user.ID, s.newPlayer()); err != nil {
			return err
		}

		// 3. Сессия и токены
		data, err = s.openSession(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}
