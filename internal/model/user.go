package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// User аккаунт игрока. Password - открытый пароль из запроса, после сохранения bcrypt хэш
type User struct {
	ID       int
	Name     string
	Login    string
	Password string
}

// UserClaims claims access токена, Subject - ID пользователя
type UserClaims struct {
	jwt.RegisteredClaims
}
